package handler

import (
	"strconv"

	"fittrack/internal/service"
	"fittrack/pkg/jwt"
	"fittrack/pkg/response"

	"github.com/gin-gonic/gin"
)

type WorkoutHandler struct {
	workoutService *service.WorkoutService
	liftService    *service.LiftService
}

func NewWorkoutHandler(workoutService *service.WorkoutService, liftService *service.LiftService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService, liftService: liftService}
}

// Create 创建训练会话
func (h *WorkoutHandler) Create(c *gin.Context) {
	type req struct {
		PerformedAt string             `json:"performed_at" binding:"required"`
		Note        string             `json:"note"`
		Sets        []service.SetInput `json:"sets" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	workout, err := h.workoutService.CreateWorkout(jwt.GetUserID(c), r.PerformedAt, r.Note, r.Sets)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, "训练记录已保存", response.FilterWorkout(workout))
}

// ListMine 查询自己的训练记录
func (h *WorkoutHandler) ListMine(c *gin.Context) {
	workouts, err := h.workoutService.ListMine(jwt.GetUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	list := make([]*response.WorkoutInfo, 0, len(workouts))
	for _, w := range workouts {
		list = append(list, response.FilterWorkout(w))
	}
	response.Success(c, list)
}

// CreateExercise 创建训练种目
func (h *WorkoutHandler) CreateExercise(c *gin.Context) {
	type req struct {
		Name string `json:"name" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	exercise, err := h.liftService.CreateExercise(r.Name)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, gin.H{"id": exercise.ID, "name": exercise.Name})
}

// ListExercises 查询全部种目
func (h *WorkoutHandler) ListExercises(c *gin.Context) {
	exercises, err := h.liftService.ListExercises()
	if err != nil {
		writeServiceError(c, err)
		return
	}

	list := make([]gin.H, 0, len(exercises))
	for _, e := range exercises {
		list = append(list, gin.H{"id": e.ID, "name": e.Name})
	}
	response.Success(c, list)
}

// LogLift 记录一组力量数据
func (h *WorkoutHandler) LogLift(c *gin.Context) {
	type req struct {
		ExerciseID  uint    `json:"exercise_id" binding:"required"`
		PerformedAt string  `json:"performed_at" binding:"required"`
		WeightKg    float64 `json:"weight_kg" binding:"required"`
		Reps        int     `json:"reps" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	lift, err := h.liftService.LogLift(jwt.GetUserID(c), r.ExerciseID, r.PerformedAt, r.WeightKg, r.Reps)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, "力量记录已保存", gin.H{"id": lift.ID})
}

// LiftSeries 某种目的进度序列
func (h *WorkoutHandler) LiftSeries(c *gin.Context) {
	exerciseIDStr := c.Query("exercise_id")
	exerciseID, err := strconv.ParseUint(exerciseIDStr, 10, 32)
	if err != nil || exerciseID == 0 {
		response.BadRequest(c, "invalid exercise_id")
		return
	}

	series, err := h.liftService.LiftSeries(jwt.GetUserID(c), uint(exerciseID))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, gin.H{"exercise_id": exerciseID, "series": series})
}
