package service

import (
	"errors"
	"fmt"
	"time"

	"fittrack/internal/model"
	"fittrack/internal/repository"

	"gorm.io/gorm"
)

// SetInput 创建训练时的一组输入
type SetInput struct {
	ExerciseID uint    `json:"exercise_id"`
	SetNo      int     `json:"set_no"`
	WeightKg   float64 `json:"weight_kg"`
	Reps       int     `json:"reps"`
}

// WorkoutService 训练记录服务
type WorkoutService struct {
	workoutRepo *repository.WorkoutRepository
	liftRepo    *repository.LiftRepository
}

func NewWorkoutService(workoutRepo *repository.WorkoutRepository, liftRepo *repository.LiftRepository) *WorkoutService {
	return &WorkoutService{workoutRepo: workoutRepo, liftRepo: liftRepo}
}

// parseDate 解析训练日期（支持 2006-01-02 与 2006-01-02T15:04:05）
func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrValidation, s)
}

// CreateWorkout 创建训练会话（会话与组数同一事务写入）
func (s *WorkoutService) CreateWorkout(userID uint, performedAt, note string, sets []SetInput) (*model.Workout, error) {
	date, err := parseDate(performedAt)
	if err != nil {
		return nil, err
	}
	if len(sets) == 0 {
		return nil, fmt.Errorf("%w: at least one set is required", ErrValidation)
	}

	workout := &model.Workout{
		UserID:      userID,
		PerformedAt: date,
		Note:        note,
		Sets:        make([]model.WorkoutSet, 0, len(sets)),
	}
	for i, in := range sets {
		if in.WeightKg <= 0 || in.Reps <= 0 {
			return nil, fmt.Errorf("%w: set #%d has invalid weight or reps", ErrValidation, i+1)
		}
		// 种目必须存在
		if _, err := s.liftRepo.GetExerciseByID(in.ExerciseID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: exercise %d not found", ErrValidation, in.ExerciseID)
			}
			return nil, err
		}
		setNo := in.SetNo
		if setNo == 0 {
			setNo = i + 1
		}
		workout.Sets = append(workout.Sets, model.WorkoutSet{
			ExerciseID: in.ExerciseID,
			SetNo:      setNo,
			WeightKg:   in.WeightKg,
			Reps:       in.Reps,
		})
	}

	if err := s.workoutRepo.CreateWithSets(workout); err != nil {
		return nil, err
	}
	return workout, nil
}

// ListMine 查询自己的训练记录（按训练日期降序）
func (s *WorkoutService) ListMine(userID uint) ([]*model.Workout, error) {
	return s.workoutRepo.ListByUserDesc(userID)
}
