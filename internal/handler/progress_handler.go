package handler

import (
	"fittrack/internal/model"
	"fittrack/internal/service"
	"fittrack/pkg/jwt"
	"fittrack/pkg/response"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	service *service.ProgressService
}

func NewProgressHandler(s *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: s}
}

// TeamSeries 团队指标序列（仅成员可读）
// metric 为查询参数，缺省为 level
func (h *ProgressHandler) TeamSeries(c *gin.Context) {
	teamID, ok := parseIDParam(c, "team_id")
	if !ok {
		return
	}

	metric := model.Metric(c.DefaultQuery("metric", string(model.MetricLevel)))

	result, err := h.service.TeamSeries(teamID, metric, jwt.GetUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, result)
}

// FriendWorkouts 查看好友的训练记录（仅好友可读）
func (h *ProgressHandler) FriendWorkouts(c *gin.Context) {
	ownerUserID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	workouts, err := h.service.FriendWorkouts(ownerUserID, jwt.GetUserID(c))
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
