package handler

import (
	"fittrack/internal/service"
	"fittrack/pkg/jwt"
	"fittrack/pkg/response"

	"github.com/gin-gonic/gin"
)

type MeasurementHandler struct {
	service *service.MeasurementService
}

func NewMeasurementHandler(s *service.MeasurementService) *MeasurementHandler {
	return &MeasurementHandler{service: s}
}

// Log 记录一次测量
func (h *MeasurementHandler) Log(c *gin.Context) {
	type req struct {
		PresetID string  `json:"preset_id"`
		Height   float64 `json:"height"`
		Weight   float64 `json:"weight"`
		Fat      float64 `json:"fat"`
		Level    float64 `json:"level"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	m, err := h.service.Log(jwt.GetUserID(c), r.PresetID, r.Height, r.Weight, r.Fat, r.Level)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, "测量记录已保存", response.FilterMeasurement(m))
}

// ListMine 查询自己的测量历史
func (h *MeasurementHandler) ListMine(c *gin.Context) {
	measurements, err := h.service.ListMine(jwt.GetUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	list := make([]*response.MeasurementInfo, 0, len(measurements))
	for _, m := range measurements {
		list = append(list, response.FilterMeasurement(m))
	}
	response.Success(c, list)
}
