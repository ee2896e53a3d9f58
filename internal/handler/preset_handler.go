package handler

import (
	"fittrack/internal/service"
	"fittrack/pkg/response"

	"github.com/gin-gonic/gin"
)

// ListPresets 目标预设一览（公开接口）
func ListPresets(c *gin.Context) {
	response.Success(c, service.ListPresets())
}
