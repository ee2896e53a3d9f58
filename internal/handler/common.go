package handler

import (
	"errors"
	"strconv"

	"fittrack/internal/service"
	"fittrack/pkg/logger"
	"fittrack/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeServiceError 把业务错误映射为统一响应
// 未识别的错误按存储层故障处理：记日志并返回通用500
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSelfFriend),
		errors.Is(err, service.ErrAlreadyFriends),
		errors.Is(err, service.ErrRequestDeclined):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrInvalidCode),
		errors.Is(err, service.ErrInvalidMetric):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, err.Error())
	default:
		logger.Error("服务内部错误",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		response.InternalError(c, "internal server error")
	}
}

// parseIDParam 解析路径中的数字ID参数
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	idStr := c.Param(name)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
