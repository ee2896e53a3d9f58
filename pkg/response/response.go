package response

import (
	"net/http"

	"fittrack/internal/model"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`            // 状态码：0表示成功，其他表示错误
	Message string      `json:"message"`         // 响应消息
	Data    interface{} `json:"data,omitempty"`  // 响应数据
	Error   string      `json:"error,omitempty"` // 错误详情（仅在开发环境显示）
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// SuccessWithMessage 带自定义消息的成功响应
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: message,
		Data:    data,
	})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest 400错误
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

// Unauthorized 401错误
func Unauthorized(c *gin.Context, message string) {
	Error(c, 401, message)
}

// Forbidden 403错误
func Forbidden(c *gin.Context, message string) {
	Error(c, 403, message)
}

// NotFound 404错误
func NotFound(c *gin.Context, message string) {
	Error(c, 404, message)
}

// Conflict 409错误
func Conflict(c *gin.Context, message string) {
	Error(c, 409, message)
}

// InternalError 500错误
func InternalError(c *gin.Context, message string) {
	Error(c, 500, message)
}

// UserInfo 用户信息（隐藏敏感字段）
type UserInfo struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// FilterUserInfo 过滤用户信息，隐藏敏感字段
func FilterUserInfo(user *model.User) *UserInfo {
	if user == nil {
		return nil
	}

	return &UserInfo{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// LoginResponse 登录响应
type LoginResponse struct {
	User        *UserInfo `json:"user"`
	AccessToken string    `json:"access_token"`
}

// RegisterResponse 注册响应
type RegisterResponse struct {
	User        *UserInfo `json:"user"`
	AccessToken string    `json:"access_token"`
}

// FriendRequestInfo 好友请求响应
type FriendRequestInfo struct {
	ID         uint   `json:"id"`
	FromUserID uint   `json:"from_user_id"`
	ToUserID   uint   `json:"to_user_id"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

// FilterFriendRequest 过滤好友请求信息
func FilterFriendRequest(req *model.FriendRequest) *FriendRequestInfo {
	if req == nil {
		return nil
	}

	return &FriendRequestInfo{
		ID:         req.ID,
		FromUserID: req.FromUserID,
		ToUserID:   req.ToUserID,
		Status:     req.Status,
		CreatedAt:  req.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// FriendInfo 好友列表项（对方用户）
type FriendInfo struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Since    string `json:"since"`
}

// TeamInfo 团队响应
// 邀请码仅对创建者/成员可见的场景由调用方控制
type TeamInfo struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	OwnerUserID uint   `json:"owner_user_id"`
	InviteCode  string `json:"invite_code,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// FilterTeam 过滤团队信息（带邀请码）
func FilterTeam(t *model.Team) *TeamInfo {
	if t == nil {
		return nil
	}

	return &TeamInfo{
		ID:          t.ID,
		Name:        t.Name,
		OwnerUserID: t.OwnerUserID,
		InviteCode:  t.InviteCode,
		CreatedAt:   t.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// MeasurementInfo 测量记录响应
type MeasurementInfo struct {
	ID        uint    `json:"id"`
	PresetID  string  `json:"preset_id,omitempty"`
	Height    float64 `json:"height"`
	Weight    float64 `json:"weight"`
	Fat       float64 `json:"fat"`
	Level     float64 `json:"level"`
	CreatedAt string  `json:"created_at"`
}

// FilterMeasurement 过滤测量记录
func FilterMeasurement(m *model.Measurement) *MeasurementInfo {
	if m == nil {
		return nil
	}

	return &MeasurementInfo{
		ID:        m.ID,
		PresetID:  m.PresetID,
		Height:    m.Height,
		Weight:    m.Weight,
		Fat:       m.Fat,
		Level:     m.Level,
		CreatedAt: m.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// WorkoutSetInfo 训练组响应
type WorkoutSetInfo struct {
	ExerciseID uint    `json:"exercise_id"`
	SetNo      int     `json:"set_no"`
	WeightKg   float64 `json:"weight_kg"`
	Reps       int     `json:"reps"`
}

// WorkoutInfo 训练会话响应
type WorkoutInfo struct {
	ID          uint             `json:"id"`
	UserID      uint             `json:"user_id"`
	PerformedAt string           `json:"performed_at"`
	Note        string           `json:"note,omitempty"`
	Sets        []WorkoutSetInfo `json:"sets"`
}

// FilterWorkout 过滤训练会话
func FilterWorkout(w *model.Workout) *WorkoutInfo {
	if w == nil {
		return nil
	}

	sets := make([]WorkoutSetInfo, 0, len(w.Sets))
	for _, s := range w.Sets {
		sets = append(sets, WorkoutSetInfo{
			ExerciseID: s.ExerciseID,
			SetNo:      s.SetNo,
			WeightKg:   s.WeightKg,
			Reps:       s.Reps,
		})
	}

	return &WorkoutInfo{
		ID:          w.ID,
		UserID:      w.UserID,
		PerformedAt: w.PerformedAt.Format("2006-01-02"),
		Note:        w.Note,
		Sets:        sets,
	}
}
