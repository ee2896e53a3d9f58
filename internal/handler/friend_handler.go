package handler

import (
	"fittrack/internal/service"
	"fittrack/pkg/jwt"
	"fittrack/pkg/response"

	"github.com/gin-gonic/gin"
)

type FriendHandler struct {
	service *service.FriendService
}

func NewFriendHandler(s *service.FriendService) *FriendHandler {
	return &FriendHandler{service: s}
}

// SendRequest 发送好友请求
func (h *FriendHandler) SendRequest(c *gin.Context) {
	type req struct {
		ToUserID uint `json:"to_user_id" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	request, err := h.service.SendRequest(jwt.GetUserID(c), r.ToUserID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, response.FilterFriendRequest(request))
}

// Inbox 查询发给自己的pending请求
func (h *FriendHandler) Inbox(c *gin.Context) {
	requests, err := h.service.Inbox(jwt.GetUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	list := make([]*response.FriendRequestInfo, 0, len(requests))
	for _, r := range requests {
		list = append(list, response.FilterFriendRequest(r))
	}
	response.Success(c, list)
}

// Accept 接受好友请求
func (h *FriendHandler) Accept(c *gin.Context) {
	requestID, ok := parseIDParam(c, "request_id")
	if !ok {
		return
	}

	if err := h.service.AcceptRequest(requestID, jwt.GetUserID(c)); err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, gin.H{"ok": true})
}

// Reject 拒绝好友请求
func (h *FriendHandler) Reject(c *gin.Context) {
	requestID, ok := parseIDParam(c, "request_id")
	if !ok {
		return
	}

	if err := h.service.RejectRequest(requestID, jwt.GetUserID(c)); err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, gin.H{"ok": true})
}

// ListFriends 查询自己的好友列表（含对方用户名）
func (h *FriendHandler) ListFriends(c *gin.Context) {
	friends, err := h.service.ListFriends(jwt.GetUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	list := make([]response.FriendInfo, 0, len(friends))
	for _, f := range friends {
		list = append(list, response.FriendInfo{
			UserID:   f.UserID,
			Username: f.Username,
			Since:    f.Since.Format("2006-01-02 15:04:05"),
		})
	}
	response.Success(c, list)
}
