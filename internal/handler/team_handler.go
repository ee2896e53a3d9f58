package handler

import (
	"fittrack/internal/service"
	"fittrack/pkg/jwt"
	"fittrack/pkg/response"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	service *service.TeamService
}

func NewTeamHandler(s *service.TeamService) *TeamHandler {
	return &TeamHandler{service: s}
}

// Create 创建团队（响应包含邀请码）
func (h *TeamHandler) Create(c *gin.Context) {
	type req struct {
		Name string `json:"name" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	team, err := h.service.CreateTeam(r.Name, jwt.GetUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, "团队创建成功", response.FilterTeam(team))
}

// JoinByCode 按邀请码加入团队
func (h *TeamHandler) JoinByCode(c *gin.Context) {
	type req struct {
		InviteCode string `json:"invite_code" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	teamID, err := h.service.JoinByCode(r.InviteCode, jwt.GetUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, "已加入团队", gin.H{"team_id": teamID})
}

// RotateInviteCode 轮换邀请码（仅owner）
func (h *TeamHandler) RotateInviteCode(c *gin.Context) {
	teamID, ok := parseIDParam(c, "team_id")
	if !ok {
		return
	}

	code, err := h.service.RotateInviteCode(teamID, jwt.GetUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, gin.H{"ok": true, "invite_code": code})
}

// ListMyTeams 查询自己所属的团队
func (h *TeamHandler) ListMyTeams(c *gin.Context) {
	teams, err := h.service.ListMyTeams(jwt.GetUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	list := make([]*response.TeamInfo, 0, len(teams))
	for _, t := range teams {
		list = append(list, response.FilterTeam(t))
	}
	response.Success(c, list)
}
