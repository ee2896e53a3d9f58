package model

import (
	"time"
)

// 团队成员角色
const (
	TeamRoleOwner  = "owner"
	TeamRoleAdmin  = "admin"
	TeamRoleMember = "member"
)

// Team 团队
// InviteCode 为全局唯一的 URL 安全随机令牌，持有即可加入
// 创建团队时必须在同一事务里写入 owner 的成员记录

type Team struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"type:varchar(64);not null;comment:团队名称"`
	OwnerUserID uint      `gorm:"not null;index;comment:创建者用户ID"`
	InviteCode  string    `gorm:"type:varchar(32);not null;uniqueIndex;comment:邀请码"`
	CreatedAt   time.Time `gorm:"comment:创建时间"`
	UpdatedAt   time.Time `gorm:"comment:更新时间"`
}

func (Team) TableName() string { return "team" }

// TeamMember 团队成员
// 唯一约束：一个用户在一个团队内最多一条成员记录，
// 重复加入依赖该约束做幂等处理

type TeamMember struct {
	ID       uint      `gorm:"primaryKey"`
	TeamID   uint      `gorm:"not null;uniqueIndex:idx_team_member;comment:团队ID"`
	UserID   uint      `gorm:"not null;uniqueIndex:idx_team_member;index;comment:用户ID"`
	Role     string    `gorm:"type:varchar(32);not null;default:'member';comment:角色"`
	JoinedAt time.Time `gorm:"autoCreateTime;comment:加入时间"`
}

func (TeamMember) TableName() string { return "team_member" }
