package model

import (
	"time"
)

// 好友请求状态
const (
	FriendRequestPending  = "pending"
	FriendRequestAccepted = "accepted"
	FriendRequestRejected = "rejected"
)

// FriendRequest 好友请求（有方向）
// 唯一约束：同一 (from, to) 方向最多一条记录
// 状态机：pending -> accepted / rejected，终态不可再变更

type FriendRequest struct {
	ID         uint      `gorm:"primaryKey"`
	FromUserID uint      `gorm:"not null;index;uniqueIndex:idx_friend_request_pair;comment:发起方用户ID"`
	ToUserID   uint      `gorm:"not null;index;uniqueIndex:idx_friend_request_pair;comment:接收方用户ID"`
	Status     string    `gorm:"type:varchar(32);not null;default:'pending';comment:请求状态"`
	CreatedAt  time.Time `gorm:"comment:创建时间"`
	UpdatedAt  time.Time `gorm:"comment:更新时间"`
}

func (FriendRequest) TableName() string { return "friend_request" }

// Friendship 好友关系（无方向）
// 归一化存储：始终满足 UserID < FriendUserID，
// 这样 (A,B) 与 (B,A) 只会落到同一行，唯一约束才有意义

type Friendship struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_friend_pair;comment:较小的用户ID"`
	FriendUserID uint      `gorm:"not null;uniqueIndex:idx_friend_pair;comment:较大的用户ID"`
	CreatedAt    time.Time `gorm:"comment:创建时间"`
}

func (Friendship) TableName() string { return "friendship" }

// NormalizePair 归一化用户对：返回 (min, max)
// 所有涉及 friendship 表的读写都必须先经过这里，
// 不允许直接比较原始的 (A,B) 顺序
func NormalizePair(a, b uint) (uint, uint) {
	if a > b {
		return b, a
	}
	return a, b
}
