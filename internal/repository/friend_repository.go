package repository

import (
	"errors"

	"fittrack/internal/model"

	"gorm.io/gorm"
)

type FriendRepository struct {
	orm *gorm.DB
}

func NewFriendRepository(db *gorm.DB) *FriendRepository {
	return &FriendRepository{orm: db}
}

// CreateRequest 创建好友请求
// (from, to) 方向上的唯一约束冲突由调用方处理
func (r *FriendRepository) CreateRequest(req *model.FriendRequest) error {
	return r.orm.Create(req).Error
}

// GetRequestByID 按ID查询好友请求
func (r *FriendRepository) GetRequestByID(id uint) (*model.FriendRequest, error) {
	var req model.FriendRequest
	if err := r.orm.First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// GetByDirection 查询 (from -> to) 方向上的请求（不限状态）
// 每个方向最多一条记录，调用方按状态决定如何处理
func (r *FriendRepository) GetByDirection(fromUserID, toUserID uint) (*model.FriendRequest, error) {
	var req model.FriendRequest
	err := r.orm.
		Where("from_user_id = ? AND to_user_id = ?", fromUserID, toUserID).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// ListPendingInbox 查询发给某用户的全部pending请求（按创建时间升序）
func (r *FriendRepository) ListPendingInbox(toUserID uint) ([]*model.FriendRequest, error) {
	var requests []*model.FriendRequest
	err := r.orm.
		Where("to_user_id = ? AND status = ?", toUserID, model.FriendRequestPending).
		Order("created_at ASC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// FriendshipExists 判断两个用户是否已是好友
// 内部做归一化，调用方无需关心 (A,B) 顺序
func (r *FriendRepository) FriendshipExists(a, b uint) (bool, error) {
	lo, hi := model.NormalizePair(a, b)

	var count int64
	err := r.orm.Model(&model.Friendship{}).
		Where("user_id = ? AND friend_user_id = ?", lo, hi).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListFriendships 查询某用户的全部好友关系（该用户可能在任意一侧）
func (r *FriendRepository) ListFriendships(userID uint) ([]*model.Friendship, error) {
	var friendships []*model.Friendship
	err := r.orm.
		Where("user_id = ? OR friend_user_id = ?", userID, userID).
		Order("created_at ASC").
		Find(&friendships).Error
	if err != nil {
		return nil, err
	}
	return friendships, nil
}

// AcceptRequest 接受好友请求
// 状态变更与好友关系写入在同一事务内提交：
// 不允许出现请求已accepted但没有friendship行（或反过来）的中间状态。
// 并发的重复accept依赖唯一约束兜底，唯一键冲突视为已建立
func (r *FriendRepository) AcceptRequest(req *model.FriendRequest) error {
	return r.orm.Transaction(func(tx *gorm.DB) error {
		// 仅允许从pending转移，重复accept在这里拦下
		result := tx.Model(&model.FriendRequest{}).
			Where("id = ? AND status = ?", req.ID, model.FriendRequestPending).
			Update("status", model.FriendRequestAccepted)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// 状态已不是pending：已accepted视为重复accept，幂等成功
			// （首次accept的事务已保证friendship行存在）；已拒绝或行不存在按不存在处理
			var current model.FriendRequest
			if err := tx.First(&current, req.ID).Error; err != nil {
				return err
			}
			if current.Status == model.FriendRequestAccepted {
				return nil
			}
			return gorm.ErrRecordNotFound
		}

		lo, hi := model.NormalizePair(req.FromUserID, req.ToUserID)

		// 先查后插，插入若撞唯一键则视为已存在
		var count int64
		if err := tx.Model(&model.Friendship{}).
			Where("user_id = ? AND friend_user_id = ?", lo, hi).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		friendship := &model.Friendship{UserID: lo, FriendUserID: hi}
		if err := tx.Create(friendship).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil
			}
			return err
		}
		return nil
	})
}

// RejectRequest 拒绝好友请求（仅允许从pending转移）
// 重复reject幂等成功；已accepted的请求按不存在处理
func (r *FriendRepository) RejectRequest(req *model.FriendRequest) error {
	result := r.orm.Model(&model.FriendRequest{}).
		Where("id = ? AND status = ?", req.ID, model.FriendRequestPending).
		Update("status", model.FriendRequestRejected)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var current model.FriendRequest
		if err := r.orm.First(&current, req.ID).Error; err != nil {
			return err
		}
		if current.Status == model.FriendRequestRejected {
			return nil
		}
		return gorm.ErrRecordNotFound
	}
	return nil
}
