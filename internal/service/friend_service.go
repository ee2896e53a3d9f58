package service

import (
	"errors"
	"time"

	"fittrack/internal/model"
	"fittrack/internal/repository"
	"fittrack/pkg/redis"
	"fittrack/pkg/websocket"

	"gorm.io/gorm"
)

// FriendService 好友关系服务
// 拥有好友请求的生命周期和归一化的好友关系表
type FriendService struct {
	friendRepo *repository.FriendRepository
	userRepo   *repository.UserRepository
}

func NewFriendService(friendRepo *repository.FriendRepository, userRepo *repository.UserRepository) *FriendService {
	return &FriendService{friendRepo: friendRepo, userRepo: userRepo}
}

// SendRequest 发送好友请求
// 不能加自己；已是好友直接拒绝；同方向已有请求时按状态处理
// （pending幂等返回，rejected不允许重发）
func (s *FriendService) SendRequest(fromUserID, toUserID uint) (*model.FriendRequest, error) {
	if fromUserID == toUserID {
		return nil, ErrSelfFriend
	}

	// 目标用户必须存在
	if _, err := s.userRepo.GetByID(toUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// 已是好友（归一化后判断）
	exists, err := s.friendRepo.FriendshipExists(fromUserID, toUserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyFriends
	}

	// 同方向已有请求：按状态决定结果，唯一键冲突永远不会抛给调用方
	if existing, err := s.friendRepo.GetByDirection(fromUserID, toUserID); err == nil {
		return resolveExistingRequest(existing)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	req := &model.FriendRequest{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Status:     model.FriendRequestPending,
	}
	if err := s.friendRepo.CreateRequest(req); err != nil {
		// 并发下另一个请求先落库：唯一键冲突视为已存在，回读后按状态处理
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if existing, err2 := s.friendRepo.GetByDirection(fromUserID, toUserID); err2 == nil {
				return resolveExistingRequest(existing)
			}
		}
		return nil, err
	}

	// 通知接收方
	websocket.GetManager().Notify(toUserID, &redis.Notification{
		Type:       "friend_request",
		FromUserID: fromUserID,
		Payload:    map[string]interface{}{"request_id": req.ID},
	})

	return req, nil
}

// resolveExistingRequest 同方向已存在请求时的结果映射
// pending幂等返回原请求；accepted说明已是好友；rejected是终态，不允许再次发送
func resolveExistingRequest(req *model.FriendRequest) (*model.FriendRequest, error) {
	switch req.Status {
	case model.FriendRequestPending:
		return req, nil
	case model.FriendRequestAccepted:
		return nil, ErrAlreadyFriends
	default:
		return nil, ErrRequestDeclined
	}
}

// Inbox 查询发给某用户的pending请求列表
func (s *FriendService) Inbox(userID uint) ([]*model.FriendRequest, error) {
	return s.friendRepo.ListPendingInbox(userID)
}

// AcceptRequest 接受好友请求
// 请求不存在，或者调用者不是请求的接收方，都返回 ErrNotFound：
// 非接收方不应得知请求是否存在
func (s *FriendService) AcceptRequest(requestID, actingUserID uint) error {
	req, err := s.friendRepo.GetRequestByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if req.ToUserID != actingUserID {
		return ErrNotFound
	}

	if err := s.friendRepo.AcceptRequest(req); err != nil {
		// 请求已被拒绝或已不存在（重复accept在仓储层幂等成功，不走这里）
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	// 通知发起方
	websocket.GetManager().Notify(req.FromUserID, &redis.Notification{
		Type:       "friend_accepted",
		FromUserID: actingUserID,
	})

	return nil
}

// RejectRequest 拒绝好友请求（权限判断与accept一致）
func (s *FriendService) RejectRequest(requestID, actingUserID uint) error {
	req, err := s.friendRepo.GetRequestByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if req.ToUserID != actingUserID {
		return ErrNotFound
	}

	if err := s.friendRepo.RejectRequest(req); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// FriendInfo 好友列表项（已解析出对方用户）
type FriendInfo struct {
	UserID   uint
	Username string
	Since    time.Time
}

// ListFriends 查询某用户的全部好友
// 关系按 user_id < friend_user_id 存储，这里解析出对方一侧并批量补上用户名
func (s *FriendService) ListFriends(userID uint) ([]FriendInfo, error) {
	friendships, err := s.friendRepo.ListFriendships(userID)
	if err != nil {
		return nil, err
	}

	others := make([]uint, 0, len(friendships))
	for _, f := range friendships {
		other := f.UserID
		if other == userID {
			other = f.FriendUserID
		}
		others = append(others, other)
	}

	names, err := s.userRepo.GetUsernames(others)
	if err != nil {
		return nil, err
	}

	friends := make([]FriendInfo, 0, len(friendships))
	for i, f := range friendships {
		friends = append(friends, FriendInfo{
			UserID:   others[i],
			Username: names[others[i]],
			Since:    f.CreatedAt,
		})
	}
	return friends, nil
}

// IsFriend 判断两个用户是否是好友（跨用户读取的授权谓词）
func (s *FriendService) IsFriend(a, b uint) (bool, error) {
	return s.friendRepo.FriendshipExists(a, b)
}
