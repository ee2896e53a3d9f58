package service

import (
	"errors"
)

// 业务错误分类
// 这些都是调用方可自行纠正的条件，不会重试、不会导致进程退出；
// 存储层的非预期错误（连接、损坏）原样向上传递，由handler转为500
var (
	// ErrValidation 输入不合法（空邀请码、未知指标等）
	ErrValidation = errors.New("invalid input")

	// ErrNotFound 目标不存在。accept好友请求时也用于
	// “存在但无权操作”的场景，避免向非接收方泄露请求是否存在
	ErrNotFound = errors.New("not found")

	// ErrForbidden 缺少所需的关系（非团队成员、非好友、非团队owner）
	ErrForbidden = errors.New("forbidden")

	// ErrSelfFriend 不允许添加自己为好友
	ErrSelfFriend = errors.New("cannot send friend request to yourself")

	// ErrAlreadyFriends 双方已是好友
	ErrAlreadyFriends = errors.New("already friends")

	// ErrRequestDeclined 好友请求已被对方拒绝，同方向不允许再次发送
	ErrRequestDeclined = errors.New("friend request was declined")

	// ErrInvalidCode 邀请码为空或无效
	ErrInvalidCode = errors.New("invalid invite code")

	// ErrInvalidMetric 指标不在白名单内
	ErrInvalidMetric = errors.New("unknown metric")
)
