package redis

import (
	"encoding/json"
	"fmt"
	"time"
)

// 离线通知相关常量
const (
	NotificationKeyPrefix = "fit:notify:" // 离线通知key前缀
	NotificationTTL       = 7 * 24 * time.Hour
	MaxStoredNotis        = 100 // 每个用户最多暂存的通知数
)

// Notification 暂存的通知
// Type: friend_request / friend_accepted / team_member_joined
type Notification struct {
	Type       string                 `json:"type"`
	FromUserID uint                   `json:"from_user_id,omitempty"`
	Payload    map[string]interface{} `json:"payload,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}

func notificationKey(userID uint) string {
	return fmt.Sprintf("%s%d", NotificationKeyPrefix, userID)
}

// AddNotification 为离线用户暂存一条通知
func AddNotification(userID uint, n *Notification) error {
	if client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}

	data, err := json.Marshal(n)
	if err != nil {
		return err
	}

	key := notificationKey(userID)
	pipe := client.Pipeline()
	pipe.RPush(ctx, key, data)
	pipe.LTrim(ctx, key, -MaxStoredNotis, -1) // 只保留最近的若干条
	pipe.Expire(ctx, key, NotificationTTL)
	_, err = pipe.Exec(ctx)
	return err
}

// GetNotifications 获取用户暂存的通知（最多limit条）
func GetNotifications(userID uint, limit int) ([]*Notification, error) {
	if client == nil {
		return nil, fmt.Errorf("redis客户端未初始化")
	}

	data, err := client.LRange(ctx, notificationKey(userID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	notifications := make([]*Notification, 0, len(data))
	for _, item := range data {
		var n Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			continue
		}
		notifications = append(notifications, &n)
	}

	return notifications, nil
}

// ClearNotifications 清空用户暂存的通知
func ClearNotifications(userID uint) error {
	if client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}

	return client.Del(ctx, notificationKey(userID)).Err()
}
