package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"fittrack/pkg/redis"

	"github.com/gorilla/websocket"
)

// Client 代表一个WebSocket连接的用户

type Client struct {
	UserID uint
	Conn   *websocket.Conn
	Send   chan []byte
}

// Manager 管理所有在线用户的WebSocket连接
// 并发安全；用户不在线时通知暂存到Redis

type Manager struct {
	clients map[uint]*Client // 在线用户
	lock    sync.RWMutex
}

var manager = &Manager{
	clients: make(map[uint]*Client),
}

// GetManager 获取全局WebSocket管理器
func GetManager() *Manager {
	return manager
}

// AddClient 添加新连接
func (m *Manager) AddClient(userID uint, client *Client) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.clients[userID] = client

	// 推送Redis中暂存的通知
	go m.pushStoredNotifications(userID, client)
}

// RemoveClient 移除连接
func (m *Manager) RemoveClient(userID uint) {
	m.lock.Lock()
	defer m.lock.Unlock()
	if c, ok := m.clients[userID]; ok {
		close(c.Send)
		delete(m.clients, userID)
	}
}

// IsOnline 判断用户是否在线
func (m *Manager) IsOnline(userID uint) bool {
	m.lock.RLock()
	defer m.lock.RUnlock()
	_, ok := m.clients[userID]
	return ok
}

// Notify 向指定用户推送一条通知
// 用户不在线时暂存到Redis，等下次连接时补发
func (m *Manager) Notify(userID uint, n *redis.Notification) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	m.lock.RLock()
	client, ok := m.clients[userID]
	m.lock.RUnlock()

	if ok {
		data, err := json.Marshal(n)
		if err != nil {
			return
		}
		select {
		case client.Send <- data:
		default:
			// 发送缓冲已满，可能连接已断开
		}
		return
	}

	// 不在线，暂存到Redis
	go func() {
		_ = redis.AddNotification(userID, n)
	}()
}

// pushStoredNotifications 补发暂存的通知
func (m *Manager) pushStoredNotifications(userID uint, client *Client) {
	notifications, err := redis.GetNotifications(userID, redis.MaxStoredNotis)
	if err != nil || len(notifications) == 0 {
		return
	}

	for _, n := range notifications {
		data, err := json.Marshal(n)
		if err != nil {
			continue
		}

		select {
		case client.Send <- data:
		case <-time.After(5 * time.Second):
			// 发送超时，停止补发
			return
		}
	}

	// 补发完成后清空
	_ = redis.ClearNotifications(userID)
}
