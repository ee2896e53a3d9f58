package redis

import (
	"encoding/json"
	"fmt"
	"time"

	"fittrack/internal/model"
)

// 指标序列缓存相关常量
const (
	SeriesKeyPrefix = "fit:series:" // 指标序列缓存key前缀
)

// SeriesCacheTTL 序列缓存TTL
var SeriesCacheTTL = 10 * time.Minute

// CachedPoint 缓存的序列数据点
type CachedPoint struct {
	T time.Time `json:"t"`
	V float64   `json:"v"`
}

func seriesKey(userID uint, metric model.Metric) string {
	return fmt.Sprintf("%s%d:%s", SeriesKeyPrefix, userID, metric)
}

// CacheUserSeries 缓存某用户某指标的时间序列
func CacheUserSeries(userID uint, metric model.Metric, points []CachedPoint) error {
	if client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}

	data, err := json.Marshal(points)
	if err != nil {
		return err
	}

	return client.Set(ctx, seriesKey(userID, metric), data, SeriesCacheTTL).Err()
}

// GetCachedUserSeries 获取缓存的指标序列（未命中返回错误）
func GetCachedUserSeries(userID uint, metric model.Metric) ([]CachedPoint, error) {
	if client == nil {
		return nil, fmt.Errorf("redis客户端未初始化")
	}

	data, err := client.Get(ctx, seriesKey(userID, metric)).Result()
	if err != nil {
		return nil, err
	}

	var points []CachedPoint
	if err := json.Unmarshal([]byte(data), &points); err != nil {
		return nil, err
	}

	return points, nil
}

// InvalidateUserSeries 失效某用户的全部指标序列缓存
// 用户记录新的测量后调用
func InvalidateUserSeries(userID uint) error {
	if client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}

	keys := []string{
		seriesKey(userID, model.MetricLevel),
		seriesKey(userID, model.MetricWeight),
		seriesKey(userID, model.MetricFat),
	}
	return client.Del(ctx, keys...).Err()
}
