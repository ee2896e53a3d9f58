package model

import (
	"time"
)

// Metric 可用于跨用户图表的指标（封闭枚举）
// 仅允许白名单内的字段参与团队曲线，防止任意列访问
type Metric string

const (
	MetricLevel  Metric = "level"
	MetricWeight Metric = "weight"
	MetricFat    Metric = "fat"
)

// ValidMetric 判断指标是否在白名单内
func ValidMetric(m Metric) bool {
	switch m {
	case MetricLevel, MetricWeight, MetricFat:
		return true
	}
	return false
}

// Measurement 身体测量记录
// PresetID 关联目标预设（例如 "goku"），仅作展示用途

type Measurement struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index;comment:用户ID"`
	PresetID  string    `gorm:"type:varchar(32);comment:目标预设ID"`
	Height    float64   `gorm:"comment:身高(cm)"`
	Weight    float64   `gorm:"comment:体重(kg)"`
	Fat       float64   `gorm:"comment:体脂率(%)"`
	Level     float64   `gorm:"comment:训练等级"`
	CreatedAt time.Time `gorm:"index;comment:记录时间"`
}

func (Measurement) TableName() string { return "measurement" }

// MetricValue 按指标取值（指标必须先通过 ValidMetric 校验）
func (m *Measurement) MetricValue(metric Metric) float64 {
	switch metric {
	case MetricWeight:
		return m.Weight
	case MetricFat:
		return m.Fat
	default:
		return m.Level
	}
}
