package model

import (
	"time"
)

// Exercise 训练种目（卧推、深蹲等）

type Exercise struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(64);not null;uniqueIndex;comment:种目名称"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
}

func (Exercise) TableName() string { return "exercise" }

// Workout 一次训练（会话），包含若干组数记录
// 创建时会话与组数在同一事务内写入

type Workout struct {
	ID          uint         `gorm:"primaryKey"`
	UserID      uint         `gorm:"not null;index;comment:用户ID"`
	PerformedAt time.Time    `gorm:"not null;index;comment:训练日期"`
	Note        string       `gorm:"type:varchar(255);comment:备注"`
	Sets        []WorkoutSet `gorm:"foreignKey:WorkoutID"`
	CreatedAt   time.Time    `gorm:"comment:创建时间"`
}

func (Workout) TableName() string { return "workout" }

// WorkoutSet 训练中的一组

type WorkoutSet struct {
	ID         uint    `gorm:"primaryKey"`
	WorkoutID  uint    `gorm:"not null;index;comment:训练ID"`
	ExerciseID uint    `gorm:"not null;index;comment:种目ID"`
	SetNo      int     `gorm:"not null;comment:组号"`
	WeightKg   float64 `gorm:"not null;comment:重量(kg)"`
	Reps       int     `gorm:"not null;comment:次数"`
}

func (WorkoutSet) TableName() string { return "workout_set" }

// Lift 单组力量记录（用于种目进度曲线）

type Lift struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;index;comment:用户ID"`
	ExerciseID  uint      `gorm:"not null;index;comment:种目ID"`
	PerformedAt time.Time `gorm:"not null;index;comment:记录日期"`
	WeightKg    float64   `gorm:"not null;comment:重量(kg)"`
	Reps        int       `gorm:"not null;comment:次数"`
	CreatedAt   time.Time `gorm:"comment:创建时间"`
}

func (Lift) TableName() string { return "lift" }
