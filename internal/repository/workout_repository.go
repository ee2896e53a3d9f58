package repository

import (
	"fittrack/internal/model"

	"gorm.io/gorm"
)

type WorkoutRepository struct {
	orm *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{orm: db}
}

// CreateWithSets 创建训练会话及其全部组数记录（同一事务）
func (r *WorkoutRepository) CreateWithSets(workout *model.Workout) error {
	return r.orm.Transaction(func(tx *gorm.DB) error {
		// gorm 会级联插入 Sets 并回填 WorkoutID
		return tx.Create(workout).Error
	})
}

// ListByUserDesc 查询某用户的训练记录（按训练日期降序，带组数）
func (r *WorkoutRepository) ListByUserDesc(userID uint) ([]*model.Workout, error) {
	var workouts []*model.Workout
	err := r.orm.
		Preload("Sets").
		Where("user_id = ?", userID).
		Order("performed_at DESC").
		Find(&workouts).Error
	if err != nil {
		return nil, err
	}
	return workouts, nil
}
