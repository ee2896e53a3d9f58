package repository

import (
	"fittrack/internal/model"

	"gorm.io/gorm"
)

type LiftRepository struct {
	orm *gorm.DB
}

func NewLiftRepository(db *gorm.DB) *LiftRepository {
	return &LiftRepository{orm: db}
}

func (r *LiftRepository) CreateExercise(e *model.Exercise) error {
	return r.orm.Create(e).Error
}

func (r *LiftRepository) GetExerciseByID(id uint) (*model.Exercise, error) {
	var e model.Exercise
	if err := r.orm.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *LiftRepository) GetExerciseByName(name string) (*model.Exercise, error) {
	var e model.Exercise
	if err := r.orm.Where("name = ?", name).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *LiftRepository) ListExercises() ([]*model.Exercise, error) {
	var exercises []*model.Exercise
	if err := r.orm.Order("id ASC").Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (r *LiftRepository) CreateLift(l *model.Lift) error {
	return r.orm.Create(l).Error
}

// ListLiftsAsc 查询某用户某种目的力量记录（按日期升序）
func (r *LiftRepository) ListLiftsAsc(userID, exerciseID uint) ([]*model.Lift, error) {
	var lifts []*model.Lift
	err := r.orm.
		Where("user_id = ? AND exercise_id = ?", userID, exerciseID).
		Order("performed_at ASC").
		Find(&lifts).Error
	if err != nil {
		return nil, err
	}
	return lifts, nil
}
