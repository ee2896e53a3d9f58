package repository

import (
	"fittrack/internal/model"

	"gorm.io/gorm"
)

type MeasurementRepository struct {
	orm *gorm.DB
}

func NewMeasurementRepository(db *gorm.DB) *MeasurementRepository {
	return &MeasurementRepository{orm: db}
}

func (r *MeasurementRepository) Create(m *model.Measurement) error {
	return r.orm.Create(m).Error
}

// ListByUserAsc 查询某用户的全部测量记录（时间升序）
func (r *MeasurementRepository) ListByUserAsc(userID uint) ([]*model.Measurement, error) {
	var measurements []*model.Measurement
	err := r.orm.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&measurements).Error
	if err != nil {
		return nil, err
	}
	return measurements, nil
}
