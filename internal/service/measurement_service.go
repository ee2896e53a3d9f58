package service

import (
	"fmt"

	"fittrack/internal/model"
	"fittrack/internal/repository"
	"fittrack/pkg/redis"
)

// MeasurementService 身体测量记录服务
type MeasurementService struct {
	repo *repository.MeasurementRepository
}

func NewMeasurementService(repo *repository.MeasurementRepository) *MeasurementService {
	return &MeasurementService{repo: repo}
}

// Log 记录一次测量
func (s *MeasurementService) Log(userID uint, presetID string, height, weight, fat, level float64) (*model.Measurement, error) {
	if height < 0 || weight < 0 || fat < 0 || level < 0 {
		return nil, fmt.Errorf("%w: measurement values must not be negative", ErrValidation)
	}

	m := &model.Measurement{
		UserID:   userID,
		PresetID: presetID,
		Height:   height,
		Weight:   weight,
		Fat:      fat,
		Level:    level,
	}
	if err := s.repo.Create(m); err != nil {
		return nil, err
	}

	// 新纪录写入后失效该用户的序列缓存
	_ = redis.InvalidateUserSeries(userID)

	return m, nil
}

// ListMine 查询自己的测量历史（时间升序）
func (s *MeasurementService) ListMine(userID uint) ([]*model.Measurement, error) {
	return s.repo.ListByUserAsc(userID)
}
