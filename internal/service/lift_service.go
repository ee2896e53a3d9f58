package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fittrack/internal/model"
	"fittrack/internal/repository"

	"gorm.io/gorm"
)

// LiftService 种目与力量进度服务
type LiftService struct {
	liftRepo *repository.LiftRepository
}

func NewLiftService(liftRepo *repository.LiftRepository) *LiftService {
	return &LiftService{liftRepo: liftRepo}
}

// CreateExercise 创建训练种目（同名幂等返回已有种目）
func (s *LiftService) CreateExercise(name string) (*model.Exercise, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: exercise name is required", ErrValidation)
	}

	e := &model.Exercise{Name: name}
	if err := s.liftRepo.CreateExercise(e); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.liftRepo.GetExerciseByName(name)
		}
		return nil, err
	}
	return e, nil
}

// ListExercises 查询全部种目
func (s *LiftService) ListExercises() ([]*model.Exercise, error) {
	return s.liftRepo.ListExercises()
}

// LogLift 记录一组力量数据
func (s *LiftService) LogLift(userID, exerciseID uint, performedAt string, weightKg float64, reps int) (*model.Lift, error) {
	if weightKg <= 0 || reps <= 0 {
		return nil, fmt.Errorf("%w: weight and reps must be positive", ErrValidation)
	}
	date, err := parseDate(performedAt)
	if err != nil {
		return nil, err
	}

	if _, err := s.liftRepo.GetExerciseByID(exerciseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	l := &model.Lift{
		UserID:      userID,
		ExerciseID:  exerciseID,
		PerformedAt: date,
		WeightKg:    weightKg,
		Reps:        reps,
	}
	if err := s.liftRepo.CreateLift(l); err != nil {
		return nil, err
	}
	return l, nil
}

// LiftSeries 某种目的进度序列（每个记录日取最大重量，按日期升序）
func (s *LiftService) LiftSeries(userID, exerciseID uint) ([]SeriesPoint, error) {
	if _, err := s.liftRepo.GetExerciseByID(exerciseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	lifts, err := s.liftRepo.ListLiftsAsc(userID, exerciseID)
	if err != nil {
		return nil, err
	}

	points := make([]SeriesPoint, 0, len(lifts))
	for _, l := range lifts {
		day := l.PerformedAt.Truncate(24 * time.Hour)
		if n := len(points); n > 0 && points[n-1].T.Equal(day) {
			if l.WeightKg > points[n-1].V {
				points[n-1].V = l.WeightKg
			}
			continue
		}
		points = append(points, SeriesPoint{T: day, V: l.WeightKg})
	}
	return points, nil
}
