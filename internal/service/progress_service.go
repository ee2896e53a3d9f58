package service

import (
	"errors"
	"time"

	"fittrack/internal/model"
	"fittrack/internal/repository"
	"fittrack/pkg/redis"

	"gorm.io/gorm"
)

// SeriesPoint 序列中的一个数据点
type SeriesPoint struct {
	T time.Time `json:"t"`
	V float64   `json:"v"`
}

// UserSeries 某个成员的指标序列
type UserSeries struct {
	UserID   uint          `json:"user_id"`
	Username string        `json:"username"`
	Points   []SeriesPoint `json:"points"`
}

// TeamSeriesResult 团队指标序列响应
type TeamSeriesResult struct {
	TeamID uint         `json:"team_id"`
	Metric model.Metric `json:"metric"`
	Series []UserSeries `json:"series"`
}

// ProgressService 跨用户进度聚合
// 所有跨用户读取都必须先通过关系检查（好友或团队成员），
// 不存在"读任意用户数据"的路径
type ProgressService struct {
	teamRepo        *repository.TeamRepository
	friendRepo      *repository.FriendRepository
	measurementRepo *repository.MeasurementRepository
	workoutRepo     *repository.WorkoutRepository
}

func NewProgressService(
	teamRepo *repository.TeamRepository,
	friendRepo *repository.FriendRepository,
	measurementRepo *repository.MeasurementRepository,
	workoutRepo *repository.WorkoutRepository,
) *ProgressService {
	return &ProgressService{
		teamRepo:        teamRepo,
		friendRepo:      friendRepo,
		measurementRepo: measurementRepo,
		workoutRepo:     workoutRepo,
	}
}

// TeamSeries 团队指标序列
// 指标必须在白名单内（校验先于任何行数据访问）；
// 仅团队成员可读；没有数据的成员返回空序列而不是被省略
func (s *ProgressService) TeamSeries(teamID uint, metric model.Metric, requestingUserID uint) (*TeamSeriesResult, error) {
	if !model.ValidMetric(metric) {
		return nil, ErrInvalidMetric
	}

	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// 成员资格是唯一的授权门槛
	if _, err := s.teamRepo.GetMember(teamID, requestingUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}

	members, err := s.teamRepo.ListMembersWithUsers(teamID)
	if err != nil {
		return nil, err
	}

	result := &TeamSeriesResult{
		TeamID: teamID,
		Metric: metric,
		Series: make([]UserSeries, 0, len(members)),
	}
	for _, m := range members {
		points, err := s.userSeries(m.UserID, metric)
		if err != nil {
			return nil, err
		}
		result.Series = append(result.Series, UserSeries{
			UserID:   m.UserID,
			Username: m.Username,
			Points:   points,
		})
	}

	return result, nil
}

// userSeries 某用户某指标的升序序列（优先走Redis缓存）
func (s *ProgressService) userSeries(userID uint, metric model.Metric) ([]SeriesPoint, error) {
	// 缓存命中直接返回，失败回落数据库
	if cached, err := redis.GetCachedUserSeries(userID, metric); err == nil {
		points := make([]SeriesPoint, 0, len(cached))
		for _, p := range cached {
			points = append(points, SeriesPoint{T: p.T, V: p.V})
		}
		return points, nil
	}

	measurements, err := s.measurementRepo.ListByUserAsc(userID)
	if err != nil {
		return nil, err
	}

	points := make([]SeriesPoint, 0, len(measurements))
	cachedPoints := make([]redis.CachedPoint, 0, len(measurements))
	for _, m := range measurements {
		v := m.MetricValue(metric)
		points = append(points, SeriesPoint{T: m.CreatedAt, V: v})
		cachedPoints = append(cachedPoints, redis.CachedPoint{T: m.CreatedAt, V: v})
	}

	// 回填缓存，失败不影响响应
	_ = redis.CacheUserSeries(userID, metric, cachedPoints)

	return points, nil
}

// FriendWorkouts 查看好友的训练记录
// 非好友一律 ErrForbidden（按训练日期降序返回）
func (s *ProgressService) FriendWorkouts(ownerUserID, viewerUserID uint) ([]*model.Workout, error) {
	isFriend, err := s.friendRepo.FriendshipExists(ownerUserID, viewerUserID)
	if err != nil {
		return nil, err
	}
	if !isFriend {
		return nil, ErrForbidden
	}

	return s.workoutRepo.ListByUserDesc(ownerUserID)
}
