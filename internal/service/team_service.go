package service

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"fittrack/internal/model"
	"fittrack/internal/repository"
	"fittrack/pkg/redis"
	"fittrack/pkg/websocket"

	"gorm.io/gorm"
)

const (
	inviteCodeBytes       = 6 // base64后为8个URL安全字符
	inviteCodeMaxAttempts = 5
)

// TeamService 团队成员管理服务
// 拥有团队创建、邀请码签发/轮换和按码加入的语义
type TeamService struct {
	teamRepo *repository.TeamRepository
}

func NewTeamService(teamRepo *repository.TeamRepository) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

// generateInviteCode 生成URL安全的随机邀请码
func generateInviteCode() (string, error) {
	buf := make([]byte, inviteCodeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate invite code failed: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// CreateTeam 创建团队
// 团队与owner成员记录原子写入；邀请码撞唯一键时重新生成再试
func (s *TeamService) CreateTeam(name string, ownerUserID uint) (*model.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: team name is required", ErrValidation)
	}

	for attempt := 0; attempt < inviteCodeMaxAttempts; attempt++ {
		code, err := generateInviteCode()
		if err != nil {
			return nil, err
		}

		team := &model.Team{
			Name:        name,
			OwnerUserID: ownerUserID,
			InviteCode:  code,
		}
		err = s.teamRepo.CreateWithOwner(team)
		if err == nil {
			return team, nil
		}
		// 邀请码撞唯一键：换一个码重试，不向调用方暴露
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			continue
		}
		return nil, err
	}
	return nil, errors.New("failed to allocate a unique invite code")
}

// JoinByCode 按邀请码加入团队
// 重复加入幂等返回已加入的团队ID
func (s *TeamService) JoinByCode(code string, userID uint) (uint, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return 0, ErrInvalidCode
	}

	team, err := s.teamRepo.GetByInviteCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrInvalidCode
		}
		return 0, err
	}

	// 已是成员，幂等成功
	if _, err := s.teamRepo.GetMember(team.ID, userID); err == nil {
		return team.ID, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	member := &model.TeamMember{
		TeamID: team.ID,
		UserID: userID,
		Role:   model.TeamRoleMember,
	}
	if err := s.teamRepo.AddMember(member); err != nil {
		// 并发重复加入：唯一键冲突视为已加入
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return team.ID, nil
		}
		return 0, err
	}

	// 通知团队owner
	websocket.GetManager().Notify(team.OwnerUserID, &redis.Notification{
		Type:       "team_member_joined",
		FromUserID: userID,
		Payload:    map[string]interface{}{"team_id": team.ID},
	})

	return team.ID, nil
}

// RotateInviteCode 轮换邀请码
// 仅owner可操作；旧码立即永久失效，没有宽限期
func (s *TeamService) RotateInviteCode(teamID, actingUserID uint) (string, error) {
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	if team.OwnerUserID != actingUserID {
		return "", ErrForbidden
	}

	for attempt := 0; attempt < inviteCodeMaxAttempts; attempt++ {
		code, err := generateInviteCode()
		if err != nil {
			return "", err
		}

		err = s.teamRepo.UpdateInviteCode(teamID, code)
		if err == nil {
			return code, nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			continue
		}
		return "", err
	}
	return "", errors.New("failed to allocate a unique invite code")
}

// ListMyTeams 查询调用者所属的全部团队
func (s *TeamService) ListMyTeams(userID uint) ([]*model.Team, error) {
	return s.teamRepo.ListTeamsByUser(userID)
}
