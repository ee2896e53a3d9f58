package repository

import (
	"fittrack/internal/model"

	"gorm.io/gorm"
)

type TeamRepository struct {
	orm *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{orm: db}
}

// TeamMemberUser 成员及其用户名（team_member ⋈ user）
type TeamMemberUser struct {
	UserID   uint
	Username string
	Role     string
}

// CreateWithOwner 创建团队并写入owner成员记录
// 两次写入在同一事务内提交：不允许出现没有owner成员的团队
func (r *TeamRepository) CreateWithOwner(team *model.Team) error {
	return r.orm.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}

		member := &model.TeamMember{
			TeamID: team.ID,
			UserID: team.OwnerUserID,
			Role:   model.TeamRoleOwner,
		}
		return tx.Create(member).Error
	})
}

// GetByID 按ID查询团队
func (r *TeamRepository) GetByID(id uint) (*model.Team, error) {
	var team model.Team
	if err := r.orm.First(&team, id).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByInviteCode 按邀请码查询团队
func (r *TeamRepository) GetByInviteCode(code string) (*model.Team, error) {
	var team model.Team
	if err := r.orm.Where("invite_code = ?", code).First(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// GetMember 查询某用户在某团队的成员记录
func (r *TeamRepository) GetMember(teamID, userID uint) (*model.TeamMember, error) {
	var member model.TeamMember
	err := r.orm.Where("team_id = ? AND user_id = ?", teamID, userID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// AddMember 写入成员记录
// (team_id, user_id) 唯一约束冲突由调用方处理（幂等加入）
func (r *TeamRepository) AddMember(member *model.TeamMember) error {
	return r.orm.Create(member).Error
}

// UpdateInviteCode 覆盖团队邀请码，旧码立即失效
func (r *TeamRepository) UpdateInviteCode(teamID uint, code string) error {
	return r.orm.Model(&model.Team{}).
		Where("id = ?", teamID).
		Update("invite_code", code).Error
}

// ListTeamsByUser 查询某用户所属的全部团队（任意角色）
func (r *TeamRepository) ListTeamsByUser(userID uint) ([]*model.Team, error) {
	var teams []*model.Team
	err := r.orm.
		Joins("JOIN team_member ON team_member.team_id = team.id").
		Where("team_member.user_id = ?", userID).
		Order("team.created_at ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// ListMembersWithUsers 查询团队全部成员及用户名
func (r *TeamRepository) ListMembersWithUsers(teamID uint) ([]TeamMemberUser, error) {
	var members []TeamMemberUser
	err := r.orm.Model(&model.TeamMember{}).
		Select("team_member.user_id AS user_id, user.username AS username, team_member.role AS role").
		Joins("JOIN user ON user.id = team_member.user_id").
		Where("team_member.team_id = ?", teamID).
		Order("team_member.joined_at ASC").
		Scan(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}
