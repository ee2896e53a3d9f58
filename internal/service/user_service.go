package service

import (
	"errors"
	"fmt"
	"strings"

	"fittrack/internal/model"
	"fittrack/internal/repository"
	"fittrack/pkg/jwt"
	"fittrack/pkg/password"

	"gorm.io/gorm"
)

type UserService struct {
	repo       *repository.UserRepository
	jwtService *jwt.JWTService
}

func NewUserService(repo *repository.UserRepository, jwtService *jwt.JWTService) *UserService {
	return &UserService{repo: repo, jwtService: jwtService}
}

// Register 注册
func (s *UserService) Register(username, email, plainPassword string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || plainPassword == "" {
		return nil, "", fmt.Errorf("%w: username, email and password are required", ErrValidation)
	}

	// 密码哈希
	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, "", err
	}
	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", fmt.Errorf("%w: email or username already registered", ErrValidation)
		}
		return nil, "", err
	}

	// 注册后默认签发 token
	token, err := s.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login 登录（邮箱 + 密码）
func (s *UserService) Login(email, plainPassword string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || plainPassword == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	u, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, "", errors.New("invalid credentials")
	}
	if !password.Verify(plainPassword, u.PasswordHash) {
		return nil, "", errors.New("invalid credentials")
	}

	token, err := s.jwtService.GenerateToken(u.ID, u.Username)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// GetByID 查询用户
func (s *UserService) GetByID(id uint) (*model.User, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}
