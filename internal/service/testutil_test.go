package service

import (
	"testing"

	"fittrack/internal/model"
	"fittrack/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// newTestDB 创建内存sqlite数据库并迁移全部表
// TranslateError和SingularTable需与生产配置一致，
// 否则唯一键冲突和表名都对不上
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	// 内存sqlite每个连接是独立数据库，必须限制为单连接
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.User{},
		&model.FriendRequest{},
		&model.Friendship{},
		&model.Team{},
		&model.TeamMember{},
		&model.Measurement{},
		&model.Exercise{},
		&model.Workout{},
		&model.WorkoutSet{},
		&model.Lift{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()

	user := &model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create test user %q: %v", username, err)
	}
	return user
}

// newFriendService 装配好友服务及其依赖
func newFriendService(db *gorm.DB) *FriendService {
	return NewFriendService(
		repository.NewFriendRepository(db),
		repository.NewUserRepository(db),
	)
}

func newTeamService(db *gorm.DB) *TeamService {
	return NewTeamService(repository.NewTeamRepository(db))
}

func newProgressService(db *gorm.DB) *ProgressService {
	return NewProgressService(
		repository.NewTeamRepository(db),
		repository.NewFriendRepository(db),
		repository.NewMeasurementRepository(db),
		repository.NewWorkoutRepository(db),
	)
}
