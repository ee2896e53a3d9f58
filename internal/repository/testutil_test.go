package repository

import (
	"testing"

	"fittrack/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// newTestDB 创建内存sqlite库（与生产配置一致：单数表名、唯一键冲突翻译）
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// 内存库每个连接各自独立，必须收敛到单连接
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
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
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	return db
}

// createTestUser 插入测试用户
func createTestUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()

	u := &model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}
