package main

import (
	"log"
	"time"

	"fittrack/config"
	"fittrack/internal/model"
	"fittrack/internal/repository"
	"fittrack/internal/service"
	dbPkg "fittrack/pkg/db"
	"fittrack/pkg/jwt"
	"fittrack/pkg/password"
)

// 写入一组演示数据：两个用户、一组好友关系、一个团队和若干测量记录
func main() {
	cfg := config.LoadConfig()

	db, err := dbPkg.InitDB(cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}
	defer dbPkg.CloseDB()

	if err := dbPkg.AutoMigrate(
		&model.User{},
		&model.FriendRequest{},
		&model.Friendship{},
		&model.Team{},
		&model.TeamMember{},
		&model.Measurement{},
	); err != nil {
		log.Fatalf("自动迁移失败: %v", err)
	}

	hash, err := password.Hash("demo1234")
	if err != nil {
		log.Fatalf("密码哈希失败: %v", err)
	}

	alice := &model.User{Username: "alice", Email: "alice@example.com", PasswordHash: hash}
	bob := &model.User{Username: "bob", Email: "bob@example.com", PasswordHash: hash}
	for _, u := range []*model.User{alice, bob} {
		if err := db.Create(u).Error; err != nil {
			log.Fatalf("创建用户 %s 失败: %v", u.Username, err)
		}
	}

	userRepo := repository.NewUserRepository(db)
	friendRepo := repository.NewFriendRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	measurementRepo := repository.NewMeasurementRepository(db)

	friendSvc := service.NewFriendService(friendRepo, userRepo)
	teamSvc := service.NewTeamService(teamRepo)

	req, err := friendSvc.SendRequest(alice.ID, bob.ID)
	if err != nil {
		log.Fatalf("发送好友请求失败: %v", err)
	}
	if err := friendSvc.AcceptRequest(req.ID, bob.ID); err != nil {
		log.Fatalf("接受好友请求失败: %v", err)
	}

	team, err := teamSvc.CreateTeam("Squad", alice.ID)
	if err != nil {
		log.Fatalf("创建团队失败: %v", err)
	}
	if _, err := teamSvc.JoinByCode(team.InviteCode, bob.ID); err != nil {
		log.Fatalf("加入团队失败: %v", err)
	}

	now := time.Now()
	for i := 0; i < 5; i++ {
		m := &model.Measurement{
			UserID:    alice.ID,
			PresetID:  "goku",
			Height:    172,
			Weight:    70 - float64(i)*0.3,
			Fat:       18 - float64(i)*0.2,
			Level:     40 + float64(i)*2,
			CreatedAt: now.AddDate(0, 0, i-5),
		}
		if err := measurementRepo.Create(m); err != nil {
			log.Fatalf("写入测量记录失败: %v", err)
		}
	}

	jwtSvc := jwt.NewJWTService(cfg.JWT)
	token, err := jwtSvc.GenerateToken(alice.ID, alice.Username)
	if err != nil {
		log.Fatalf("签发token失败: %v", err)
	}

	log.Printf("演示数据已写入：团队 %q 邀请码 %s", team.Name, team.InviteCode)
	log.Printf("alice 的测试token：%s", token)
}
