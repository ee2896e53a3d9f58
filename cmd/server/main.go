package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fittrack/config"
	"fittrack/internal/handler"
	"fittrack/internal/model"
	"fittrack/internal/repository"
	"fittrack/internal/service"
	dbPkg "fittrack/pkg/db"
	"fittrack/pkg/jwt"
	"fittrack/pkg/logger"
	redisPkg "fittrack/pkg/redis"
	"fittrack/pkg/response"
	"fittrack/pkg/websocket"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	cfg := config.LoadConfig()

	// 2. 初始化日志系统
	log := logger.InitLogger(cfg.Log)
	defer log.Sync()

	log.Info("=== fittrack 启动 ===")
	log.Info("服务器配置信息",
		zap.String("port", cfg.Server.Port),
		zap.String("database_host", cfg.Database.Host),
		zap.Int("database_port", cfg.Database.Port),
		zap.String("database_name", cfg.Database.Database),
		zap.Duration("jwt_expire_time", cfg.JWT.ExpireTime),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 初始化数据库连接
	if _, err := dbPkg.InitDB(cfg.Database); err != nil {
		log.Fatal("数据库连接失败", zap.Error(err))
	}
	defer func() {
		if err := dbPkg.CloseDB(); err != nil {
			log.Error("关闭数据库连接失败", zap.Error(err))
		}
	}()
	log.Info("数据库连接成功")

	// 3.1 自动迁移表结构
	if err := dbPkg.AutoMigrate(
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
		log.Fatal("自动迁移失败", zap.Error(err))
	}
	log.Info("自动迁移完成")

	// 3.2 初始化Redis（缓存与离线通知；连不上不影响核心功能）
	if err := redisPkg.InitRedis(cfg.Redis); err != nil {
		log.Warn("Redis连接失败，缓存与离线通知不可用", zap.Error(err))
	} else {
		defer redisPkg.Close()
		log.Info("Redis连接成功")
	}

	// 3.3 初始化业务服务
	db := dbPkg.GetDB()
	jwtSvc := jwt.NewJWTService(cfg.JWT)

	userRepo := repository.NewUserRepository(db)
	friendRepo := repository.NewFriendRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	measurementRepo := repository.NewMeasurementRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)
	liftRepo := repository.NewLiftRepository(db)

	userSvc := service.NewUserService(userRepo, jwtSvc)
	friendSvc := service.NewFriendService(friendRepo, userRepo)
	teamSvc := service.NewTeamService(teamRepo)
	progressSvc := service.NewProgressService(teamRepo, friendRepo, measurementRepo, workoutRepo)
	measurementSvc := service.NewMeasurementService(measurementRepo)
	workoutSvc := service.NewWorkoutService(workoutRepo, liftRepo)
	liftSvc := service.NewLiftService(liftRepo)

	userHandler := handler.NewUserHandler(userSvc)
	friendHandler := handler.NewFriendHandler(friendSvc)
	teamHandler := handler.NewTeamHandler(teamSvc)
	progressHandler := handler.NewProgressHandler(progressSvc)
	measurementHandler := handler.NewMeasurementHandler(measurementSvc)
	workoutHandler := handler.NewWorkoutHandler(workoutSvc, liftSvc)

	// 4. 设置Gin模式
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 5. 创建Gin路由
	router := gin.New()

	// 注入jwt/ws配置到Gin context，供WebSocket使用
	router.Use(func(c *gin.Context) {
		c.Set("jwt_config", cfg.JWT)
		c.Set("ws_config", cfg.WebSocket)
		c.Next()
	})

	// 使用中间件
	router.Use(logger.LoggerMiddleware())      // 自定义日志中间件
	router.Use(logger.ErrorLoggerMiddleware()) // 错误日志中间件

	// 6. 基础路由
	router.GET("/health", func(c *gin.Context) {
		status := "ok"
		if err := dbPkg.HealthCheck(); err != nil {
			status = "db-down"
		}
		response.Success(c, gin.H{
			"status": status,
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// 公开接口
	router.GET("/presets", handler.ListPresets)

	// 认证路由
	auth := router.Group("/auth")
	{
		auth.POST("/register", userHandler.Register)
		auth.POST("/login", userHandler.Login)

		authMe := auth.Group("")
		authMe.Use(jwtSvc.AuthMiddleware())
		{
			authMe.GET("/me", userHandler.Me)
		}
	}

	// 6.1 业务路由（全部需要认证）
	v1 := router.Group("/api/v1")
	v1.Use(jwtSvc.AuthMiddleware())
	{
		// 好友
		friends := v1.Group("/friends")
		{
			friends.POST("/requests", friendHandler.SendRequest)                    // 发送好友请求
			friends.GET("/requests", friendHandler.Inbox)                           // 收件箱
			friends.POST("/requests/:request_id/accept", friendHandler.Accept)      // 接受请求
			friends.POST("/requests/:request_id/reject", friendHandler.Reject)      // 拒绝请求
			friends.GET("", friendHandler.ListFriends)                              // 好友列表
		}

		// 团队
		teams := v1.Group("/teams")
		{
			teams.POST("", teamHandler.Create)                                      // 创建团队
			teams.POST("/join_by_code", teamHandler.JoinByCode)                     // 按邀请码加入
			teams.GET("/my", teamHandler.ListMyTeams)                               // 我的团队
			teams.POST("/:team_id/rotate_code", teamHandler.RotateInviteCode)       // 轮换邀请码
			teams.GET("/:team_id/series", progressHandler.TeamSeries)               // 团队指标序列
		}

		// 好友训练记录（跨用户读取）
		v1.GET("/users/:user_id/workouts", progressHandler.FriendWorkouts)

		// 测量
		v1.POST("/measurements", measurementHandler.Log)
		v1.GET("/measurements", measurementHandler.ListMine)

		// 训练
		v1.POST("/workouts", workoutHandler.Create)
		v1.GET("/workouts", workoutHandler.ListMine)

		// 种目与力量记录
		v1.POST("/exercises", workoutHandler.CreateExercise)
		v1.GET("/exercises", workoutHandler.ListExercises)
		v1.POST("/lifts", workoutHandler.LogLift)
		v1.GET("/lifts/series", workoutHandler.LiftSeries)
	}

	// WebSocket通知通道
	router.GET("/ws", websocket.WsHandler)

	// 7. 创建HTTP服务器
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 8. 启动HTTP服务器
	go func() {
		log.Info("HTTP服务器启动", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP服务器启动失败", zap.Error(err))
		}
	}()

	// 9. 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("HTTP服务器关闭失败", zap.Error(err))
	}

	log.Info("服务器已安全关闭")
}
