package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dsa_tracker_backend/internal/config"
	"dsa_tracker_backend/internal/controller"
	"dsa_tracker_backend/internal/repository"
	"dsa_tracker_backend/internal/service"
	"dsa_tracker_backend/internal/store"
	"dsa_tracker_backend/pkg/database"
	"dsa_tracker_backend/pkg/logger"
	"dsa_tracker_backend/pkg/monitoring"
	"dsa_tracker_backend/pkg/security"
	"dsa_tracker_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	activity   *repository.ActivityRepository
	badgeAward *repository.BadgeAwardRepository
	motivation *repository.MotivationRepository
}

type services struct {
	auth       *service.AuthService
	user       *service.UserService
	activity   *service.ActivityService
	stats      *service.StatsService
	badge      *service.BadgeService
	admin      *service.AdminService
	motivation *service.MotivationService
	storage    *service.StorageService
}

type controllers struct {
	auth       *controller.AuthController
	user       *controller.UserController
	activity   *controller.ActivityController
	stats      *controller.StatsController
	badge      *controller.BadgeController
	admin      *controller.AdminController
	motivation *controller.MotivationController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 热更新配置，中间件持有的是同一份指针
func (a *App) ApplyConfig(newCfg *config.Config) {
	*a.Config = *newCfg
	logger.Log.Info("Config reloaded")
	for _, cb := range a.configCallbacks {
		cb(newCfg)
	}
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		activity:   repository.NewActivityRepository(db),
		badgeAward: repository.NewBadgeAwardRepository(db, rdb),
		motivation: repository.NewMotivationRepository(db),
	}
}

// initActivityStore 按配置选择活动存储后端，默认使用数据库
func (a *App) initActivityStore(cfg *config.Config, repos *repositories) store.ActivityStore {
	switch cfg.Activity.Backend {
	case "memory":
		logger.Log.Warn("Using in-memory activity store, data will not survive restarts")
		return store.NewMemoryStore()
	case "file":
		path := cfg.Activity.FilePath
		if path == "" {
			path = "data/activities.json"
		}
		fs, err := store.NewFileStore(path)
		if err != nil {
			logger.Log.Fatal("Failed to open activity file store", zap.String("path", path), zap.Error(err))
		}
		return fs
	default:
		return repos.activity
	}
}

func (a *App) initServices(repos *repositories, activityStore store.ActivityStore, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.activity = service.NewActivityService(activityStore)
	s.stats = service.NewStatsService(activityStore)
	s.badge = service.NewBadgeService(activityStore, repos.badgeAward)
	s.admin = service.NewAdminService(repos.user, repos.activity)
	s.motivation = service.NewMotivationService(repos.motivation, rdb)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth, s.user),
		user:       controller.NewUserController(s.user, s.storage),
		activity:   controller.NewActivityController(s.activity),
		stats:      controller.NewStatsController(s.stats),
		badge:      controller.NewBadgeController(s.badge),
		admin:      controller.NewAdminController(s.user, s.admin),
		motivation: controller.NewMotivationController(s.motivation),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 6000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb)
	activityStore := app.initActivityStore(cfg, repos)
	if cfg.Activity.Backend != "" && cfg.Activity.Backend != "database" {
		// 管理端聚合只统计数据库中的活动
		logger.Log.Warn("Activity backend is not database, admin overview aggregates only cover database records",
			zap.String("backend", cfg.Activity.Backend))
	}
	services := app.initServices(repos, activityStore, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("dsa-tracker", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
		router.Static("/api/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Log.Sync()
	log.Println("Server exiting")
}
