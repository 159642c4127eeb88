package app

import (
	"dsa_tracker_backend/docs"
	"dsa_tracker_backend/internal/config"
	"dsa_tracker_backend/internal/middleware"
	"dsa_tracker_backend/internal/model"
	"dsa_tracker_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录，带 token 时仍记录活跃)
	a.registerPublicRoutes(router, c, repos, cfg)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerUserRoutes(authGroup, c)
	}

	// 3. 管理员相关接口
	a.registerAdminRoutes(router, c, repos)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	public := router.Group("/api")
	public.Use(middleware.TryAuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/motivation", c.motivation.GetCurrentMotivation)
	}
}

func (a *App) registerUserRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.PUT("/user/profile", c.user.UpdateProfile)
	rg.POST("/user/avatar/upload", c.user.UploadAvatar)

	// 刷题活动记录
	rg.GET("/activities", c.activity.List)
	rg.POST("/activities", c.activity.Create)
	rg.GET("/activities/:id", c.activity.Get)
	rg.PUT("/activities/:id", c.activity.Update)
	rg.DELETE("/activities/:id", c.activity.Delete)

	// 统计
	rg.GET("/stats", c.stats.GetSummary)
	rg.GET("/stats/streak", c.stats.GetStreak)
	rg.GET("/stats/heatmap", c.stats.GetHeatmap)

	// 徽章与等级
	rg.GET("/badges", c.badge.GetBadges)
	rg.GET("/level", c.stats.GetLevel)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(a.Config), middleware.ActivityMiddleware(repos.user), middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.GET("/users", c.admin.GetUsers)
		admin.GET("/overview", c.admin.GetOverview)
		admin.PATCH("/users/:id/disable", c.admin.DisableUser)
		admin.DELETE("/users/:id", c.admin.DeleteUser)

		admin.GET("/motivations", c.motivation.GetAllMotivations)
		admin.POST("/motivations", c.motivation.CreateMotivation)
		admin.PUT("/motivations/:id", c.motivation.UpdateMotivation)
		admin.DELETE("/motivations/:id", c.motivation.DeleteMotivation)
	}
}
