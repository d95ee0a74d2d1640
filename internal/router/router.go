package router

import (
	"github.com/devfolio/internal/config"
	"github.com/devfolio/internal/handler"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// Setup 配置 Gin 引擎和路由
func Setup(cfg config.AppConfig, api *handler.API) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("devfolio_session", store))

	// 静态文件服务（上传的图片）
	r.Static(cfg.UploadURLPath, cfg.UploadDir)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// 公共接口
	r.GET("/", api.ShowHome)
	r.GET("/projects", api.ListProjects)
	r.GET("/projects/:id", api.ShowProject)

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/contact", api.Contact)
		apiGroup.POST("/analytics", api.Track)
		apiGroup.GET("/cv/generate", api.GenerateCV)
		apiGroup.GET("/icons", api.ListIcons)
		apiGroup.GET("/setup", api.SetupStatus)
		apiGroup.POST("/setup", api.Setup)
	}

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		// 需要认证的后台路由
		auth := admin.Group("/api")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/projects", api.GetProjects)
			auth.GET("/projects/:id", api.GetProject)
			auth.POST("/projects", api.CreateProject)
			auth.PUT("/projects/:id", api.UpdateProject)
			auth.DELETE("/projects/:id", api.DeleteProject)
			auth.POST("/projects/reorder", api.ReorderProjects)

			auth.GET("/skills", api.GetSkills)
			auth.GET("/skills/:id", api.GetSkill)
			auth.POST("/skills", api.CreateSkill)
			auth.PUT("/skills/:id", api.UpdateSkill)
			auth.DELETE("/skills/:id", api.DeleteSkill)
			auth.POST("/skills/reorder", api.ReorderSkills)

			auth.GET("/experiences", api.GetExperiences)
			auth.POST("/experiences", api.CreateExperience)
			auth.PUT("/experiences/:id", api.UpdateExperience)
			auth.DELETE("/experiences/:id", api.DeleteExperience)

			auth.GET("/educations", api.GetEducations)
			auth.POST("/educations", api.CreateEducation)
			auth.PUT("/educations/:id", api.UpdateEducation)
			auth.DELETE("/educations/:id", api.DeleteEducation)

			auth.GET("/cv-projects", api.GetCVProjects)
			auth.POST("/cv-projects", api.CreateCVProject)
			auth.PUT("/cv-projects/:id", api.UpdateCVProject)
			auth.DELETE("/cv-projects/:id", api.DeleteCVProject)

			auth.GET("/profile", api.GetProfile)
			auth.PUT("/profile", api.UpdateProfile)

			auth.GET("/analytics/summary", api.AnalyticsSummary)
			auth.GET("/analytics/top-pages", api.AnalyticsTopPages)
			auth.GET("/analytics/trends", api.AnalyticsTrends)
			auth.POST("/analytics/reset", api.AnalyticsReset)

			auth.POST("/upload", api.UploadImage)
		}
	}

	return r
}
