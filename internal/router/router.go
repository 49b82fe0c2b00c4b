package router

import (
	"time"

	"github.com/devfolio/internal/config"
	"github.com/devfolio/internal/handler"
	"github.com/devfolio/internal/logger"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// Setup configures the Gin engine and all routes.
func Setup(api *handler.API, cfg config.AppConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
	})
	r.Use(sessions.Sessions("devfolio_session", store))

	r.Use(api.Maintenance())

	r.Static("/static", "./web/static")

	public := r.Group("/api")
	{
		public.GET("/health", api.Health)
		public.GET("/posts", api.ListPosts)
		public.GET("/posts/:slug", api.GetPost)
		public.GET("/posts/:slug/related", api.RelatedPosts)
		public.GET("/projects", api.ListProjects)
		public.GET("/experiences", api.ListExperiences)
		public.GET("/achievements", api.ListAchievements)
		public.GET("/quotes", api.ListQuotes)
		public.GET("/visitor-count", api.VisitorCount)
		public.POST("/chat", api.ChatReply)
	}

	admin := r.Group("/admin/api")
	{
		admin.POST("/login", api.Login)
		admin.POST("/logout", api.Logout)

		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/posts", api.AdminListPosts)
			auth.GET("/posts/:slug", api.AdminGetPost)
			auth.POST("/posts", api.CreatePost)
			auth.PUT("/posts/:slug", api.UpdatePost)
			auth.DELETE("/posts/:slug", api.DeletePost)

			auth.POST("/projects", api.CreateProject)
			auth.PUT("/projects/:id", api.UpdateProject)
			auth.DELETE("/projects/:id", api.DeleteProject)

			auth.POST("/experiences", api.CreateExperience)
			auth.PUT("/experiences/:id", api.UpdateExperience)
			auth.DELETE("/experiences/:id", api.DeleteExperience)

			auth.POST("/achievements", api.CreateAchievement)
			auth.PUT("/achievements/:id", api.UpdateAchievement)
			auth.DELETE("/achievements/:id", api.DeleteAchievement)

			auth.POST("/quotes", api.CreateQuote)
			auth.DELETE("/quotes/:id", api.DeleteQuote)

			auth.GET("/settings", api.GetSettings)
			auth.PUT("/settings", api.UpdateSettings)

			auth.POST("/upload", api.UploadMedia)
			auth.POST("/markdown/preview", api.PreviewMarkdown)
		}
	}

	return r
}

// requestLogger emits one structured line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		event := logger.Get().Info()
		if c.Writer.Status() >= 500 {
			event = logger.Get().Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Str("ip", c.ClientIP()).
			Msg("request")
	}
}
