package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kuai-backend/internal/shared/middleware"
	"kuai-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = int64(c.Config.Media.MaxUploadMB+1) << 20

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.App.AllowedOrigins),
	)

	if c.UploadHandler != nil {
		router.GET("/media/*key", c.UploadHandler.Serve)
	}

	api := router.Group("/api")
	{
		api.GET("/", c.CoreHandler.Root)
		api.GET("/health", healthCheckHandler(c))
		api.POST("/auth/login", c.AuthHandler.Login)

		if c.SearchHandler != nil {
			api.GET("/search", c.SearchHandler.Search)
		}

		setupCoreRoutes(api, c)
		setupAboutRoutes(api, c)
		setupNewsRoutes(api, c)
		setupEventRoutes(api, c)
		setupProjectRoutes(api, c)
		setupTeamRoutes(api, c)
		setupGalleryRoutes(api, c)
		setupPartnerRoutes(api, c)
		setupIndabaxRoutes(api, c)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
	{
		admin.GET("/me", c.AuthHandler.Me)
		if c.UploadHandler != nil {
			admin.POST("/media", c.UploadHandler.Upload)
		}
		setupAdminRoutes(admin, c)
	}

	return router
}

// ========================================
// CORE ROUTES
// ========================================
func setupCoreRoutes(api *gin.RouterGroup, c *container.Container) {
	core := api.Group("/core")
	{
		core.GET("/site-settings", c.CoreHandler.ListSiteSettings)
		core.GET("/site-settings/current", c.CoreHandler.CurrentSiteSettings)
		core.GET("/site-settings/:id", c.CoreHandler.GetSiteSettings)
		core.GET("/hero-slides", c.CoreHandler.ListHeroSlides)
		core.GET("/hero-slides/:id", c.CoreHandler.GetHeroSlide)
		core.GET("/contact-info", c.CoreHandler.ListContactInfo)
		core.GET("/contact-info/current", c.CoreHandler.CurrentContactInfo)
		core.GET("/contact-info/:id", c.CoreHandler.GetContactInfo)
		core.GET("/quick-links", c.CoreHandler.ListQuickLinks)
		core.GET("/quick-links/:id", c.CoreHandler.GetQuickLink)
	}
}

// ========================================
// ABOUT ROUTES
// ========================================
func setupAboutRoutes(api *gin.RouterGroup, c *container.Container) {
	about := api.Group("/about")
	{
		about.GET("", c.AboutHandler.List)
		about.GET("/current", c.AboutHandler.Current)
		about.GET("/:id", c.AboutHandler.GetByID)
	}
}

// ========================================
// NEWS ROUTES
// ========================================
func setupNewsRoutes(api *gin.RouterGroup, c *container.Container) {
	news := api.Group("/news")
	{
		news.GET("/categories", c.NewsHandler.ListCategories)
		news.GET("/categories/:slug", c.NewsHandler.GetCategory)
		news.GET("/articles", c.NewsHandler.ListArticles)
		news.GET("/articles/:slug", c.NewsHandler.GetArticle)
	}
}

// ========================================
// EVENT ROUTES
// ========================================
func setupEventRoutes(api *gin.RouterGroup, c *container.Container) {
	events := api.Group("/events")
	{
		events.GET("", c.EventsHandler.List)
		events.GET("/upcoming", c.EventsHandler.Upcoming)
		events.GET("/past", c.EventsHandler.Past)
		events.GET("/featured", c.EventsHandler.Featured)
		events.GET("/categories", c.EventsHandler.ListCategories)
		events.GET("/categories/:slug", c.EventsHandler.GetCategory)
		events.GET("/:slug", c.EventsHandler.Get)
	}
}

// ========================================
// PROJECT ROUTES
// ========================================
func setupProjectRoutes(api *gin.RouterGroup, c *container.Container) {
	projects := api.Group("/projects")
	{
		projects.GET("", c.ProjectsHandler.List)
		projects.GET("/featured", c.ProjectsHandler.Featured)
		projects.GET("/by_status", c.ProjectsHandler.ByStatus)
		projects.GET("/categories", c.ProjectsHandler.ListCategories)
		projects.GET("/categories/:slug", c.ProjectsHandler.GetCategory)
		projects.GET("/:slug", c.ProjectsHandler.Get)
	}
}

// ========================================
// TEAM ROUTES
// ========================================
func setupTeamRoutes(api *gin.RouterGroup, c *container.Container) {
	team := api.Group("/team")
	{
		team.GET("/roles", c.TeamHandler.ListRoles)
		team.GET("/members", c.TeamHandler.ListMembers)
		team.GET("/members/executive", c.TeamHandler.Executive)
		team.GET("/members/by_role", c.TeamHandler.ByRole)
		team.GET("/members/current", c.TeamHandler.Current)
		team.GET("/members/archived", c.TeamHandler.Archived)
		team.GET("/members/:id", c.TeamHandler.GetMember)
	}
}

// ========================================
// GALLERY ROUTES
// ========================================
func setupGalleryRoutes(api *gin.RouterGroup, c *container.Container) {
	gallery := api.Group("/gallery")
	{
		gallery.GET("/categories", c.GalleryHandler.ListCategories)
		gallery.GET("/images", c.GalleryHandler.ListImages)
		gallery.GET("/images/featured", c.GalleryHandler.Featured)
		gallery.GET("/images/by_category", c.GalleryHandler.ByCategory)
		gallery.GET("/images/:id", c.GalleryHandler.GetImage)
	}
}

// ========================================
// PARTNER ROUTES
// ========================================
func setupPartnerRoutes(api *gin.RouterGroup, c *container.Container) {
	partners := api.Group("/partners")
	{
		partners.GET("", c.PartnersHandler.List)
		partners.GET("/categories", c.PartnersHandler.ListCategories)
		partners.GET("/featured", c.PartnersHandler.Featured)
		partners.GET("/by_category", c.PartnersHandler.ByCategory)
		partners.GET("/:id", c.PartnersHandler.Get)
	}
}

// ========================================
// INDABAX ROUTES
// ========================================
func setupIndabaxRoutes(api *gin.RouterGroup, c *container.Container) {
	h := c.IndabaxHandler
	indabax := api.Group("/indabax")
	{
		indabax.GET("/settings", h.ListSettings)
		indabax.GET("/settings/current", h.CurrentSettings)

		indabax.GET("/events", h.ListEvents)
		indabax.GET("/events/latest", h.LatestEvent)
		indabax.GET("/events/:slug", h.GetEvent)
		indabax.GET("/events/:slug/speakers", h.EventSpeakers)
		indabax.GET("/events/:slug/sessions", h.EventSessions)

		indabax.GET("/speakers", h.ListSpeakers)
		indabax.GET("/speakers/keynote", h.KeynoteSpeakers)
		indabax.GET("/speakers/:id", h.GetSpeaker)

		indabax.GET("/sessions", h.ListSessions)
		indabax.GET("/sessions/:id", h.GetSession)

		indabax.GET("/gallery", h.ListGallery)
		indabax.GET("/gallery/:id", h.GetGalleryItem)

		indabax.GET("/hero", h.ListHeroes)

		indabax.GET("/leaders", h.ListLeaders)
		indabax.GET("/leaders/current", h.CurrentLeaders)
		indabax.GET("/leaders/archived", h.ArchivedLeaders)
		indabax.GET("/leaders/archive", h.LeaderArchive)
		indabax.GET("/leaders/:id", h.GetLeader)

		indabax.GET("/resources", h.ListResources)
	}
}

// ========================================
// ADMIN ROUTES (JWT + role admin)
// ========================================
func setupAdminRoutes(admin *gin.RouterGroup, c *container.Container) {
	core := admin.Group("/core")
	{
		core.POST("/site-settings", c.CoreHandler.CreateSiteSettings)
		core.PUT("/site-settings/:id", c.CoreHandler.UpdateSiteSettings)
		core.DELETE("/site-settings/:id", c.CoreHandler.DeleteSiteSettings)
		core.POST("/contact-info", c.CoreHandler.CreateContactInfo)
		core.PUT("/contact-info/:id", c.CoreHandler.UpdateContactInfo)
		core.DELETE("/contact-info/:id", c.CoreHandler.DeleteContactInfo)
		core.POST("/hero-slides", c.CoreHandler.CreateHeroSlide)
		core.PUT("/hero-slides/:id", c.CoreHandler.UpdateHeroSlide)
		core.DELETE("/hero-slides/:id", c.CoreHandler.DeleteHeroSlide)
	}

	about := admin.Group("/about")
	{
		about.POST("", c.AboutHandler.Create)
		about.PUT("/:id", c.AboutHandler.Update)
		about.DELETE("/:id", c.AboutHandler.Delete)
	}

	news := admin.Group("/news")
	{
		news.POST("/categories", c.NewsHandler.CreateCategory)
		news.POST("/articles", c.NewsHandler.CreateArticle)
		news.PUT("/articles/:id", c.NewsHandler.UpdateArticle)
		news.DELETE("/articles/:id", c.NewsHandler.DeleteArticle)
	}

	events := admin.Group("/events")
	{
		events.POST("/categories", c.EventsHandler.CreateCategory)
		events.POST("", c.EventsHandler.Create)
		events.PUT("/:id", c.EventsHandler.Update)
		events.DELETE("/:id", c.EventsHandler.Delete)
	}

	projects := admin.Group("/projects")
	{
		projects.POST("/categories", c.ProjectsHandler.CreateCategory)
		projects.POST("", c.ProjectsHandler.Create)
		projects.PUT("/:id", c.ProjectsHandler.Update)
		projects.DELETE("/:id", c.ProjectsHandler.Delete)
	}

	team := admin.Group("/team")
	{
		team.POST("/roles", c.TeamHandler.CreateRole)
		team.POST("/members", c.TeamHandler.CreateMember)
		team.PUT("/members/:id", c.TeamHandler.UpdateMember)
		team.DELETE("/members/:id", c.TeamHandler.DeleteMember)
	}

	gallery := admin.Group("/gallery")
	{
		gallery.POST("/categories", c.GalleryHandler.CreateCategory)
		gallery.POST("/images", c.GalleryHandler.CreateImage)
		gallery.PUT("/images/:id", c.GalleryHandler.UpdateImage)
		gallery.DELETE("/images/:id", c.GalleryHandler.DeleteImage)
	}

	partners := admin.Group("/partners")
	{
		partners.POST("/categories", c.PartnersHandler.CreateCategory)
		partners.POST("", c.PartnersHandler.Create)
		partners.PUT("/:id", c.PartnersHandler.Update)
		partners.DELETE("/:id", c.PartnersHandler.Delete)
	}

	h := c.IndabaxHandler
	indabax := admin.Group("/indabax")
	{
		indabax.POST("/settings", h.CreateSettings)
		indabax.PUT("/settings/:id", h.UpdateSettings)
		indabax.DELETE("/settings/:id", h.DeleteSettings)
		indabax.POST("/events", h.CreateEvent)
		indabax.PUT("/events/:id", h.UpdateEvent)
		indabax.DELETE("/events/:id", h.DeleteEvent)
		indabax.POST("/hero", h.CreateHero)
		indabax.PUT("/hero/:id", h.UpdateHero)
		indabax.POST("/leaders", h.CreateLeader)
		indabax.PUT("/leaders/:id", h.UpdateLeader)
		indabax.DELETE("/leaders/:id", h.DeleteLeader)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": appCtx.Clock.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = "error: " + err.Error()
			}
		}

		// Check redis, memory cache coi như "disabled"
		redisStatus := "disabled"
		if appCtx.Redis != nil {
			redisStatus = "ok"
			if err := appCtx.Redis.HealthCheck(c.Request.Context()); err != nil {
				redisStatus = "error: " + err.Error()
			}
		}

		services := gin.H{"database": dbStatus, "redis": redisStatus}
		if appCtx.DB != nil && appCtx.DB.Pool != nil {
			if stats, err := appCtx.DB.Stats(); err == nil {
				services["database_pool"] = stats
			}
		}
		if appCtx.Index != nil {
			if n, err := appCtx.Index.Count(); err == nil {
				services["search_documents"] = n
			}
		}
		health["services"] = services

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			health["status"] = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
