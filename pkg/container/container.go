package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"kuai-backend/internal/config"
	infraCache "kuai-backend/internal/infrastructure/cache"
	"kuai-backend/internal/infrastructure/database"
	"kuai-backend/internal/infrastructure/search"
	"kuai-backend/internal/infrastructure/storage"
	"kuai-backend/internal/shared/media"
	"kuai-backend/pkg/cache"
	"kuai-backend/pkg/clock"
	"kuai-backend/pkg/jwt"

	"kuai-backend/internal/domains/about"
	aboutHandler "kuai-backend/internal/domains/about/handler"
	aboutRepo "kuai-backend/internal/domains/about/repository"
	aboutService "kuai-backend/internal/domains/about/service"
	"kuai-backend/internal/domains/admin"
	adminHandler "kuai-backend/internal/domains/admin/handler"
	adminRepo "kuai-backend/internal/domains/admin/repository"
	adminService "kuai-backend/internal/domains/admin/service"
	"kuai-backend/internal/domains/core"
	coreHandler "kuai-backend/internal/domains/core/handler"
	coreRepo "kuai-backend/internal/domains/core/repository"
	coreService "kuai-backend/internal/domains/core/service"
	"kuai-backend/internal/domains/events"
	eventsHandler "kuai-backend/internal/domains/events/handler"
	eventsRepo "kuai-backend/internal/domains/events/repository"
	eventsService "kuai-backend/internal/domains/events/service"
	"kuai-backend/internal/domains/gallery"
	galleryHandler "kuai-backend/internal/domains/gallery/handler"
	galleryRepo "kuai-backend/internal/domains/gallery/repository"
	galleryService "kuai-backend/internal/domains/gallery/service"
	"kuai-backend/internal/domains/indabax"
	indabaxHandler "kuai-backend/internal/domains/indabax/handler"
	indabaxRepo "kuai-backend/internal/domains/indabax/repository"
	indabaxService "kuai-backend/internal/domains/indabax/service"
	"kuai-backend/internal/domains/news"
	newsHandler "kuai-backend/internal/domains/news/handler"
	newsRepo "kuai-backend/internal/domains/news/repository"
	newsService "kuai-backend/internal/domains/news/service"
	"kuai-backend/internal/domains/partners"
	partnersHandler "kuai-backend/internal/domains/partners/handler"
	partnersRepo "kuai-backend/internal/domains/partners/repository"
	partnersService "kuai-backend/internal/domains/partners/service"
	"kuai-backend/internal/domains/projects"
	projectsHandler "kuai-backend/internal/domains/projects/handler"
	projectsRepo "kuai-backend/internal/domains/projects/repository"
	projectsService "kuai-backend/internal/domains/projects/service"
	"kuai-backend/internal/domains/sitesearch"
	searchHandler "kuai-backend/internal/domains/sitesearch/handler"
	searchService "kuai-backend/internal/domains/sitesearch/service"
	"kuai-backend/internal/domains/team"
	teamHandler "kuai-backend/internal/domains/team/handler"
	teamRepo "kuai-backend/internal/domains/team/repository"
	teamService "kuai-backend/internal/domains/team/service"
	"kuai-backend/internal/domains/uploads"
	uploadHandler "kuai-backend/internal/domains/uploads/handler"
	uploadService "kuai-backend/internal/domains/uploads/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa toàn bộ dependency graph của app.
// Lifecycle: mọi thứ là singleton, tạo một lần lúc start.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config     *config.Config
	DB         *database.PostgresDB
	Redis      *infraCache.RedisClient // nil khi REDIS_ENABLED=false hoặc connect lỗi
	Cache      cache.Cache             // Redis, fallback memory
	Storage    *storage.MinIOStorage   // nil khi MinIO không kết nối được
	Images     *storage.ImageProcessor
	Index      *search.Index // nil khi SEARCH_ENABLED=false
	Indexer    search.Indexer
	JWTManager *jwt.Manager
	Clock      clock.Clock
	Resolver   *media.Resolver

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	CoreRepo     core.Repository
	AboutRepo    about.Repository
	NewsRepo     news.Repository
	EventsRepo   events.Repository
	ProjectsRepo projects.Repository
	TeamRepo     team.Repository
	GalleryRepo  gallery.Repository
	PartnersRepo partners.Repository
	IndabaxRepo  indabax.Repository
	AdminRepo    admin.Repository

	// ========================================
	// SERVICE LAYER
	// ========================================
	CoreService     core.Service
	AboutService    about.Service
	NewsService     news.Service
	EventsService   events.Service
	ProjectsService projects.Service
	TeamService     team.Service
	GalleryService  gallery.Service
	PartnersService partners.Service
	IndabaxService  indabax.Service
	AdminService    admin.Service
	UploadService   uploads.Service
	SearchService   sitesearch.Service

	// ========================================
	// HANDLER LAYER
	// ========================================
	CoreHandler     *coreHandler.CoreHandler
	AboutHandler    *aboutHandler.AboutHandler
	NewsHandler     *newsHandler.NewsHandler
	EventsHandler   *eventsHandler.EventsHandler
	ProjectsHandler *projectsHandler.ProjectsHandler
	TeamHandler     *teamHandler.TeamHandler
	GalleryHandler  *galleryHandler.GalleryHandler
	PartnersHandler *partnersHandler.PartnersHandler
	IndabaxHandler  *indabaxHandler.IndabaxHandler
	AuthHandler     *adminHandler.AuthHandler
	UploadHandler   *uploadHandler.UploadHandler // nil khi không có storage
	SearchHandler   *searchHandler.SearchHandler // nil khi search tắt
}

// ========================================
// CONSTRUCTOR
// ========================================

// NewContainer dựng dependency graph theo thứ tự:
// config → infrastructure → repositories → services → handlers.
// Database lỗi thì dừng, Redis/MinIO/search lỗi chỉ degrade.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	log.Info().Str("env", cfg.App.Environment).Msg("[CONTAINER] Initializing")

	c := &Container{
		Config:     cfg,
		Clock:      clock.New(cfg.Location()),
		Resolver:   media.NewResolver(cfg.Media.URL),
		Images:     storage.NewImageProcessor(cfg.Media.MaxUploadMB),
		JWTManager: jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute),
	}

	// ========================================
	// STEP 1: DATABASE
	// ========================================
	db, err := OpenDatabase(ctx, cfg)
	if err != nil {
		return nil, err
	}
	c.DB = db

	// ========================================
	// STEP 2: CACHE
	// ========================================
	c.initCache(ctx)

	// ========================================
	// STEP 3: OBJECT STORAGE
	// ========================================
	store, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
	if err != nil {
		log.Warn().Err(err).Msg("[CONTAINER] MinIO unavailable, media upload disabled")
	} else {
		c.Storage = store
	}

	// ========================================
	// STEP 4: SEARCH INDEX
	// ========================================
	c.Indexer = search.NopIndexer{}
	if cfg.Search.Enabled {
		idx, err := search.NewIndex()
		if err != nil {
			return nil, fmt.Errorf("failed to create search index: %w", err)
		}
		c.Index = idx
		c.Indexer = idx
	}

	// ========================================
	// STEP 5: DOMAINS
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	if c.SearchService != nil {
		if _, err := c.SearchService.Rebuild(ctx); err != nil {
			log.Warn().Err(err).Msg("[CONTAINER] Initial search index build failed")
		}
	}

	log.Info().Msg("[CONTAINER] Initialized successfully")
	return c, nil
}

// OpenDatabase connect + health check, dùng chung cho api và kuaictl
func OpenDatabase(ctx context.Context, cfg *config.Config) (*database.PostgresDB, error) {
	db := database.NewPostgresDB(cfg.Database)

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := db.Connect(connectCtx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	return db, nil
}

// initCache: Redis nếu bật và ping được, còn lại memory cache
func (c *Container) initCache(ctx context.Context) {
	c.Cache = cache.NewMemoryCache()
	if !c.Config.Redis.Enabled {
		log.Info().Msg("[CONTAINER] Redis disabled, using in-memory cache")
		return
	}

	rc := infraCache.NewRedisClient(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := rc.Connect(ctx); err != nil {
		// Redis không critical
		log.Warn().Err(err).Msg("[CONTAINER] Redis connection failed, using in-memory cache")
		_ = rc.Close()
		return
	}
	c.Redis = rc
	c.Cache = infraCache.NewRedisCache(rc.Client, "kuai:")
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool
	ttl := c.Config.Redis.TTL

	c.CoreRepo = coreRepo.NewPostgresRepository(pool, c.Cache, ttl)
	c.AboutRepo = aboutRepo.NewPostgresRepository(pool, c.Cache, ttl)
	c.NewsRepo = newsRepo.NewPostgresRepository(pool)
	c.EventsRepo = eventsRepo.NewPostgresRepository(pool)
	c.ProjectsRepo = projectsRepo.NewPostgresRepository(pool)
	c.TeamRepo = teamRepo.NewPostgresRepository(pool)
	c.GalleryRepo = galleryRepo.NewPostgresRepository(pool)
	c.PartnersRepo = partnersRepo.NewPostgresRepository(pool)
	c.IndabaxRepo = indabaxRepo.NewPostgresRepository(pool, c.Cache, ttl)
	c.AdminRepo = adminRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.CoreService = coreService.NewCoreService(c.CoreRepo)
	c.AboutService = aboutService.NewAboutService(c.AboutRepo)
	c.NewsService = newsService.NewNewsService(c.NewsRepo, c.Clock, c.Indexer)
	c.EventsService = eventsService.NewEventsService(c.EventsRepo, c.Clock, c.Indexer)
	c.ProjectsService = projectsService.NewProjectsService(c.ProjectsRepo, c.Indexer)
	c.TeamService = teamService.NewTeamService(c.TeamRepo, c.Clock)
	c.GalleryService = galleryService.NewGalleryService(c.GalleryRepo)
	c.PartnersService = partnersService.NewPartnersService(c.PartnersRepo)
	c.IndabaxService = indabaxService.NewIndabaxService(c.IndabaxRepo, c.Clock, c.Indexer)
	c.AdminService = adminService.NewAdminService(c.AdminRepo, c.JWTManager, c.Cache)

	if c.Storage != nil {
		c.UploadService = uploadService.NewUploadService(c.Storage, c.Images)
	}
	if c.Index != nil {
		c.SearchService = searchService.NewSearchService(c.Index,
			c.NewsService, c.EventsService, c.ProjectsService, c.IndabaxService)
	}
}

func (c *Container) initHandlers() {
	c.CoreHandler = coreHandler.NewCoreHandler(c.CoreService, c.Resolver, c.Clock, c.Config.App.Version)
	c.AboutHandler = aboutHandler.NewAboutHandler(c.AboutService, c.Resolver)
	c.NewsHandler = newsHandler.NewNewsHandler(c.NewsService, c.Resolver)
	c.EventsHandler = eventsHandler.NewEventsHandler(c.EventsService, c.Resolver, c.Clock)
	c.ProjectsHandler = projectsHandler.NewProjectsHandler(c.ProjectsService, c.Resolver)
	c.TeamHandler = teamHandler.NewTeamHandler(c.TeamService, c.Resolver, c.Clock)
	c.GalleryHandler = galleryHandler.NewGalleryHandler(c.GalleryService, c.Resolver)
	c.PartnersHandler = partnersHandler.NewPartnersHandler(c.PartnersService, c.Resolver)
	c.IndabaxHandler = indabaxHandler.NewIndabaxHandler(c.IndabaxService, c.Resolver, c.Clock)
	c.AuthHandler = adminHandler.NewAuthHandler(c.AdminService)

	if c.UploadService != nil {
		c.UploadHandler = uploadHandler.NewUploadHandler(c.UploadService, c.Resolver, c.Config.Media.MaxUploadMB)
	}
	if c.SearchService != nil {
		c.SearchHandler = searchHandler.NewSearchHandler(c.SearchService)
	}
}

// Cleanup đóng resources khi shutdown, gọi nhiều lần vẫn an toàn
func (c *Container) Cleanup() {
	log.Info().Msg("[CONTAINER] Cleaning up resources...")

	if c.Index != nil {
		if err := c.Index.Close(); err != nil {
			log.Warn().Err(err).Msg("[CONTAINER] Failed to close search index")
		}
		c.Index = nil
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("[CONTAINER] Failed to close Redis")
		}
		c.Redis = nil
	}

	if c.DB != nil {
		_ = c.DB.Close()
	}

	log.Info().Msg("[CONTAINER] Cleanup completed")
}
