package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"library-catalog-backend/internal/config"
	infraCache "library-catalog-backend/internal/infrastructure/cache"
	"library-catalog-backend/internal/infrastructure/database"
	"library-catalog-backend/pkg/cache"
	"library-catalog-backend/pkg/jwt"

	"library-catalog-backend/internal/domains/author"
	authorHandler "library-catalog-backend/internal/domains/author/handler"
	authorRepo "library-catalog-backend/internal/domains/author/repository"
	authorService "library-catalog-backend/internal/domains/author/service"
	"library-catalog-backend/internal/domains/book"
	bookHandler "library-catalog-backend/internal/domains/book/handler"
	bookRepo "library-catalog-backend/internal/domains/book/repository"
	bookService "library-catalog-backend/internal/domains/book/service"
	"library-catalog-backend/internal/domains/post"
	postHandler "library-catalog-backend/internal/domains/post/handler"
	postRepo "library-catalog-backend/internal/domains/post/repository"
	postService "library-catalog-backend/internal/domains/post/service"
	"library-catalog-backend/internal/domains/user"
	userHandler "library-catalog-backend/internal/domains/user/handler"
	userRepo "library-catalog-backend/internal/domains/user/repository"
	userService "library-catalog-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton for the application lifetime.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	// Repositories
	AuthorRepo author.Repository
	BookRepo   book.Repository
	PostRepo   post.Repository
	UserRepo   user.Repository

	// Services
	AuthorService author.Service
	BookService   book.Service
	PostService   post.Service
	UserService   user.Service

	// Handlers
	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler
	PostHandler   *postHandler.PostHandler
	UserHandler   *userHandler.UserHandler
}

// NewContainer initializes the whole dependency graph.
// Order matters: config, infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected and migrated")

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// Redis failure is not fatal; cached reads fall through to Postgres
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("✅ Redis connected")
		}
	}
	c.Cache = redisCache

	// ========================================
	// STEP 4: JWT MANAGER
	// ========================================
	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	// ========================================
	// STEP 5: REPOSITORIES, SERVICES, HANDLERS
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AuthorRepo = authorRepo.NewPostgresRepository(pool)
	c.BookRepo = bookRepo.NewPostgresRepository(pool, c.Cache)
	c.PostRepo = postRepo.NewPostgresRepository(pool)
	c.UserRepo = userRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	// Book service checks author existence, cross-domain dependency
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorRepo)
	c.PostService = postService.NewPostService(c.PostRepo)
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
}

// Cleanup releases infrastructure resources during graceful shutdown
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil {
		c.DB.Close()
		log.Println("✅ Database connections closed")
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("⚠️  Failed to close Redis: %v", err)
			} else {
				log.Println("✅ Redis connections closed")
			}
		}
	}
}
