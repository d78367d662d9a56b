// Package bootstrap assembles the shop API from its configuration: engine,
// schema, cache, services and the gin router with every route group.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"strings"

	v1 "github.com/Mumbi286/DukaYetu/internal/api/rest/v1"
	"github.com/Mumbi286/DukaYetu/internal/app"
	"github.com/Mumbi286/DukaYetu/internal/domain/carts"
	"github.com/Mumbi286/DukaYetu/internal/domain/products"
	"github.com/Mumbi286/DukaYetu/internal/domain/users"
	"github.com/Mumbi286/DukaYetu/internal/infrastructure/cache"
	"github.com/Mumbi286/DukaYetu/internal/infrastructure/persistence"
	"github.com/Mumbi286/DukaYetu/internal/infrastructure/security"
	"github.com/Mumbi286/DukaYetu/internal/pkg/config"
	"github.com/Mumbi286/DukaYetu/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// App holds every long lived component of a running API instance
type App struct {
	Config   *config.RestConfig
	DB       *gorm.DB
	Sessions *persistence.SessionFactory
	Router   *gin.Engine
	Origins  []string

	services   *appServices
	closeCache func() error
	logger     logger.Logger
}

type appServices struct {
	auth    users.AuthService
	product products.ProductService
	cart    carts.CartService
}

// NewApp opens the engine, materializes the schema when enabled and registers
// all route groups. Any failure is fatal for startup; resources opened before
// the failure are released.
func NewApp(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	log.Info(fmt.Sprintf("Connected to %s database", cfg.Database.Type))

	a := &App{
		Config:     cfg,
		DB:         db,
		closeCache: func() error { return nil },
		logger:     log,
	}

	if err := a.initialize(ctx); err != nil {
		if closeErr := a.Close(); closeErr != nil {
			log.Warn("Failed to release resources after startup error: ", closeErr)
		}
		return nil, err
	}

	return a, nil
}

func (a *App) initialize(ctx context.Context) error {
	sessions, err := persistence.NewSessionFactory(a.DB)
	if err != nil {
		return err
	}
	a.Sessions = sessions

	if a.Config.AutoMigrate {
		if err := persistence.Migrate(a.DB); err != nil {
			return fmt.Errorf("failed to materialize schema: %w", err)
		}
		a.logger.Info("Database schema is up to date")
	}

	productCache, closeCache, err := cache.NewProductCache(ctx, a.Config.Cache, a.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize product cache: %w", err)
	}
	a.closeCache = closeCache

	services, err := a.initializeServices(productCache)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}
	a.services = services

	a.Origins = a.Config.Cors.AllowedOrigins()
	if a.Config.IsProduction() {
		a.logger.Info("CORS allowed origins: ", strings.Join(a.Origins, ", "))
	}

	router, err := a.newRouter()
	if err != nil {
		return err
	}
	a.Router = router

	return nil
}

func (a *App) initializeServices(productCache products.ProductCache) (*appServices, error) {
	userRepo, err := persistence.NewGormUserRepository(a.DB, a.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	productRepo, err := persistence.NewGormProductRepository(a.Sessions, a.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create product repository: %w", err)
	}

	cartRepo, err := persistence.NewGormCartRepository(a.Sessions, a.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create cart repository: %w", err)
	}

	issuer, err := security.NewJWTIssuer(a.Config.Auth.SecretKey, a.Config.Auth.AccessTokenTTL())
	if err != nil {
		return nil, fmt.Errorf("failed to create token issuer: %w", err)
	}

	authService, err := app.NewAuthService(userRepo, security.NewBcryptHasher(bcrypt.DefaultCost), issuer, a.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	productService, err := app.NewProductService(productRepo, productCache, a.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %w", err)
	}

	cartService, err := app.NewCartService(cartRepo, a.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create cart service: %w", err)
	}

	a.logger.Info("Application services initialized successfully")
	return &appServices{
		auth:    authService,
		product: productService,
		cart:    cartService,
	}, nil
}

func (a *App) newRouter() (*gin.Engine, error) {
	if a.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	corsMiddleware, err := v1.NewCORSMiddleware(a.Origins)
	if err != nil {
		return nil, fmt.Errorf("failed to configure cors: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), v1.RequestLogger(a.logger), v1.Metrics(), corsMiddleware)

	v1.SetupRoutes(r,
		a.services.auth,
		a.services.product,
		a.services.cart,
		v1.NewRateLimiter(a.Config.Auth.RateLimitPerMinute),
		a.logger,
	)

	v1.SetupOperationalRoutes(r, map[string]v1.HealthCheck{
		"database": func(ctx context.Context) error {
			return persistence.Ping(ctx, a.DB)
		},
	})

	return r, nil
}

// Close releases the cache client and the engine pool
func (a *App) Close() error {
	var errs []error

	if a.closeCache != nil {
		if err := a.closeCache(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close product cache: %w", err))
		}
	}

	if a.DB != nil {
		if err := persistence.CloseDB(a.DB); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
