package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/contactdesk/customer-api/internal/api/handler"
	"github.com/contactdesk/customer-api/internal/api/middleware"
	"github.com/contactdesk/customer-api/internal/core/service"
	mongodb "github.com/contactdesk/customer-api/internal/infrastructure/db/mongo"
	"github.com/contactdesk/customer-api/internal/infrastructure/db/redis"
)

// Options carries the dependencies and settings the router needs. Everything
// is constructed once at startup; nothing here is read from the environment.
type Options struct {
	JWTSecret        string
	TokenTTL         time.Duration
	LoginMaxAttempts int
	Logger           zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *goredis.Client, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("customer_api"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	customerRepo := mongodb.NewCustomerRepository(db)

	tokenService := service.NewTokenService(opts.JWTSecret, opts.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService)
	customerService := service.NewCustomerService(customerRepo, opts.Logger)

	authHandler := handler.NewAuthHandler(authService)
	customerHandler := handler.NewCustomerHandler(customerService)

	authMiddleware := middleware.Auth(tokenService)
	loginLimiter := redis.NewLoginLimiter(rdb, opts.LoginMaxAttempts)

	// --- Public routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login, middleware.LoginRateLimit(loginLimiter))

	// --- Protected routes ---
	customers := e.Group("/customers", authMiddleware)
	customers.POST("", customerHandler.Create)
	customers.GET("", customerHandler.List)
	customers.PUT("/:id", customerHandler.Update)
	customers.DELETE("/:id", customerHandler.Delete)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
