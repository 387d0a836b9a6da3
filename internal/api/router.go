package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/leadflow/crm-api/internal/api/handler"
	"github.com/leadflow/crm-api/internal/api/middleware"
	"github.com/leadflow/crm-api/internal/core/domain"
	"github.com/leadflow/crm-api/internal/core/service"
	mongodb "github.com/leadflow/crm-api/internal/infrastructure/db/mongo"
	redisdb "github.com/leadflow/crm-api/internal/infrastructure/db/redis"
)

// RouterOptions carries the runtime settings the router needs beyond its
// storage handles.
type RouterOptions struct {
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts RouterOptions) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("crm"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	leadRepo := mongodb.NewLeadRepository(db)
	statsCache := redisdb.NewStatsCache(rdb)

	authService := service.NewAuthService(userRepo, opts.JWTSecret, opts.TokenTTL, opts.Logger)
	leadService := service.NewLeadService(leadRepo, userRepo, statsCache, opts.Logger)
	managerService := service.NewManagerService(userRepo, leadRepo, opts.Logger)

	authHandler := handler.NewAuthHandler(authService)
	employerHandler := handler.NewEmployerHandler(leadService, managerService)
	managerHandler := handler.NewManagerHandler(leadService)

	authenticated := middleware.Auth(opts.JWTSecret, userRepo)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authenticated)

	// --- Employer routes ---
	employer := e.Group("/api/employer", authenticated, middleware.RequireRole(domain.RoleEmployer))
	employer.GET("/dashboard-stats", employerHandler.DashboardStats)
	employer.GET("/managers", employerHandler.ListManagers)
	employer.POST("/managers", employerHandler.CreateManager)
	employer.PUT("/managers/:id", employerHandler.UpdateManager)
	employer.DELETE("/managers/:id", employerHandler.DeleteManager)
	employer.GET("/leads", employerHandler.ListLeads)
	employer.POST("/leads", employerHandler.CreateLead)
	employer.PUT("/leads/:id", employerHandler.UpdateLead)
	employer.DELETE("/leads/:id", employerHandler.DeleteLead)

	// --- Manager routes ---
	managers := e.Group("/api/managers", authenticated, middleware.RequireRole(domain.RoleManager))
	managers.GET("/leads", managerHandler.ListLeads)
	managers.PATCH("/leads/:id", managerHandler.PatchLead)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
