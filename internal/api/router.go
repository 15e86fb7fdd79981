package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vperfumes/order-tracking/internal/api/handler"
	"github.com/vperfumes/order-tracking/internal/api/middleware"
	"github.com/vperfumes/order-tracking/internal/core/domain"
	"github.com/vperfumes/order-tracking/internal/core/notify"
	"github.com/vperfumes/order-tracking/internal/core/service"
	mongorepo "github.com/vperfumes/order-tracking/internal/infrastructure/db/mongo"
	redisinfra "github.com/vperfumes/order-tracking/internal/infrastructure/db/redis"
	"github.com/vperfumes/order-tracking/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, hub *notify.Hub, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("ordertracking"))

	// --- Repositories ---
	userRepo := mongorepo.NewUserRepository(db)
	orderRepo := mongorepo.NewOrderRepository(db)
	historyRepo := mongorepo.NewHistoryRepository(db)
	throttle := redisinfra.NewLoginLimiter(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, throttle, cfg.JWTSecret, 0, log)
	orderService := service.NewOrderService(orderRepo, historyRepo, userRepo, hub, log)
	adminService := service.NewAdminService(userRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	orderHandler := handler.NewOrderHandler(orderService)
	companyHandler := handler.NewCompanyHandler(adminService)
	wsHandler := handler.NewWSHandler(hub, log)
	healthHandler := handler.NewHealthHandler(db, rdb)

	session := middleware.Session(cfg.JWTSecret, userRepo)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Unauthenticated surface ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/ws/orders/:company_id", wsHandler.Attach)
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout)

	// --- Session-scoped API ---
	api := e.Group("/api", session)
	api.GET("/user", authHandler.Me)
	api.POST("/auth/change-password", authHandler.ChangePassword)
	api.GET("/stats", orderHandler.Stats)

	api.GET("/orders", orderHandler.List)
	api.POST("/orders", orderHandler.Create)
	api.PUT("/orders/:id", orderHandler.Update)
	api.DELETE("/orders/:id", orderHandler.Delete)

	// --- Admin-only surface ---
	api.POST("/auth/register", authHandler.Register, adminOnly)
	api.GET("/orders/report", orderHandler.Report, adminOnly)
	api.GET("/orders/:id/history", orderHandler.History, adminOnly)
	api.GET("/companies", companyHandler.List, adminOnly)
	api.DELETE("/companies/:id", companyHandler.Delete, adminOnly)
	api.POST("/companies/:id/reset-password", companyHandler.ResetPassword, adminOnly)

	return e
}
