package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/orderdesk/orders-admin/docs"
	"github.com/orderdesk/orders-admin/internal/api/handler"
	"github.com/orderdesk/orders-admin/internal/api/middleware"
	"github.com/orderdesk/orders-admin/internal/core/domain"
	"github.com/orderdesk/orders-admin/internal/core/service"
	mongodb "github.com/orderdesk/orders-admin/internal/infrastructure/db/mongo"
	redisdb "github.com/orderdesk/orders-admin/internal/infrastructure/db/redis"
	"github.com/orderdesk/orders-admin/internal/pkg/hash"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Route classes are declared here, route by route, and enforced by the Gate
// middleware; handlers never re-derive them.
func NewRouter(db *mongo.Database, rdb *redis.Client, bcryptCost int, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("orders_admin"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	hasher := hash.NewBcryptHasher(bcryptCost)

	authService := service.NewAuthService(accountRepo, hasher, log)
	accountService := service.NewAccountService(accountRepo, log)
	orderService := service.NewOrderService(orderRepo, redisdb.NewOrderListCache(rdb, log), log)

	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(accountService)
	orderHandler := handler.NewOrderHandler(orderService)

	principal := middleware.Principal(authService)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Authenticated routes ---
	orders := e.Group("/orders", principal, middleware.Gate(domain.RouteAuthenticated))
	orders.GET("", orderHandler.List)
	orders.POST("", orderHandler.Create)
	orders.GET("/:id", orderHandler.Get)
	orders.PUT("/:id", orderHandler.Update)
	orders.DELETE("/:id", orderHandler.Delete)

	// --- Admin routes ---
	admin := e.Group("/admin/users", principal, middleware.Gate(domain.RouteAdminOnly))
	admin.GET("", accountHandler.List)
	admin.GET("/:id", accountHandler.Get)
	admin.PUT("/:id", accountHandler.Update)
	admin.DELETE("/:id", accountHandler.Delete)

	return e
}
