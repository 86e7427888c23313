package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/supermercado/backoffice-system/docs"
	"github.com/supermercado/backoffice-system/internal/api/handler"
	"github.com/supermercado/backoffice-system/internal/api/middleware"
	"github.com/supermercado/backoffice-system/internal/core/service"
	"github.com/supermercado/backoffice-system/internal/infrastructure/config"
	mongodb "github.com/supermercado/backoffice-system/internal/infrastructure/db/mongo"
	redisdb "github.com/supermercado/backoffice-system/internal/infrastructure/db/redis"
	"github.com/supermercado/backoffice-system/internal/infrastructure/storage"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("backoffice"))

	// --- Dependencies ---
	avatars, err := storage.NewFileAvatarStorage(cfg.Uploads.Dir, cfg.Uploads.BaseURL)
	if err != nil {
		return nil, err
	}

	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	sessions := redisdb.NewSessionStore(rdb)

	authService := service.NewAuthService(userRepo, sessions, cfg.JWTSecret, cfg.TokenTTL, log)
	userService := service.NewUserService(userRepo, avatars, log)
	productService := service.NewProductService(productRepo, log)
	clientService := service.NewClientService(clientRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	clientHandler := handler.NewClientHandler(clientService)

	auth := middleware.Auth(cfg.JWTSecret, sessions)

	// --- Public routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/recover-password", authHandler.RecoverPassword)
	e.Static(cfg.Uploads.BaseURL, avatars.Dir())

	// --- Authenticated routes ---
	e.POST("/logout", authHandler.Logout, auth)

	products := e.Group("/products", auth)
	products.GET("", productHandler.List)
	products.POST("", productHandler.Create)
	products.PUT("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)

	users := e.Group("/users", auth)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)
	users.POST("/:id/avatar", userHandler.UploadAvatar)
	users.DELETE("/:id/avatar", userHandler.RemoveAvatar)

	clients := e.Group("/clients", auth)
	clients.GET("", clientHandler.List)
	clients.POST("", clientHandler.Create)
	clients.PUT("/:id", clientHandler.Update)
	clients.DELETE("/:id", clientHandler.Delete)

	// --- Health probes and observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}
