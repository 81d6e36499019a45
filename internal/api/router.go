package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wildwall/wall-api/internal/api/handler"
	mw "github.com/wildwall/wall-api/internal/api/middleware"
	"github.com/wildwall/wall-api/internal/auth"
	"github.com/wildwall/wall-api/internal/core/domain"
	"github.com/wildwall/wall-api/internal/core/ports"
	"github.com/wildwall/wall-api/internal/core/service"
	"github.com/wildwall/wall-api/internal/infrastructure/config"
	mongodb "github.com/wildwall/wall-api/internal/infrastructure/db/mongo"
	redisdb "github.com/wildwall/wall-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; login throttling is then disabled.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("wildwall"))
	e.Use(echomiddleware.Logger())

	// --- Dependencies ---
	codec := auth.NewCodec(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)

	var limiter ports.LoginLimiter
	if rdb != nil {
		limiter = redisdb.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)
	}

	authService := service.NewAuthService(userRepo, codec, limiter, log)
	postService := service.NewPostService(postRepo, log)
	userService := service.NewUserService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	userHandler := handler.NewUserHandler(userService)

	session := mw.Session(codec)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/logout", authHandler.Logout)

	// --- Post routes (session required) ---
	posts := e.Group("/posts", session)
	posts.GET("", postHandler.List)
	posts.GET("/archived", postHandler.ListArchived)
	posts.GET("/:id", postHandler.Get)
	posts.POST("", postHandler.Create)
	posts.PUT("/:id", postHandler.Edit)
	posts.PUT("/archive/:id", postHandler.Archive)
	posts.DELETE("/:id", postHandler.Delete)

	// --- User routes ---
	e.POST("/users/register", userHandler.Register)
	users := e.Group("/users", session)
	users.GET("", userHandler.List, mw.Authorize(domain.ActionUserList))
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.UpdateRole, mw.Authorize(domain.ActionUserEditRole))
	users.DELETE("/:id", userHandler.Delete, mw.Authorize(domain.ActionUserDelete))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
