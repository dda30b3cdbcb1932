package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/supernova-club/community-api/internal/api/handler"
	"github.com/supernova-club/community-api/internal/api/middleware"
	"github.com/supernova-club/community-api/internal/core/service"
	"github.com/supernova-club/community-api/internal/infrastructure/config"
	mongodb "github.com/supernova-club/community-api/internal/infrastructure/db/mongo"
	redisdb "github.com/supernova-club/community-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *goredis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("community"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	eventRepo := mongodb.NewEventRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb, cfg.Session.TTL)

	authService := service.NewAuthService(userRepo, log)
	postService := service.NewPostService(postRepo, log)
	eventService := service.NewEventService(eventRepo, userRepo, log)
	memberService := service.NewMemberService(userRepo, eventRepo, log)

	authHandler := handler.NewAuthHandler(authService, sessionStore, log)
	homeHandler := handler.NewHomeHandler(postService, eventService)
	postHandler := handler.NewPostHandler(postService)
	eventHandler := handler.NewEventHandler(eventService)
	memberHandler := handler.NewMemberHandler(memberService)

	// Every route sees the session middleware so flashes and identity are
	// always resolved before route logic runs.
	e.Use(middleware.Session(sessionStore, userRepo, log))

	// --- Public routes ---
	e.GET("/", homeHandler.Home)
	e.GET("/signup", homeHandler.Signup)
	e.POST("/login", authHandler.Login)
	e.POST("/local-reg", authHandler.Register)
	e.GET("/logout", authHandler.Logout)
	e.GET("/event/:id", eventHandler.Get)

	// --- Member routes ---
	e.GET("/members", memberHandler.Members, middleware.RequireUser)
	e.POST("/newpost", postHandler.Create, middleware.RequireUser)
	e.POST("/newevent", eventHandler.Create, middleware.RequireUser)
	e.GET("/addevent/:id", eventHandler.Join, middleware.RequireUser)

	// --- Admin routes ---
	e.GET("/member/:id", memberHandler.Profile, middleware.RequireAdmin)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
