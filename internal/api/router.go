package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/pastelpay/landing-api/internal/api/handler"
	"github.com/pastelpay/landing-api/internal/core/service"
	mongodb "github.com/pastelpay/landing-api/internal/infrastructure/db/mongo"
)

// NewRouter builds the Echo instance with all routes registered. The store
// may be degraded (no database); handlers then surface generic errors and
// /test reports the condition.
func NewRouter(store *mongodb.Store, mongoURISet bool, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	// Public marketing site: every origin, method and header is allowed.
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("landing"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(store)
	blogRepo := mongodb.NewBlogRepository(store)
	contactRepo := mongodb.NewContactRepository(store)

	authHandler := handler.NewAuthHandler(service.NewAuthService(userRepo, log))
	blogHandler := handler.NewBlogHandler(service.NewBlogService(blogRepo, log))
	contactHandler := handler.NewContactHandler(service.NewContactService(contactRepo, log))
	diagHandler := handler.NewDiagHandler(store, mongoURISet)

	// --- Diagnostics (never require the database) ---
	e.GET("/", diagHandler.Root)
	e.GET("/test", diagHandler.Status)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Public API ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/auth/register", authHandler.Register)
	apiGroup.POST("/auth/login", authHandler.Login)
	apiGroup.GET("/blogs", blogHandler.List)
	apiGroup.POST("/contact", contactHandler.Submit)

	return e
}
