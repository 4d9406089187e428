package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/loandesk/internal/server/http/handlers"
	"github.com/polkiloo/loandesk/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.DeskFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	quoteHandler := handlers.NewQuoteHandler()
	applicationHandler := handlers.NewApplicationHandler(facade)
	loanHandler := handlers.NewLoanHandler(facade)
	userHandler := handlers.NewUserHandler(facade)

	api := engine.Group("/api")
	api.POST("/user/register", authHandler.Register)
	api.POST("/user/login", authHandler.Login)
	api.GET("/loans/rates", quoteHandler.Rate)
	api.GET("/loans/quote", quoteHandler.Quote)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.POST("/applications", applicationHandler.Apply)
	authed.GET("/applications", applicationHandler.List)
	authed.POST("/loans", loanHandler.Request)
	authed.GET("/loans", loanHandler.List)
	authed.PUT("/loans/approve", loanHandler.Approve)
	authed.PUT("/loans/:id", loanHandler.Edit)
	authed.GET("/users", userHandler.List)
	authed.GET("/users/:id", userHandler.Get)
	authed.PATCH("/users/:id/promote", userHandler.Promote)
	authed.DELETE("/users/:id", userHandler.Delete)

	return engine
}
