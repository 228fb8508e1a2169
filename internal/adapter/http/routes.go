package http

import (
	"github.com/gin-gonic/gin"

	"github.com/dontforgetsemicologne/task-flow/internal/adapter/http/handlers"
	"github.com/dontforgetsemicologne/task-flow/internal/adapter/http/middleware"
)

func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, procedureHandler *handlers.ProcedureHandler) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
		api.GET("/procedures", procedureHandler.List)
		api.GET("/trpc/:procedure", procedureHandler.Query)
		api.POST("/trpc/:procedure", procedureHandler.Mutate)
	}
}
