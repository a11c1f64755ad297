package routes

import (
	"github.com/gin-gonic/gin"

	"taskapi/internal/handlers"
)

// SetupRoutes mounts the API surface under /api.
func SetupRoutes(r *gin.Engine, taskHandler *handlers.TaskHandler) *gin.Engine {
	api := r.Group("/api")

	api.GET("/health", handlers.Health)

	tasks := api.Group("/tasks")
	{
		tasks.GET("", taskHandler.List)
		tasks.POST("", taskHandler.Create)
		tasks.GET("/:id", taskHandler.GetByID)
		tasks.PUT("/:id", taskHandler.Update)
		tasks.DELETE("/:id", taskHandler.Delete)
	}

	r.NoRoute(handlers.NotFound)

	return r
}
