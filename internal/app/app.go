package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"

	"taskapi/internal/config"
	"taskapi/internal/handlers"
	"taskapi/internal/middleware"
	"taskapi/internal/repositories"
	"taskapi/internal/routes"
	"taskapi/internal/services"
)

// Run wires the whole application together and serves until the process
// is stopped. The *sql.DB handle is constructed exactly once here and
// shared across requests; it holds no per-request state, so no locking
// discipline is needed around it.
func Run() {
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(level)
	}

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("close database: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	// === Repos / Services / Handlers ===
	taskRepo := repositories.NewTaskRepository(db)
	taskService := services.NewTaskService(taskRepo)
	taskHandler := handlers.NewTaskHandler(taskService)

	router := NewRouter(cfg, taskHandler)

	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Infof("server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// NewRouter builds the gin engine with the full middleware pipeline:
// recovery -> correlation id -> timing -> CORS -> error translation.
func NewRouter(cfg *config.Config, taskHandler *handlers.TaskHandler) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Timing())
	router.Use(cors.New(corsConfig(cfg)))
	router.Use(middleware.ErrorHandler())

	return routes.SetupRoutes(router, taskHandler)
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader, middleware.ResponseTimeHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.CORS.AllowedOrigins) > 0 {
		c.AllowOrigins = cfg.CORS.AllowedOrigins
	} else {
		c.AllowAllOrigins = true
	}
	return c
}
