// Package server wires the page handlers, auth, and operational endpoints
// into one gin router and owns the HTTP server lifecycle.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cravio-admin/internal/common/auth"
	"cravio-admin/internal/common/config"
	"cravio-admin/internal/common/logger"
)

// PageHandler is anything that can register its routes on the API group.
type PageHandler interface {
	Register(r *gin.RouterGroup)
}

type Server struct {
	cfg  config.ServerConfig
	log  logger.Logger
	http *http.Server
}

// New builds the router: open operational endpoints, open login, and the
// session-guarded API group the page handlers register on.
func New(cfg config.Config, log logger.Logger, sessions *auth.SessionManager, pages ...PageHandler) *Server {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": cfg.App.Name})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authHandler := NewAuthHandler(sessions)
	router.POST("/api/login", authHandler.Login)
	router.POST("/api/logout", authHandler.Logout)

	api := router.Group("/api", RequireSession(sessions))
	api.GET("/session", authHandler.Session)
	for _, page := range pages {
		page.Register(api)
	}

	return &Server{
		cfg: cfg.Server,
		log: log,
		http: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:      router,
			ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
			WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		},
	}
}

func (s *Server) Start() error {
	s.log.Info("http server starting", map[string]interface{}{"addr": s.http.Addr})
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("http server shutting down", nil)
	return s.http.Shutdown(ctx)
}
