// Package http provides the API HTTP server, its router, and shared
// middleware.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	tenantHTTP "github.com/allisson/tenantvault/internal/tenant/http"
	vaultHTTP "github.com/allisson/tenantvault/internal/vault/http"
)

// RouterConfig carries the handlers and optional middleware for the API
// router. Nil middleware entries are skipped.
type RouterConfig struct {
	SecretHandler      *vaultHTTP.SecretHandler
	KeyHandler         *vaultHTTP.KeyHandler
	AuditRecordHandler *vaultHTTP.AuditRecordHandler
	TenantHandler      *tenantHTTP.TenantHandler

	AuthMiddleware      gin.HandlerFunc
	RateLimitMiddleware gin.HandlerFunc
	MetricsMiddleware   gin.HandlerFunc
	CORSMiddleware      gin.HandlerFunc
}

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
	db     *sql.DB
}

// NewServer creates the API server and registers all routes.
func NewServer(
	host string,
	port int,
	logger *slog.Logger,
	db *sql.DB,
	routerConfig RouterConfig,
) *Server {
	s := &Server{
		logger: logger,
		db:     db,
	}

	s.router = s.createRouter(routerConfig)
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// createRouter builds the Gin engine with shared middleware, health
// endpoints, and the versioned API routes.
func (s *Server) createRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if cfg.MetricsMiddleware != nil {
		router.Use(cfg.MetricsMiddleware)
	}
	if cfg.CORSMiddleware != nil {
		router.Use(cfg.CORSMiddleware)
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if cfg.AuthMiddleware != nil {
		v1.Use(cfg.AuthMiddleware)
	}
	if cfg.RateLimitMiddleware != nil {
		v1.Use(cfg.RateLimitMiddleware)
	}

	if cfg.SecretHandler != nil {
		v1.POST("/secrets/protect", cfg.SecretHandler.ProtectHandler)
		v1.POST("/secrets/reveal", cfg.SecretHandler.RevealHandler)
	}

	if cfg.KeyHandler != nil {
		v1.POST("/keys", cfg.KeyHandler.GenerateHandler)
		v1.POST("/keys/rotate", cfg.KeyHandler.RotateHandler)
		v1.POST("/keys/:id/revoke", cfg.KeyHandler.RevokeHandler)
	}

	if cfg.AuditRecordHandler != nil {
		v1.GET("/audit-records", cfg.AuditRecordHandler.ListHandler)
	}

	if cfg.TenantHandler != nil {
		v1.POST("/tenants", cfg.TenantHandler.InstallHandler)
		v1.GET("/tenants", cfg.TenantHandler.ListHandler)
		v1.GET("/tenants/:team_id", cfg.TenantHandler.GetHandler)
		v1.GET("/tenants/:team_id/bot-token", cfg.TenantHandler.BotTokenHandler)
		v1.POST("/tenants/:team_id/suspend", cfg.TenantHandler.SuspendHandler)
	}

	return router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports readiness including database connectivity.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"database": "ok"}

	if s.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			components["database"] = "error"
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":     "not_ready",
				"components": components,
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}

// Start starts the API HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the API HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
