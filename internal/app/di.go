// Package app provides the dependency injection container assembling the
// application components.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"gocloud.dev/secrets"

	authHTTP "github.com/allisson/tenantvault/internal/auth/http"
	authUsecase "github.com/allisson/tenantvault/internal/auth/usecase"
	"github.com/allisson/tenantvault/internal/config"
	"github.com/allisson/tenantvault/internal/database"
	"github.com/allisson/tenantvault/internal/http"
	"github.com/allisson/tenantvault/internal/metrics"
	tenantHTTP "github.com/allisson/tenantvault/internal/tenant/http"
	tenantUsecase "github.com/allisson/tenantvault/internal/tenant/usecase"
	vaultHTTP "github.com/allisson/tenantvault/internal/vault/http"
	vaultService "github.com/allisson/tenantvault/internal/vault/service"
	vaultUsecase "github.com/allisson/tenantvault/internal/vault/usecase"
)

// Container holds all application dependencies and provides methods to
// access them. Components are created lazily on first access.
type Container struct {
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	txManager       database.TxManager
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics
	masterKeeper    *secrets.Keeper

	// Vault
	keyRepo         vaultService.KeyRepository
	auditRecordRepo vaultUsecase.AuditRecordRepository
	keyManager      *vaultService.KeyManagerService
	tokenCipher     vaultService.TokenCipher
	secretService   vaultUsecase.SecretService
	keyService      vaultUsecase.KeyService
	auditUseCase    vaultUsecase.AuditRecordUseCase

	// Tenant
	tenantRepo    tenantUsecase.TenantRepository
	tenantUseCase tenantUsecase.TenantUseCase

	// Auth
	clientRepo    authUsecase.ClientRepository
	clientUseCase authUsecase.ClientUseCase

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	mu                  sync.Mutex
	loggerInit          sync.Once
	dbInit              sync.Once
	txManagerInit       sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	masterKeeperInit    sync.Once
	keyRepoInit         sync.Once
	auditRecordRepoInit sync.Once
	keyManagerInit      sync.Once
	tokenCipherInit     sync.Once
	secretServiceInit   sync.Once
	keyServiceInit      sync.Once
	auditUseCaseInit    sync.Once
	tenantRepoInit      sync.Once
	tenantUseCaseInit   sync.Once
	clientRepoInit      sync.Once
	clientUseCaseInit   sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the
// provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
func (c *Container) DB() (*sql.DB, error) {
	c.dbInit.Do(func() {
		db, err := database.Connect(database.Config{
			Driver:             c.config.DBDriver,
			ConnectionString:   c.config.DBConnectionString,
			MaxOpenConnections: c.config.DBMaxOpenConnections,
			MaxIdleConnections: c.config.DBMaxIdleConnections,
			ConnMaxLifetime:    c.config.DBConnMaxLifetime,
		})
		if err != nil {
			c.initErrors["db"] = fmt.Errorf("failed to connect to database: %w", err)
			return
		}
		c.db = db
	})
	if err, exists := c.initErrors["db"]; exists {
		return nil, err
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
func (c *Container) TxManager() (database.TxManager, error) {
	c.txManagerInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["txManager"] = fmt.Errorf("failed to get database for tx manager: %w", err)
			return
		}
		c.txManager = database.NewTxManager(db)
	})
	if err, exists := c.initErrors["txManager"]; exists {
		return nil, err
	}
	return c.txManager, nil
}

// MetricsProvider returns the metrics provider, or nil when metrics are
// disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = fmt.Errorf("failed to create metrics provider: %w", err)
			return
		}
		c.metricsProvider = provider
	})
	if err, exists := c.initErrors["metricsProvider"]; exists {
		return nil, err
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder. A no-op recorder
// is returned when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.businessMetricsInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["businessMetrics"] = err
			return
		}
		if provider == nil {
			c.businessMetrics = metrics.NewNoOpBusinessMetrics()
			return
		}
		bm, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["businessMetrics"] = fmt.Errorf("failed to create business metrics: %w", err)
			return
		}
		c.businessMetrics = bm
	})
	if err, exists := c.initErrors["businessMetrics"]; exists {
		return nil, err
	}
	return c.businessMetrics, nil
}

// HTTPServer returns the API server with all routes registered.
func (c *Container) HTTPServer() (*http.Server, error) {
	c.httpServerInit.Do(func() {
		server, err := c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		c.httpServer = server
	})
	if err, exists := c.initErrors["httpServer"]; exists {
		return nil, err
	}
	return c.httpServer, nil
}

// MetricsServer returns the Prometheus metrics server, or nil when metrics
// are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = err
			return
		}
		if provider == nil {
			return
		}
		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	if err, exists := c.initErrors["metricsServer"]; exists {
		return nil, err
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources: servers first,
// then the key cache (zeroing key material), the master keeper, the metrics
// provider, and finally the database.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.keyManager != nil {
		c.keyManager.Close()
	}

	if c.masterKeeper != nil {
		if err := c.masterKeeper.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("master keeper close: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates the structured logger based on the configured level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initHTTPServer assembles the API server with handlers and middleware.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	secretService, err := c.SecretService()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret service for http server: %w", err)
	}

	keyService, err := c.KeyService()
	if err != nil {
		return nil, fmt.Errorf("failed to get key service for http server: %w", err)
	}

	auditUseCase, err := c.AuditRecordUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit record use case for http server: %w", err)
	}

	tenantUseCase, err := c.TenantUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant use case for http server: %w", err)
	}

	routerConfig := http.RouterConfig{
		SecretHandler:      vaultHTTP.NewSecretHandler(secretService, logger),
		KeyHandler:         vaultHTTP.NewKeyHandler(keyService, logger),
		AuditRecordHandler: vaultHTTP.NewAuditRecordHandler(auditUseCase, logger),
		TenantHandler:      tenantHTTP.NewTenantHandler(tenantUseCase, logger),
		CORSMiddleware:     http.NewCORSMiddleware(c.config.CORSEnabled, c.config.CORSAllowOrigins, logger),
	}

	if c.config.AuthEnabled {
		clientUseCase, err := c.ClientUseCase()
		if err != nil {
			return nil, fmt.Errorf("failed to get client use case for http server: %w", err)
		}
		routerConfig.AuthMiddleware = authHTTP.AuthenticationMiddleware(clientUseCase, logger)

		if c.config.RateLimitEnabled {
			routerConfig.RateLimitMiddleware = authHTTP.RateLimitMiddleware(
				c.config.RateLimitRequestsPerSec,
				c.config.RateLimitBurst,
				logger,
			)
		}
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, err
	}
	if provider != nil {
		routerConfig.MetricsMiddleware = metrics.HTTPMetricsMiddleware(
			provider.MeterProvider(),
			c.config.MetricsNamespace,
		)
	}

	return http.NewServer(
		c.config.ServerHost,
		c.config.ServerPort,
		logger,
		db,
		routerConfig,
	), nil
}
