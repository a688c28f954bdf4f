// Package server assembles the gin engine of the Invoice API and runs it
// behind an http.Server with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"path"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/invoiceapi/backend/docs"
	invoiceapp "github.com/invoiceapi/backend/internal/application/invoice"
	processapp "github.com/invoiceapi/backend/internal/application/process"
	"github.com/invoiceapi/backend/internal/infrastructure/config"
	"github.com/invoiceapi/backend/internal/infrastructure/logger"
	"github.com/invoiceapi/backend/internal/infrastructure/telemetry"
	"github.com/invoiceapi/backend/internal/interfaces/http/dto"
	"github.com/invoiceapi/backend/internal/interfaces/http/middleware"
	"github.com/invoiceapi/backend/internal/interfaces/http/router"
)

// Options carries everything New needs
type Options struct {
	Config    *config.Config
	Logger    *zap.Logger
	Invoices  *invoiceapp.InvoiceService
	Processes *processapp.ProcessService
	// Telemetry is optional. Without it the tracing, HTTP metrics and
	// profiling middleware pass requests through untouched.
	Telemetry *telemetry.Telemetry
}

// Server owns the engine and the http.Server serving it
type Server struct {
	cfg        *config.Config
	logger     *zap.Logger
	engine     *gin.Engine
	router     *router.Router
	limiter    *middleware.RateLimiter
	httpServer *http.Server
}

// New builds the engine, registers every route and prepares the http.Server.
func New(opts Options) (*Server, error) {
	if opts.Config == nil {
		return nil, errors.New("server: config is required")
	}
	if opts.Invoices == nil || opts.Processes == nil {
		return nil, errors.New("server: invoice and process services are required")
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	cfg := opts.Config

	mode, err := dto.ParseErrorMode(cfg.API.ErrorMode)
	if err != nil {
		return nil, err
	}
	if err := middleware.SetupValidator(); err != nil {
		return nil, fmt.Errorf("setup validator: %w", err)
	}

	s := &Server{cfg: cfg, logger: log}
	s.engine = s.newEngine(opts.Telemetry)

	var routerOpts []router.RouterOption
	if cfg.API.BasePath != "" {
		routerOpts = append(routerOpts, router.WithBasePath(cfg.API.BasePath))
	}
	s.router = router.NewRouter(s.engine, routerOpts...)
	registerRoutes(s.router, NewHandlers(opts.Invoices, opts.Processes, mode))
	s.router.Setup()

	if cfg.Swagger.Enabled {
		s.engine.GET("/swagger/*any",
			middleware.SwaggerAccess(cfg.Swagger.AllowedIPs),
			ginSwagger.WrapHandler(swaggerFiles.Handler),
		)
	}

	s.httpServer = &http.Server{
		Addr:           cfg.App.Address(),
		Handler:        s.engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	log.Info("HTTP server configured",
		zap.String("addr", s.httpServer.Addr),
		zap.String("error_mode", string(mode)),
		zap.Bool("swagger", cfg.Swagger.Enabled),
		zap.Int("routes", len(s.engine.Routes())),
	)
	return s, nil
}

// quietPaths are the probe endpoints under basePath that are logged at debug
// level and left unprofiled.
func quietPaths(basePath string) []string {
	if basePath == "" {
		basePath = "/"
	}
	return []string{
		path.Join(basePath, "health"),
		path.Join(basePath, "system", "ping"),
	}
}

// newEngine applies the middleware stack in order:
// 1. RequestID - generate/propagate request ID
// 2. Tracing - server span per request, marked failed on 4xx/5xx
// 3. Logger - one line per request, request-scoped logger in context
// 4. Recovery - turn panics into 500 inside the logged and traced request
// 5. HTTPMetrics - count everything below, rejected requests included
// 6. Security - security headers
// 7. CORS - cross-origin requests and preflight
// 8. BodyLimit - reject oversized bodies
// 9. RateLimit - per client IP (if enabled)
// 10. Profiling - pyroscope labels for route and resource
func (s *Server) newEngine(tel *telemetry.Telemetry) *gin.Engine {
	cfg := s.cfg
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			s.logger.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	} else if err := engine.SetTrustedProxies(nil); err != nil {
		s.logger.Warn("Failed to disable proxy trust", zap.Error(err))
	}

	tracing := middleware.TracingConfig{ServiceName: cfg.Telemetry.ServiceName}
	metrics := middleware.HTTPMetricsConfig{}
	quiet := quietPaths(cfg.API.BasePath)
	profiling := middleware.DefaultProfilingConfig()
	profiling.Enabled = false
	profiling.SkipPaths = quiet
	if tel != nil {
		// otelgin picks up the global provider, span-profile wrapped when profiling is on
		tracing.Enabled = tel.Tracer != nil && tel.Tracer.IsEnabled()
		metrics.MeterProvider = tel.Meter
		metrics.Enabled = tel.Meter != nil
		profiling.Enabled = tel.Profiler != nil && tel.Profiler.IsEnabled()
	}

	engine.Use(middleware.RequestID())
	engine.Use(middleware.TracingWithConfig(tracing))
	engine.Use(middleware.SpanErrorMarker())
	engine.Use(logger.GinMiddleware(s.logger, logger.MiddlewareConfig{
		SkipPaths: quiet,
	}))
	engine.Use(logger.Recovery(s.logger))
	engine.Use(middleware.HTTPMetrics(metrics))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.HTTP.CORSAllowOrigins,
		AllowMethods:  cfg.HTTP.CORSAllowMethods,
		AllowHeaders:  cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders: []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		MaxAge:        12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		s.limiter = middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(s.limiter))
		s.logger.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	engine.Use(middleware.ProfilingWithConfig(profiling))

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Not found"))
	})
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponse("Method not allowed"))
	})

	return engine
}

// Handler returns the assembled engine
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Routes returns the registered API routes in registration order
func (s *Server) Routes() []router.RouteInfo {
	return s.router.Routes()
}

// Addr returns the configured listen address
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully within http.shutdown_timeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.closeLimiter()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server starting", zap.String("addr", ln.Addr().String()))
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...", zap.Duration("timeout", s.cfg.HTTP.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	s.logger.Info("Server exited gracefully")
	return nil
}

func (s *Server) closeLimiter() {
	if s.limiter != nil {
		s.limiter.Close()
	}
}
