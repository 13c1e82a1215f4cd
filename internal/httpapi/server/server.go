package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/portls-labs/portls/internal/httpapi/handlers"
	"github.com/portls-labs/portls/internal/httpapi/middleware"
	"github.com/portls-labs/portls/pkg/config"
)

type APIServer struct {
	config   *config.AppConfig
	handlers *handlers.Handlers
	router   *gin.Engine
	server   *http.Server
}

func NewAPIServer(cfg *config.AppConfig, h *handlers.Handlers) *APIServer {
	if cfg.App.Environment == "local" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(&cfg.APIServer))

	s := &APIServer{
		config:   cfg,
		handlers: h,
		router:   router,
	}

	s.setupRoutes()
	return s
}

func (s *APIServer) setupRoutes() {
	s.router.GET("/", s.handlers.Root)
	s.router.GET("/test", s.handlers.StoreDiagnostics)

	api := s.router.Group("/api")
	api.GET("/planets", s.handlers.ListPlanets)
	api.GET("/planets/:name", s.handlers.GetPlanet)
	api.GET("/toys", s.handlers.ListToys)
	api.GET("/profile/:username", s.handlers.GetProfile)
	api.POST("/wormhole/initiate", s.handlers.InitiateTravel)
}

// Router exposes the gin engine, mainly for tests.
func (s *APIServer) Router() http.Handler {
	return s.router
}

// Start serves until SIGINT/SIGTERM, then shuts down gracefully.
func (s *APIServer) Start() error {
	s.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", s.config.APIServer.Host, s.config.APIServer.Port),
		Handler: s.router,
	}

	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		logrus.WithField("address", s.server.Addr).Info("starting http API server")
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("failed to start http API server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case <-quit:
		case <-ctx.Done():
			return nil
		}

		logrus.Info("shutting down http API server")
		if err := s.server.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("failed to shut down http API server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logrus.Info("http API server stopped")
	return nil
}
