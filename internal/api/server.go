// SPDX-FileCopyrightText: The widgetsync authors
//
// SPDX-License-Identifier: MIT

// Package api exposes the widget state over a small read-only JSON API.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lifeboard/widgetsync/internal/logger"
	"github.com/lifeboard/widgetsync/internal/service"
)

const shutdownTimeout = 10 * time.Second

// Server bundles the router and its dependencies.
type Server struct {
	addr    string
	service *service.Service
	logger  *logger.Logger
	engine  *gin.Engine
}

// New constructs a server with routes and middleware.
func New(addr string, svc *service.Service, log *logger.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())

	server := &Server{addr: addr, service: svc, logger: log, engine: engine}
	server.registerRoutes()
	return server
}

// Engine exposes the underlying gin engine (for tests).
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run starts the HTTP server and blocks until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.engine.Group("/api")
	{
		api.GET("/weather", s.handleWeather)
		api.GET("/transit", s.handleTransit)
		api.GET("/transit/bus", s.handleBusDepartures)
		api.GET("/transit/trains", s.handleRailDepartures)
		api.GET("/cities", s.handleCitySearch)
		api.GET("/stops", s.handleStopSearch)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
