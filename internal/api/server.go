package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/renato0307/fieldscan/internal/services"
	"github.com/renato0307/fieldscan/logging"
)

// Server exposes the services over HTTP
type Server struct {
	exportService  *services.ExportService
	sessionService *services.SessionService
	siteService    *services.SiteService
	syncService    *services.SyncService
}

// NewServer creates a new Server
func NewServer(
	sessionService *services.SessionService,
	siteService *services.SiteService,
	exportService *services.ExportService,
	syncService *services.SyncService,
) *Server {
	return &Server{
		exportService:  exportService,
		sessionService: sessionService,
		siteService:    siteService,
		syncService:    syncService,
	}
}

// Router builds the gin engine with all routes registered
func (s *Server) Router(allowOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	corsConfig := cors.DefaultConfig()
	if len(allowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	corsConfig.ExposeHeaders = []string{"Content-Disposition"}
	r.Use(cors.New(corsConfig))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	{
		api.GET("/configurations", s.listConfigurations)

		api.GET("/sites", s.listSites)
		api.GET("/sites/:id", s.getSite)

		api.POST("/sessions", s.createSession)
		api.GET("/sessions", s.listSessions)
		api.GET("/sessions/:id", s.getSession)
		api.GET("/sessions/:id/progress", s.getProgress)
		api.PUT("/sessions/:id/scans", s.saveScan)
		api.PUT("/sessions/:id/notes", s.updateNotes)
		api.POST("/sessions/:id/complete", s.completeSession)
		api.POST("/sessions/:id/exported", s.markExported)
		api.GET("/sessions/:id/export", s.exportSession)
		api.GET("/sessions/:id/email", s.emailDraft)

		api.GET("/sync", s.syncStatus)
		api.POST("/sync", s.replay)
	}

	return r
}

// requestLogger logs each request on the application logger
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logging.Logger.Debug("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string, allowOrigins []string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(allowOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Logger.Info("HTTP server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logging.Logger.Info("HTTP server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
