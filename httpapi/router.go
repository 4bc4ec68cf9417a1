// Package httpapi exposes the session store over REST (gin) and streams
// solve progress over websockets (gorilla/websocket).
package httpapi

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/lvmaze/config"
)

// Controller registers its routes on a versioned group.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
}

// Router manages the HTTP server and its controllers.
type Router struct {
	addr        string
	baseURL     string
	controllers []Controller
	logger      *log.Logger
}

// RouterConfig holds configuration settings for creating a new Router instance.
type RouterConfig struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Controllers []Controller
	Logger      *log.Logger
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(c RouterConfig) *Router {
	logger := c.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Router{
		addr:        c.Addr,
		baseURL:     c.BaseURL,
		controllers: c.Controllers,
		logger:      logger,
	}
}

// Engine builds the gin engine with every controller mounted under
// {baseURL}/v1.
func (r *Router) Engine() *gin.Engine {
	router := gin.Default()

	api := router.Group(r.baseURL)
	{
		publicRoutes := api.Group("/v1")
		{
			for _, c := range r.controllers {
				c.RegisterPublic(publicRoutes)
			}
		}
	}
	return router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (r *Router) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              r.addr,
		Handler:           r.Engine(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.logger.Printf("%s[INFO]%s [HTTP] listening on %s", config.LogInfoColor, config.LogColorReset, r.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	r.logger.Printf("%s[INFO]%s [HTTP] server stopped", config.LogInfoColor, config.LogColorReset)
	return nil
}
