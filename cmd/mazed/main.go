// Command mazed serves maze generation and step-by-step solving over HTTP.
//
// Routes (under BASE_URL, default /api):
//
//	POST /v1/mazes                 generate a maze
//	GET  /v1/mazes/:id             fetch a maze with its solution overlay
//	POST /v1/mazes/:id/solves      start a BFS, DFS, Dijkstra or A* solve
//	POST /v1/solves/:id/step       advance a solve by one pop
//	POST /v1/solves/:id/reset      rewind a solve
//	GET  /v1/solves/:id/stream     websocket stream of steps
//
// Configuration is read from .env and the environment; see package config.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/lvmaze/config"
	"github.com/katalvlaran/lvmaze/httpapi"
	"github.com/katalvlaran/lvmaze/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%s[ERROR]%s [APP] config: %v", config.LogErrorColor, config.LogColorReset, err)
	}
	gin.SetMode(cfg.GinMode)

	logger := log.New(os.Stdout, "", log.LstdFlags)

	store := session.NewStore(session.Config{
		MaxMazes: cfg.MaxMazes,
		MaxCells: cfg.MaxCells,
		Logger:   logger,
	})
	mazeController := httpapi.NewMazeController(httpapi.MazeControllerConfig{
		Store:        store,
		Logger:       logger,
		StepInterval: cfg.StepInterval,
	})

	router := httpapi.NewRouter(httpapi.RouterConfig{
		Addr:        cfg.Addr,
		BaseURL:     cfg.BaseURL,
		Controllers: []httpapi.Controller{mazeController},
		Logger:      logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := router.Run(ctx); err != nil {
		logger.Printf("%s[ERROR]%s [APP] server: %v", config.LogErrorColor, config.LogColorReset, err)
		stop()
		os.Exit(1)
	}
}
