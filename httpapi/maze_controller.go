package httpapi

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/katalvlaran/lvmaze/config"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/search"
	"github.com/katalvlaran/lvmaze/session"
)

// MazeController serves maze generation and solve stepping.
type MazeController struct {
	store        *session.Store
	logger       *log.Logger
	stepInterval time.Duration
	upgrader     websocket.Upgrader
}

// MazeControllerConfig holds the dependencies of a MazeController.
type MazeControllerConfig struct {
	Store        *session.Store
	Logger       *log.Logger
	StepInterval time.Duration // default stream tick
}

// NewMazeController initializes a MazeController.
func NewMazeController(c MazeControllerConfig) *MazeController {
	logger := c.Logger
	if logger == nil {
		logger = log.Default()
	}
	interval := c.StepInterval
	if interval <= 0 {
		interval = 25 * time.Millisecond
	}
	return &MazeController{
		store:        c.Store,
		logger:       logger,
		stepInterval: interval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.generate)
		mazes.GET("/:id", mc.mazeInfo)
		mazes.POST("/:id/solves", mc.solve)
	}
	solves := route.Group("/solves")
	{
		solves.POST("/:id/step", mc.step)
		solves.POST("/:id/reset", mc.reset)
		solves.GET("/:id/stream", mc.stream)
	}
}

// generate handles maze creation requests.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	topo := grid.Rect4
	if request.Topology != "" {
		var err error
		if topo, err = grid.ParseTopology(request.Topology); err != nil {
			abortWithError(ctx, err)
			return
		}
	}

	snap, err := mc.store.Generate(session.GenerateParams{
		Rows:       request.Rows,
		Cols:       request.Cols,
		Topology:   topo,
		Seed:       request.Seed,
		LoopChance: request.LoopChance,
	})
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toMazeResponse(snap))
}

// mazeInfo returns a stored maze with its current solution overlay.
func (mc *MazeController) mazeInfo(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	snap, err := mc.store.Maze(id)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toMazeResponse(snap))
}

// solve starts a search on a stored maze.
func (mc *MazeController) solve(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	alg, err := search.ParseAlgorithm(request.Algorithm)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	info, err := mc.store.Solve(id, alg, request.Seed)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, &SolveResponse{
		ID:        info.ID.String(),
		MazeID:    info.MazeID.String(),
		Algorithm: info.Algorithm.String(),
	})
}

// step advances a solve by one expansion.
func (mc *MazeController) step(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	info, err := mc.store.Step(id)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toStepResponse(info))
}

// reset rewinds a solve and clears the maze overlay.
func (mc *MazeController) reset(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := mc.store.Reset(id); err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// parseID reads the :id path parameter; on failure it writes 400.
func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func (mc *MazeController) logError(format string, args ...any) {
	mc.logger.Printf("%s[ERROR]%s [HTTP] "+format, append([]any{config.LogErrorColor, config.LogColorReset}, args...)...)
}
