package httpapi

import (
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/search"
	"github.com/katalvlaran/lvmaze/session"
)

// GenerateRequest represents a request to generate a new maze.
type GenerateRequest struct {
	Rows       int      `json:"rows" binding:"required"`
	Cols       int      `json:"cols" binding:"required"`
	Topology   string   `json:"topology"` // "rect" (default) or "hex"
	Seed       *int64   `json:"seed"`
	LoopChance *float64 `json:"loopChance"`
}

// SolveRequest represents a request to start a search on a stored maze.
type SolveRequest struct {
	Algorithm string `json:"algorithm" binding:"required"`
	Seed      *int64 `json:"seed"`
}

// CellDTO is a grid position.
type CellDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MazeResponse describes a stored maze. Grid has one string per row using
// '#' wall, '.' grass, '~' mud, 'w' water, '*' solution, 'S' start, 'E' end.
type MazeResponse struct {
	ID       string   `json:"id"`
	Rows     int      `json:"rows"`
	Cols     int      `json:"cols"`
	Topology string   `json:"topology"`
	Seed     int64    `json:"seed"`
	Start    CellDTO  `json:"start"`
	End      CellDTO  `json:"end"`
	Grid     []string `json:"grid"`
	SolveID  string   `json:"solveId,omitempty"`
}

// SolveResponse describes a new solve handle.
type SolveResponse struct {
	ID        string `json:"id"`
	MazeID    string `json:"mazeId"`
	Algorithm string `json:"algorithm"`
}

// StepResponse is one engine step. Path and TotalCost are set on path_found.
type StepResponse struct {
	Kind      string    `json:"kind"`
	Cell      CellDTO   `json:"cell"`
	Cost      int       `json:"cost"`
	State     string    `json:"state"`
	Steps     int       `json:"steps"`
	Path      []CellDTO `json:"path,omitempty"`
	TotalCost *int      `json:"totalCost,omitempty"`
}

func toCellDTO(c grid.Cell) CellDTO { return CellDTO{Row: c.Row, Col: c.Col} }

func toMazeResponse(s session.MazeSnapshot) *MazeResponse {
	m := s.Maze
	b := m.Bounds()
	resp := &MazeResponse{
		ID:       s.ID.String(),
		Rows:     b.Rows,
		Cols:     b.Cols,
		Topology: m.Topology().String(),
		Seed:     m.Seed(),
		Start:    toCellDTO(m.Start()),
		End:      toCellDTO(m.End()),
		Grid:     gridRows(m),
	}
	if s.SolveID != uuid.Nil {
		resp.SolveID = s.SolveID.String()
	}
	return resp
}

// gridRows splits the text dump of m into rows.
func gridRows(m *maze.Maze) []string {
	return strings.Split(strings.TrimSuffix(m.String(), "\n"), "\n")
}

func toStepResponse(s session.StepInfo) *StepResponse {
	resp := &StepResponse{
		Kind:  s.Result.Kind.String(),
		Cell:  toCellDTO(s.Result.Cell),
		Cost:  s.Result.Cost,
		State: s.State.String(),
		Steps: s.Steps,
	}
	if s.Result.Kind == search.StepPathFound {
		resp.Path = make([]CellDTO, 0, s.Result.Route.Len())
		for _, c := range s.Result.Route.Cells {
			resp.Path = append(resp.Path, toCellDTO(c))
		}
		total := s.Result.Route.Cost
		resp.TotalCost = &total
	}
	return resp
}
