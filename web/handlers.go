package web

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/castilho/ocho/board"
	"github.com/castilho/ocho/solver"
)

type solveRequest struct {
	Board     [][]int `json:"board"`
	Algorithm string  `json:"algorithm"`
}

// solveResponse mirrors the wire format the UI consumes. The frontier
// high-water mark is reported as max_queue_size for BFS and A* and as
// max_stack_size for DFS; the quantity is the same.
type solveResponse struct {
	Success       bool      `json:"success"`
	Algorithm     string    `json:"algorithm"`
	SolutionPath  [][][]int `json:"solution_path,omitempty"`
	SolutionDepth *int      `json:"solution_depth,omitempty"`
	NodesExpanded int       `json:"nodes_expanded"`
	TimeTaken     float64   `json:"time_taken"`
	MaxQueueSize  *int      `json:"max_queue_size,omitempty"`
	MaxStackSize  *int      `json:"max_stack_size,omitempty"`
	Message       string    `json:"message,omitempty"`
}

type errorResponse struct {
	Success    bool   `json:"success"`
	Solvable   *bool  `json:"solvable,omitempty"`
	Inversions *int   `json:"inversions,omitempty"`
	Error      string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("encoding response")
	}
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}

	alg, err := solver.ParseAlgorithm(req.Algorithm)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	b, err := board.New(req.Board)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	res, err := solver.Solve(b, alg,
		solver.WithDepthLimit(s.depthLimit),
		solver.WithMaxNodes(s.maxNodes))
	if err != nil {
		var unsolvable *solver.UnsolvableError
		if errors.As(err, &unsolvable) {
			// A failed parity check is a verdict, not a server error.
			solvable := false
			inv := unsolvable.Feasibility.Inversions
			writeJSON(w, http.StatusOK, errorResponse{
				Solvable:   &solvable,
				Inversions: &inv,
				Error:      unsolvable.Error(),
			})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	log.Info().Stringer("algorithm", alg).Bool("success", res.Success).
		Int("nodesExpanded", res.NodesExpanded).Dur("elapsed", res.Elapsed).
		Msg("solve")
	writeJSON(w, http.StatusOK, toResponse(res))
}

func toResponse(res *solver.Result) solveResponse {
	out := solveResponse{
		Success:       res.Success,
		Algorithm:     res.Algorithm.String(),
		NodesExpanded: res.NodesExpanded,
		TimeTaken:     math.Round(res.Elapsed.Seconds()*1e4) / 1e4,
		Message:       res.Message,
	}
	if res.Success {
		out.SolutionPath = lo.Map(res.Path, func(b board.Board, _ int) [][]int {
			return b.Grid()
		})
		depth := res.Depth
		out.SolutionDepth = &depth
	}
	frontier := res.MaxFrontier
	if res.Algorithm == solver.DFS {
		out.MaxStackSize = &frontier
	} else {
		out.MaxQueueSize = &frontier
	}
	return out
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":          "healthy",
		"supported_sizes": []string{"2x2", "3x3"},
	})
}

func (s *Server) handleShuffle(w http.ResponseWriter, r *http.Request) {
	size := queryInt(r, "size", 3)
	steps := queryInt(r, "steps", 40)
	if steps < 1 || steps > 1000 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "steps must be between 1 and 1000"})
		return
	}
	b, err := board.Shuffle(size, steps)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"board": b.Grid(),
		"size":  size,
	})
}

func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
