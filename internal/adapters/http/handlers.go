// Package httpadapter exposes the solver and the archive as a small
// JSON API.
package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"svw.info/sudokulogic/internal/domain"
	"svw.info/sudokulogic/internal/gridio"
	"svw.info/sudokulogic/internal/ports"
	"svw.info/sudokulogic/internal/storage"
	"svw.info/sudokulogic/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/solve", h.handleSolve)
	mux.HandleFunc("POST /api/validate", h.handleValidate)
	mux.HandleFunc("POST /api/archive", h.handleArchive)
	mux.HandleFunc("GET /api/archive", h.handleList)
	mux.HandleFunc("GET /api/archive/{id}", h.handleLoad)
}

type gridReq struct {
	// Grid is the puzzle in 81-character row-major form, '.' or '0'
	// for blank cells.
	Grid string `json:"grid"`
	Name string `json:"name,omitempty"`
}

type statsResp struct {
	Assignments  int   `json:"assignments"`
	Eliminations int   `json:"eliminations"`
	Rounds       int   `json:"rounds"`
	DurationUs   int64 `json:"durationUs"`
}

type solveResp struct {
	Outcome string      `json:"outcome"`
	Grid    string      `json:"grid"`
	Rows    [9][9]uint8 `json:"rows"`
	Stats   statsResp   `json:"stats"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	b, ok := decodeGrid(w, r)
	if !ok {
		return
	}
	res, err := h.UC.Solve(r.Context(), b)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, solveResp{
		Outcome: res.Outcome.String(),
		Grid:    gridio.Flatten(res.Board.Grid()),
		Rows:    res.Board.Grid(),
		Stats:   toStats(res.Stats),
	})
}

type validateResp struct {
	OK        bool          `json:"ok"`
	Conflicts []domain.Cell `json:"conflicts,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	b, ok := decodeGrid(w, r)
	if !ok {
		return
	}
	valid, conflicts, err := h.UC.Validate(r.Context(), b)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, validateResp{OK: valid, Conflicts: conflicts})
}

type archiveResp struct {
	ID      string `json:"id"`
	Outcome string `json:"outcome"`
	Grid    string `json:"grid"`
}

func (h *Handler) handleArchive(w http.ResponseWriter, r *http.Request) {
	var req gridReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	b, err := gridio.Parse(req.Grid)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, res, err := h.UC.SolveAndArchive(r.Context(), req.Name, b)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, archiveResp{
		ID:      id,
		Outcome: res.Outcome.String(),
		Grid:    gridio.Flatten(res.Board.Grid()),
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	metas, err := h.UC.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{"puzzles": metas})
}

type puzzleResp struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Givens    string `json:"givens"`
	Final     string `json:"final"`
	Outcome   string `json:"outcome"`
	CreatedAt int64  `json:"createdAt"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	p, err := h.UC.Load(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, puzzleResp{
		ID:        p.ID,
		Name:      p.Name,
		Givens:    gridio.Flatten(p.Givens),
		Final:     gridio.Flatten(p.Final),
		Outcome:   p.Outcome,
		CreatedAt: p.CreatedAt,
	})
}

func decodeGrid(w http.ResponseWriter, r *http.Request) (*domain.Board, bool) {
	var req gridReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	b, err := gridio.Parse(req.Grid)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return b, true
}

func toStats(s ports.Stats) statsResp {
	return statsResp{
		Assignments:  s.Assignments,
		Eliminations: s.Eliminations,
		Rounds:       s.Rounds,
		DurationUs:   s.Duration.Microseconds(),
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
