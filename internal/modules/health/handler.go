package health

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the liveness endpoint.
type Handler struct {
	start time.Time
}

// NewHandler creates a health handler; start is the process start time used
// to report uptime.
func NewHandler(start time.Time) *Handler {
	return &Handler{start: start}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/api/health", h.status) // GET /api/health
}

type statusResponse struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(statusResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.start).Seconds(),
	})
}
