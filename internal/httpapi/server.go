package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/hamed0406/availmon/internal/httpapi/middleware"
	"github.com/hamed0406/availmon/internal/repo"
)

// Server exposes the current running averages over HTTP. Read-only: the
// monitored endpoint set is fixed at startup, so there is nothing to mutate.
type Server struct {
	Logger    *zap.Logger
	Snapshots repo.SnapshotStore
}

func NewServer(l *zap.Logger, s repo.SnapshotStore) *Server {
	return &Server{Logger: l, Snapshots: s}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)
	r.Use(middleware.RateLimit(120, 60))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/api/availability", s.handleAvailability)

	return r
}

func (s *Server) handleAvailability(w http.ResponseWriter, r *http.Request) {
	snaps, err := s.Snapshots.Latest(r.Context())
	if err != nil {
		s.Logger.Warn("snapshot_read_error", zap.Error(err))
		http.Error(w, "snapshot error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(snaps)
}
