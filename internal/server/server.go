package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/li2990555-pixel/patapal11111/internal/llm"
	"github.com/li2990555-pixel/patapal11111/internal/store"
)

// Server is the patapal HTTP API server.
type Server struct {
	db      *store.DB
	llm     llm.Client
	logger  *log.Logger
	router  chi.Router
	version string
	started time.Time
}

// New creates a new Server. client may be nil, in which case chat and
// diary generation degrade to their static fallbacks.
func New(db *store.DB, client llm.Client, logger *log.Logger, version string) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		db:      db,
		llm:     client,
		logger:  logger,
		version: version,
		started: time.Now(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)
		r.Get("/auth/status", s.handleAuthStatus)

		r.Get("/tasks", s.handleListTasks)
		r.Post("/tasks", s.handleCreateTask)
		r.Post("/tasks/{taskID}/toggle", s.handleToggleTask)
		r.Post("/tasks/{taskID}/flow", s.handleFlowSession)
		r.Post("/tasks/{taskID}/mood", s.handleTaskMood)

		r.Get("/moods", s.handleMoodCatalog)
		r.Post("/moods", s.handleRecordMood)
		r.Get("/moods/history", s.handleMoodHistory)

		r.Get("/diary", s.handleListDiary)
		r.Post("/diary", s.handleAddDiary)
		r.Post("/diary/generate", s.handleGenerateDiary)

		r.Get("/chat", s.handleChatLog)
		r.Post("/chat", s.handleChat)

		r.Get("/growth", s.handleGrowth)
		r.Get("/stats/flow", s.handleFlowStats)
		r.Get("/stats/diary", s.handleDiaryStats)

		r.Get("/companion", s.handleCompanion)

		r.Get("/settings/tooltips/{attribute}", s.handleGetTooltip)
		r.Put("/settings/tooltips/{attribute}", s.handleSetTooltip)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	dbOK := true
	if err := s.db.Ping(); err != nil {
		dbOK = false
	}

	s.respond(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
		"uptime":  time.Since(s.started).Seconds(),
		"db":      dbOK,
		"db_path": s.db.Path,
	})
}

func (s *Server) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respond(w, status, map[string]string{"error": msg})
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
