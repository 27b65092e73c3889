package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/li2990555-pixel/patapal11111/internal/engine"
	"github.com/li2990555-pixel/patapal11111/internal/llm"
	"github.com/li2990555-pixel/patapal11111/internal/mood"
	"github.com/li2990555-pixel/patapal11111/internal/store"
)

// diaryFallback is shown when the generation collaborator fails. No retry.
const diaryFallback = "Pata wanted to write about yesterday, but the words wouldn't come out. Maybe tomorrow."

func (s *Server) handleListDiary(w http.ResponseWriter, r *http.Request) {
	author := r.URL.Query().Get("author")
	if author != "" && author != store.AuthorUser && author != store.AuthorPata {
		s.respondError(w, http.StatusBadRequest, "author must be 'user' or 'pata'")
		return
	}

	entries, err := s.db.ListDiaryEntries(author)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if entries == nil {
		entries = []store.DiaryEntry{}
	}
	s.respond(w, http.StatusOK, map[string]any{"entries": entries})
}

func (s *Server) handleAddDiary(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid json")
		return
	}

	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		s.respondError(w, http.StatusBadRequest, "diary content is required")
		return
	}

	entry, err := s.db.AddDiaryEntry(engine.DateString(time.Now()), req.Content, store.AuthorUser)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respond(w, http.StatusCreated, entry)
}

// handleGenerateDiary writes Pata's diary entry about yesterday, at most
// once per calendar day. With nothing to write about (no completed tasks,
// moods, or user entries yesterday) it declines with 204. A provider
// failure yields the static fallback text and is never retried.
func (s *Server) handleGenerateDiary(w http.ResponseWriter, r *http.Request) {
	yesterday := engine.DateString(time.Now().AddDate(0, 0, -1))

	existing, err := s.db.DiaryEntriesForDate(yesterday, store.AuthorPata)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(existing) > 0 {
		s.respond(w, http.StatusOK, existing[0])
		return
	}

	tasks, err := s.db.ListTasks()
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	var completed []string
	for _, t := range tasks {
		if t.Completed && engine.DateString(t.CreatedAt()) == yesterday {
			completed = append(completed, t.Text)
		}
	}

	moodIDs, err := s.db.MoodsForDate(yesterday)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	moods := mood.Titles(moodIDs)

	userEntries, err := s.db.DiaryEntriesForDate(yesterday, store.AuthorUser)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	var thoughts []string
	for _, e := range userEntries {
		thoughts = append(thoughts, e.Content)
	}

	if len(completed) == 0 && len(moods) == 0 && len(thoughts) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if s.llm == nil {
		s.respondError(w, http.StatusServiceUnavailable, diaryFallback)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	resp, err := s.llm.Complete(ctx, llm.DiarySystem, llm.DiaryPrompt(completed, moods, thoughts))
	if err != nil {
		s.logger.Warn("diary generation failed", "err", err)
		s.respondError(w, http.StatusBadGateway, diaryFallback)
		return
	}

	content := strings.TrimSpace(resp.Content)
	if content == "" {
		s.respondError(w, http.StatusBadGateway, diaryFallback)
		return
	}

	entry, err := s.db.AddDiaryEntry(yesterday, content, store.AuthorPata)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.logger.Info("generated pata diary", "date", yesterday)
	s.respond(w, http.StatusCreated, entry)
}
