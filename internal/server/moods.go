package server

import (
	"net/http"
	"time"

	"github.com/li2990555-pixel/patapal11111/internal/engine"
	"github.com/li2990555-pixel/patapal11111/internal/mood"
)

func (s *Server) handleMoodCatalog(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]any{"moods": mood.Catalog})
}

func (s *Server) handleRecordMood(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MoodID string `json:"moodId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if _, known := mood.Lookup(req.MoodID); !known {
		s.respondError(w, http.StatusBadRequest, "unknown mood")
		return
	}

	today := engine.DateString(time.Now())
	if err := s.db.RecordMood(today, req.MoodID); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	moods, err := s.db.MoodsForDate(today)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respond(w, http.StatusOK, map[string]any{"date": today, "moods": moods})
}

func (s *Server) handleMoodHistory(w http.ResponseWriter, r *http.Request) {
	history, err := s.db.MoodHistory()
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respond(w, http.StatusOK, map[string]any{"history": history})
}

// handleCompanion returns the companion's background for today, derived
// from today's recorded moods and remembered for the rest of the day.
// Yesterday's remembered background never leaks into a new day.
func (s *Server) handleCompanion(w http.ResponseWriter, r *http.Request) {
	today := engine.DateString(time.Now())

	moods, err := s.db.MoodsForDate(today)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	background := mood.Background(moods)
	if background != "" {
		if err := s.db.SaveCompanionMemory(background, today); err != nil {
			s.logger.Warn("save companion memory", "err", err)
		}
	} else {
		remembered, err := s.db.GetCompanionMemory(today)
		if err != nil {
			s.logger.Warn("load companion memory", "err", err)
		} else if remembered != nil {
			background = remembered.Background
		}
	}

	s.respond(w, http.StatusOK, map[string]string{
		"background": background,
		"date":       today,
	})
}
