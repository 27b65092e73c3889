package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/li2990555-pixel/patapal11111/internal/engine"
)

// handleGrowth reports the companion's growth state: raw and displayed
// gauges, the accumulated level, and the avatar scale.
func (s *Server) handleGrowth(w http.ResponseWriter, r *http.Request) {
	login, err := s.db.GetLoginRecord()
	if err != nil {
		s.logger.Warn("load login record", "err", err)
		login = nil
	}
	diary, err := s.db.ListDiaryEntries("")
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	tasks, err := s.db.ListTasks()
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	attrs := engine.ComputeAttributes(login, diary, tasks, time.Now())
	level := attrs.Level()

	s.respond(w, http.StatusOK, map[string]any{
		"raw":     attrs,
		"display": attrs.Display(),
		"level":   level,
		"scale":   engine.Scale(level),
	})
}

func (s *Server) handleFlowStats(w http.ResponseWriter, r *http.Request) {
	window, ok, bad := s.statsWindow(w, r)
	if bad {
		return
	}

	total := 0
	if ok {
		tasks, err := s.db.ListTasks()
		if err != nil {
			s.respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		total = engine.SumFlowSeconds(tasks, window)
	}

	hours, minutes := engine.SplitDuration(total)
	s.respond(w, http.StatusOK, map[string]int{
		"totalSeconds": total,
		"hours":        hours,
		"minutes":      minutes,
	})
}

func (s *Server) handleDiaryStats(w http.ResponseWriter, r *http.Request) {
	window, ok, bad := s.statsWindow(w, r)
	if bad {
		return
	}

	count := 0
	if ok {
		entries, err := s.db.ListDiaryEntries("")
		if err != nil {
			s.respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		count = engine.CountDiaryEntries(entries, window)
	}

	s.respond(w, http.StatusOK, map[string]int{"count": count})
}

// statsWindow resolves the shared filter query parameters. ok=false with
// bad=false means a valid custom filter with missing bounds: the result
// set is empty, not an error.
func (s *Server) statsWindow(w http.ResponseWriter, r *http.Request) (window engine.Window, ok, bad bool) {
	kind := engine.RangeKind(r.URL.Query().Get("filter"))
	if kind == "" {
		kind = engine.RangeToday
	}
	if !engine.ValidRangeKind(kind) {
		s.respondError(w, http.StatusBadRequest, "filter must be today, week, year, or custom")
		return engine.Window{}, false, true
	}

	window, ok = engine.RangeWindow(time.Now(), kind,
		r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	return window, ok, false
}

// Tooltip "don't remind me" flags, one per attribute.

var tooltipAttributes = map[string]bool{
	"vitality":  true,
	"lightSpot": true,
	"imprint":   true,
}

func (s *Server) handleGetTooltip(w http.ResponseWriter, r *http.Request) {
	attr := chi.URLParam(r, "attribute")
	if !tooltipAttributes[attr] {
		s.respondError(w, http.StatusNotFound, "unknown attribute")
		return
	}

	value, err := s.db.GetSetting("hide_tooltip_" + attr)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respond(w, http.StatusOK, map[string]bool{"hide": value == "true"})
}

func (s *Server) handleSetTooltip(w http.ResponseWriter, r *http.Request) {
	attr := chi.URLParam(r, "attribute")
	if !tooltipAttributes[attr] {
		s.respondError(w, http.StatusNotFound, "unknown attribute")
		return
	}

	var req struct {
		Hide bool `json:"hide"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid json")
		return
	}

	value := "false"
	if req.Hide {
		value = "true"
	}
	if err := s.db.SetSetting("hide_tooltip_"+attr, value); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respond(w, http.StatusOK, map[string]bool{"hide": req.Hide})
}
