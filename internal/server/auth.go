package server

import (
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/li2990555-pixel/patapal11111/internal/engine"
	"golang.org/x/crypto/bcrypt"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Confirm  string `json:"confirm"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid json")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" || req.Confirm == "" {
		s.respondError(w, http.StatusBadRequest, "all fields are required")
		return
	}
	if req.Password != req.Confirm {
		s.respondError(w, http.StatusBadRequest, "the two passwords do not match")
		return
	}
	if !validPassword(req.Password) {
		s.respondError(w, http.StatusBadRequest, "password must be at least 6 characters and contain both letters and numbers")
		return
	}

	existing, err := s.db.GetUser(req.Username)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if existing != nil {
		s.respondError(w, http.StatusBadRequest, "that username is already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "hash password: "+err.Error())
		return
	}

	user, err := s.db.CreateUser(req.Username, string(hash))
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.logger.Info("registered user", "username", user.Username)
	s.respond(w, http.StatusCreated, map[string]string{"username": user.Username})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Username == "" || req.Password == "" {
		s.respondError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := s.db.GetUser(req.Username)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		s.respondError(w, http.StatusUnauthorized, "incorrect username or password")
		return
	}

	// Streak accounting. Unreadable stored state counts as a first login.
	prev, err := s.db.GetLoginRecord()
	if err != nil {
		s.logger.Warn("load login record", "err", err)
		prev = nil
	}
	rec := engine.RecordLogin(time.Now(), prev)
	if err := s.db.SaveLoginRecord(rec); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.logger.Info("login", "username", user.Username,
		"consecutive_days", rec.ConsecutiveDays, "total_days", rec.TotalDays)
	s.respond(w, http.StatusOK, map[string]any{
		"username":        user.Username,
		"token":           uuid.NewString(),
		"consecutiveDays": rec.ConsecutiveDays,
		"totalDays":       rec.TotalDays,
	})
}

// handleAuthStatus lets the shell pick its initial screen: register when
// no account exists yet, login otherwise.
func (s *Server) handleAuthStatus(w http.ResponseWriter, r *http.Request) {
	n, err := s.db.CountUsers()
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respond(w, http.StatusOK, map[string]bool{"registered": n > 0})
}

func validPassword(pass string) bool {
	if len(pass) < 6 {
		return false
	}
	hasLetter, hasDigit := false, false
	for _, r := range pass {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}
