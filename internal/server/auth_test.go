package server

import (
	"net/http"
	"testing"
)

func register(t *testing.T, srv *Server, username, password string) {
	t.Helper()
	w := doJSON(t, srv, "POST", "/api/auth/register", map[string]string{
		"username": username,
		"password": password,
		"confirm":  password,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestRegisterValidation(t *testing.T) {
	srv := testServer(t, nil)

	tests := []struct {
		name    string
		body    map[string]string
		wantErr string
	}{
		{
			"missing fields",
			map[string]string{"username": "river"},
			"all fields are required",
		},
		{
			"mismatched passwords",
			map[string]string{"username": "river", "password": "abc123", "confirm": "abc124"},
			"the two passwords do not match",
		},
		{
			"too short",
			map[string]string{"username": "river", "password": "a1", "confirm": "a1"},
			"password must be at least 6 characters and contain both letters and numbers",
		},
		{
			"letters only",
			map[string]string{"username": "river", "password": "abcdef", "confirm": "abcdef"},
			"password must be at least 6 characters and contain both letters and numbers",
		},
		{
			"digits only",
			map[string]string{"username": "river", "password": "123456", "confirm": "123456"},
			"password must be at least 6 characters and contain both letters and numbers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, srv, "POST", "/api/auth/register", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
			var body map[string]string
			decodeBody(t, w, &body)
			if body["error"] != tt.wantErr {
				t.Errorf("error = %q, want %q", body["error"], tt.wantErr)
			}
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	srv := testServer(t, nil)
	register(t, srv, "river", "abc123")

	w := doJSON(t, srv, "POST", "/api/auth/register", map[string]string{
		"username": "river", "password": "xyz789", "confirm": "xyz789",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	var body map[string]string
	decodeBody(t, w, &body)
	if body["error"] != "that username is already registered" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestLoginFlow(t *testing.T) {
	srv := testServer(t, nil)
	register(t, srv, "river", "abc123")

	w := doJSON(t, srv, "POST", "/api/auth/login", map[string]string{
		"username": "river", "password": "wrong1",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: status = %d, want %d", w.Code, http.StatusUnauthorized)
	}

	w = doJSON(t, srv, "POST", "/api/auth/login", map[string]string{
		"username": "river", "password": "abc123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: status = %d, body %s", w.Code, w.Body.String())
	}

	var body map[string]any
	decodeBody(t, w, &body)
	if body["username"] != "river" {
		t.Errorf("username = %v", body["username"])
	}
	if body["token"] == "" || body["token"] == nil {
		t.Error("missing session token")
	}
	if body["consecutiveDays"] != float64(1) || body["totalDays"] != float64(1) {
		t.Errorf("streak = %v/%v, want 1/1", body["consecutiveDays"], body["totalDays"])
	}

	// A second login the same day leaves the counters alone.
	w = doJSON(t, srv, "POST", "/api/auth/login", map[string]string{
		"username": "river", "password": "abc123",
	})
	decodeBody(t, w, &body)
	if body["consecutiveDays"] != float64(1) || body["totalDays"] != float64(1) {
		t.Errorf("same-day streak = %v/%v, want 1/1", body["consecutiveDays"], body["totalDays"])
	}
}

func TestAuthStatus(t *testing.T) {
	srv := testServer(t, nil)

	w := doJSON(t, srv, "GET", "/api/auth/status", nil)
	var body map[string]bool
	decodeBody(t, w, &body)
	if body["registered"] {
		t.Error("registered = true before any account exists")
	}

	register(t, srv, "river", "abc123")

	w = doJSON(t, srv, "GET", "/api/auth/status", nil)
	decodeBody(t, w, &body)
	if !body["registered"] {
		t.Error("registered = false after register")
	}
}
