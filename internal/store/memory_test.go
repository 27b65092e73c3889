package store

import (
	"testing"
)

func TestCompanionMemoryRoundtrip(t *testing.T) {
	db := testDB(t)

	got, err := db.GetCompanionMemory("2026-03-09")
	if err != nil {
		t.Fatalf("GetCompanionMemory: %v", err)
	}
	if got != nil {
		t.Fatalf("memory before save = %+v, want nil", got)
	}

	bg := "linear-gradient(to bottom right, #fde047, #facc15)"
	if err := db.SaveCompanionMemory(bg, "2026-03-09"); err != nil {
		t.Fatalf("SaveCompanionMemory: %v", err)
	}

	got, err = db.GetCompanionMemory("2026-03-09")
	if err != nil {
		t.Fatalf("GetCompanionMemory: %v", err)
	}
	if got == nil || got.Background != bg {
		t.Errorf("memory = %+v, want background %q", got, bg)
	}
}

func TestCompanionMemoryGoesStale(t *testing.T) {
	db := testDB(t)

	db.SaveCompanionMemory("linear-gradient(to bottom right, #6366f1)", "2026-03-09")

	got, err := db.GetCompanionMemory("2026-03-10")
	if err != nil {
		t.Fatalf("GetCompanionMemory: %v", err)
	}
	if got != nil {
		t.Errorf("stale memory surfaced: %+v", got)
	}

	// A save for the new day replaces the single slot.
	db.SaveCompanionMemory("linear-gradient(to bottom right, #f43f5e)", "2026-03-10")
	got, _ = db.GetCompanionMemory("2026-03-10")
	if got == nil || got.Date != "2026-03-10" {
		t.Errorf("memory after resave = %+v", got)
	}
}

func TestSettingsRoundtrip(t *testing.T) {
	db := testDB(t)

	v, err := db.GetSetting("hide_tooltip_vitality")
	if err != nil {
		t.Fatalf("GetSetting: %v", err)
	}
	if v != "" {
		t.Errorf("unset setting = %q, want empty", v)
	}

	if err := db.SetSetting("hide_tooltip_vitality", "true"); err != nil {
		t.Fatalf("SetSetting: %v", err)
	}
	if err := db.SetSetting("hide_tooltip_vitality", "false"); err != nil {
		t.Fatalf("SetSetting again: %v", err)
	}

	v, _ = db.GetSetting("hide_tooltip_vitality")
	if v != "false" {
		t.Errorf("setting = %q, want false", v)
	}
}

func TestUsers(t *testing.T) {
	db := testDB(t)

	n, err := db.CountUsers()
	if err != nil {
		t.Fatalf("CountUsers: %v", err)
	}
	if n != 0 {
		t.Fatalf("CountUsers = %d, want 0", n)
	}

	if _, err := db.CreateUser("river", "$2a$10$fakehash"); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if _, err := db.CreateUser("river", "$2a$10$otherhash"); err == nil {
		t.Error("duplicate username should fail")
	}

	u, err := db.GetUser("river")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if u == nil || u.PasswordHash != "$2a$10$fakehash" {
		t.Errorf("user = %+v", u)
	}

	missing, err := db.GetUser("nobody")
	if err != nil {
		t.Fatalf("GetUser missing: %v", err)
	}
	if missing != nil {
		t.Errorf("missing user = %+v, want nil", missing)
	}
}
