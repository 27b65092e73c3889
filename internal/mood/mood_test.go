package mood

import (
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	m, ok := Lookup("joy")
	if !ok {
		t.Fatal("joy not found")
	}
	if m.Title != "Joy" {
		t.Errorf("Title = %q, want Joy", m.Title)
	}

	if _, ok := Lookup("nonsense"); ok {
		t.Error("expected unknown mood to miss")
	}
}

func TestTitlesSkipsUnknown(t *testing.T) {
	titles := Titles([]string{"joy", "bogus", "anger"})
	if len(titles) != 2 || titles[0] != "Joy" || titles[1] != "Anger" {
		t.Errorf("Titles = %v, want [Joy Anger]", titles)
	}
}

func TestBackground(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want []string // substrings expected in the gradient
	}{
		{"none", nil, nil},
		{"unknown only", []string{"bogus"}, nil},
		{"single uses from and to", []string{"joy"}, []string{"#fde047", "#facc15"}},
		{"several blend to-colors", []string{"joy", "anger"}, []string{"#facc15", "#f43f5e"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Background(tt.ids)
			if tt.want == nil {
				if got != "" {
					t.Errorf("Background = %q, want empty", got)
				}
				return
			}
			if !strings.HasPrefix(got, "linear-gradient(") {
				t.Errorf("Background = %q, want gradient", got)
			}
			for _, sub := range tt.want {
				if !strings.Contains(got, sub) {
					t.Errorf("Background = %q, missing %q", got, sub)
				}
			}
		})
	}
}
