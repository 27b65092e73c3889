// Package mood holds the fixed catalog of recordable moods and the rule
// that turns a day's moods into the companion's background gradient.
package mood

import (
	"fmt"
	"strings"
)

// Mood is one entry of the fixed catalog.
type Mood struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	FromColor string `json:"fromColor"`
	ToColor   string `json:"toColor"`
}

// Catalog lists the eight recordable moods, in display order.
var Catalog = []Mood{
	{ID: "joy", Title: "Joy", FromColor: "#fde047", ToColor: "#facc15"},
	{ID: "acceptance", Title: "Acceptance", FromColor: "#86efac", ToColor: "#4ade80"},
	{ID: "fear", Title: "Fear", FromColor: "#10b981", ToColor: "#059669"},
	{ID: "surprise", Title: "Surprise", FromColor: "#38bdf8", ToColor: "#0ea5e9"},
	{ID: "sadness", Title: "Sadness", FromColor: "#818cf8", ToColor: "#6366f1"},
	{ID: "disgust", Title: "Disgust", FromColor: "#a855f7", ToColor: "#9333ea"},
	{ID: "anger", Title: "Anger", FromColor: "#fb7185", ToColor: "#f43f5e"},
	{ID: "anticipation", Title: "Anticipation", FromColor: "#fb923c", ToColor: "#f97316"},
}

var byID = func() map[string]Mood {
	m := make(map[string]Mood, len(Catalog))
	for _, mood := range Catalog {
		m[mood.ID] = mood
	}
	return m
}()

// Lookup returns the mood for an id.
func Lookup(id string) (Mood, bool) {
	m, ok := byID[id]
	return m, ok
}

// Titles maps mood ids to their display titles, skipping unknown ids.
func Titles(ids []string) []string {
	var titles []string
	for _, id := range ids {
		if m, ok := byID[id]; ok {
			titles = append(titles, m.Title)
		}
	}
	return titles
}

// Background derives the companion background gradient from a day's
// recorded moods. A single mood uses its own from/to pair; several moods
// blend their to-colors. No known moods means no background.
func Background(ids []string) string {
	var colors []string
	switch {
	case len(ids) == 1:
		if m, ok := byID[ids[0]]; ok {
			colors = []string{m.FromColor, m.ToColor}
		}
	case len(ids) > 1:
		for _, id := range ids {
			if m, ok := byID[id]; ok {
				colors = append(colors, m.ToColor)
			}
		}
	}
	if len(colors) == 0 {
		return ""
	}
	return fmt.Sprintf("linear-gradient(to bottom right, %s)", strings.Join(colors, ", "))
}
