package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/li2990555-pixel/patapal11111/internal/llm"
	"github.com/li2990555-pixel/patapal11111/internal/store"
)

// Static lines used when the collaborator fails or returns nothing.
const (
	chatFallback     = "Pata is a little tired and can't reply right now, but I heard every word you said."
	chatLostForWords = "Pata doesn't quite know what to say..."
)

func welcomeMessage(username string) string {
	if username == "" {
		username = "friend"
	}
	return fmt.Sprintf("Hello %s! My favourite thing is helping you practice memorization. And if you ever want to chat, or have something on your mind, I'm a great listener too.", username)
}

// handleChatLog returns the chat history, seeding the welcome line on the
// very first visit.
func (s *Server) handleChatLog(w http.ResponseWriter, r *http.Request) {
	msgs, err := s.db.ListChatMessages()
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if len(msgs) == 0 {
		welcome, err := s.db.AppendChatMessage(store.AuthorPata, welcomeMessage(r.URL.Query().Get("user")))
		if err != nil {
			s.respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		msgs = []store.ChatMessage{*welcome}
	}

	s.respond(w, http.StatusOK, map[string]any{"messages": msgs})
}

// handleChat appends the user's message, opens a pata turn tagged with a
// fresh generation id, and streams the reply as SSE while persisting each
// fragment onto that turn. Addressing fragments by generation id means a
// reply that finishes late can never land on a newer turn.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid json")
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		s.respondError(w, http.StatusBadRequest, "message is required")
		return
	}

	history, err := s.chatHistory()
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if _, err := s.db.AppendChatMessage(store.AuthorUser, req.Message); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	generationID := uuid.NewString()
	if _, err := s.db.BeginPataReply(generationID); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher, _ := w.(http.Flusher)

	emit := func(text string) {
		payload, _ := json.Marshal(map[string]string{"text": text})
		fmt.Fprintf(w, "data: %s\n\n", payload)
		if flusher != nil {
			flusher.Flush()
		}
	}

	if s.llm == nil {
		s.finishReply(generationID, chatFallback, emit)
		return
	}

	resp, err := s.llm.StreamChat(r.Context(), llm.CompanionSystem, history, req.Message, func(chunk string) {
		if err := s.db.AppendReplyChunk(generationID, chunk); err != nil {
			s.logger.Warn("persist reply chunk", "err", err)
		}
		emit(chunk)
	})
	if err != nil {
		s.logger.Warn("chat stream failed", "err", err)
		s.finishReply(generationID, chatFallback, emit)
		return
	}
	if strings.TrimSpace(resp.Content) == "" {
		s.finishReply(generationID, chatLostForWords, emit)
		return
	}

	fmt.Fprint(w, "data: [DONE]\n\n")
	if flusher != nil {
		flusher.Flush()
	}
}

func (s *Server) finishReply(generationID, text string, emit func(string)) {
	if err := s.db.SetReplyContent(generationID, text); err != nil {
		s.logger.Warn("set reply content", "err", err)
	}
	emit(text)
}

// chatHistory converts the persisted log into role-tagged turns for the
// collaborator. The seeded welcome line and unfinished pata turns carry no
// useful signal and are skipped: only user turns and completed generated
// replies count.
func (s *Server) chatHistory() ([]llm.Message, error) {
	msgs, err := s.db.ListChatMessages()
	if err != nil {
		return nil, err
	}

	var history []llm.Message
	for _, m := range msgs {
		switch {
		case m.Sender == store.AuthorUser:
			history = append(history, llm.Message{Role: "user", Text: m.Message})
		case m.GenerationID != "" && m.Message != "":
			history = append(history, llm.Message{Role: "model", Text: m.Message})
		}
	}
	return history, nil
}
