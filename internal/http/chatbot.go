package httpapi

import (
	"encoding/json"
	"net/http"
	"time"
)

type ChatMessageRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id"`
	UserID         string `json:"user_id"`
}

func (s *Server) ChatMessage(w http.ResponseWriter, r *http.Request) {
	var req ChatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	reply, err := s.Chatbot.Reply(req.Message, req.ConversationID, req.UserID)
	writeResult(w, err, http.StatusOK, reply)
}

func (s *Server) ChatHealth(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"service":   "chatbot",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) ChatModels(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]interface{}{"models": s.Chatbot.Models()})
}
