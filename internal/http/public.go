package httpapi

import (
	"net/http"
	"time"
)

const serviceVersion = "1.0.0"

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":        "ok",
		"service":       "ai-solution-backend",
		"version":       serviceVersion,
		"uptimeSeconds": int64(time.Since(s.StartedAt).Seconds()),
		"endpoints": map[string]string{
			"contact":  "/api/contact",
			"chatbot":  "/api/chatbot/message",
			"articles": "/api/public/articles",
			"gallery":  "/api/public/gallery",
			"events":   "/api/public/events",
			"feedback": "/api/feedback",
		},
	})
}

func (s *Server) PublicArticles(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, s.Content.PublishedArticles())
}

func (s *Server) PublicGallery(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, s.Content.ActiveGallery())
}

func (s *Server) PublicEvents(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, s.Content.UpcomingEvents())
}
