package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
)

type LoginRequest struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

func (s *Server) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	user := strings.TrimSpace(req.User)
	if user == "" || req.Password == "" {
		WriteError(w, http.StatusBadRequest, "User and password are required")
		return
	}
	result, err := s.Guard.Login(r.Context(), user, req.Password)
	writeResult(w, err, http.StatusOK, result)
}

func (s *Server) AdminLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.Guard.Logout(r.Context(), CurrentUser(r)); err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// AdminPing extends the session idle window; the middleware already touched
// the session, so this just reports it back.
func (s *Server) AdminPing(w http.ResponseWriter, r *http.Request) {
	session, err := s.Guard.Touch(r.Context(), CurrentUser(r))
	writeResult(w, err, http.StatusOK, session)
}
