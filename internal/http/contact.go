package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/RameshKadariya/AISolutionProject/internal/models"
)

type ContactRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Company    string `json:"company"`
	Country    string `json:"country"`
	JobTitle   string `json:"jobTitle"`
	JobDetails string `json:"jobDetails"`
	Industry   string `json:"industry"`
}

func (s *Server) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	inquiry, err := s.Inquiries.Submit(r.Context(), models.Inquiry{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Company:    req.Company,
		Country:    req.Country,
		JobTitle:   req.JobTitle,
		JobDetails: req.JobDetails,
		Industry:   req.Industry,
	})
	if mapServiceError(w, err) {
		return
	}
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	s.contactMu.Lock()
	s.contactLog = append(s.contactLog, inquiry)
	s.contactMu.Unlock()
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Contact form submitted successfully"})
}

// ListContact returns the submissions received since the process started.
func (s *Server) ListContact(w http.ResponseWriter, r *http.Request) {
	s.contactMu.Lock()
	items := append([]models.Inquiry{}, s.contactLog...)
	s.contactMu.Unlock()
	WriteJSON(w, http.StatusOK, items)
}

func (s *Server) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req models.Feedback
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	item, err := s.Feedback.Submit(r.Context(), req)
	writeResult(w, err, http.StatusOK, item)
}
