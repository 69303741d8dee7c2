package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RameshKadariya/AISolutionProject/internal/models"
	"github.com/RameshKadariya/AISolutionProject/internal/services"
)

func (s *Server) ListInquiries(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, err := s.Inquiries.List(r.Context(), services.InquiryQuery{
		Search:   query.Get("search"),
		Status:   query.Get("status"),
		Country:  query.Get("country"),
		Industry: query.Get("industry"),
		SortBy:   query.Get("sortBy"),
		SortDesc: query.Get("sortDir") == "desc",
		Page:     parseInt(query.Get("page"), 1),
	})
	writeResult(w, err, http.StatusOK, page)
}

func (s *Server) InquiryStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.Inquiries.Stats(r.Context())
	writeResult(w, err, http.StatusOK, stats)
}

func (s *Server) InquiryDetail(w http.ResponseWriter, r *http.Request) {
	id := parseInt(chi.URLParam(r, "id"), 0)
	item, err := s.Inquiries.Get(r.Context(), id)
	writeResult(w, err, http.StatusOK, item)
}

type InquiryStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) InquiryStatus(w http.ResponseWriter, r *http.Request) {
	id := parseInt(chi.URLParam(r, "id"), 0)
	var req InquiryStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	item, err := s.Inquiries.SetStatus(r.Context(), id, req.Status)
	writeResult(w, err, http.StatusOK, item)
}

// ImportInquiries merges records fetched from an external source into the
// pool, assigning fresh ids.
func (s *Server) ImportInquiries(w http.ResponseWriter, r *http.Request) {
	var remote []models.Inquiry
	if err := json.NewDecoder(r.Body).Decode(&remote); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	items, err := s.Inquiries.Import(r.Context(), remote)
	writeResult(w, err, http.StatusOK, items)
}

func (s *Server) ListFeedback(w http.ResponseWriter, r *http.Request) {
	items, err := s.Feedback.List(r.Context())
	writeResult(w, err, http.StatusOK, items)
}

func (s *Server) FeedbackStatus(w http.ResponseWriter, r *http.Request) {
	id := parseInt(chi.URLParam(r, "id"), 0)
	var req InquiryStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	item, err := s.Feedback.SetStatus(r.Context(), id, req.Status)
	writeResult(w, err, http.StatusOK, item)
}
