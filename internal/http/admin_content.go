package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RameshKadariya/AISolutionProject/internal/models"
)

func (s *Server) AdminArticles(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, s.Content.Articles())
}

func (s *Server) ReplaceArticles(w http.ResponseWriter, r *http.Request) {
	var items []models.Article
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	err := s.Content.ReplaceArticles(r.Context(), items)
	writeResult(w, err, http.StatusOK, s.Content.Articles())
}

func (s *Server) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var item models.Article
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	created, err := s.Content.CreateArticle(r.Context(), item)
	writeResult(w, err, http.StatusCreated, created)
}

func (s *Server) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	id := parseInt(chi.URLParam(r, "id"), 0)
	var item models.Article
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	item.ID = id
	updated, err := s.Content.UpdateArticle(r.Context(), item)
	writeResult(w, err, http.StatusOK, updated)
}

func (s *Server) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id := parseInt(chi.URLParam(r, "id"), 0)
	err := s.Content.DeleteArticle(r.Context(), id)
	writeResult(w, err, http.StatusOK, map[string]string{"message": "Article deleted"})
}

func (s *Server) AdminGallery(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, s.Content.Gallery())
}

func (s *Server) ReplaceGallery(w http.ResponseWriter, r *http.Request) {
	var items []models.GalleryEvent
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	err := s.Content.ReplaceGallery(r.Context(), items)
	writeResult(w, err, http.StatusOK, s.Content.Gallery())
}

func (s *Server) CreateGalleryEvent(w http.ResponseWriter, r *http.Request) {
	var item models.GalleryEvent
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	created, err := s.Content.CreateGalleryEvent(r.Context(), item)
	writeResult(w, err, http.StatusCreated, created)
}

func (s *Server) UpdateGalleryEvent(w http.ResponseWriter, r *http.Request) {
	id := parseInt(chi.URLParam(r, "id"), 0)
	var item models.GalleryEvent
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	item.ID = id
	updated, err := s.Content.UpdateGalleryEvent(r.Context(), item)
	writeResult(w, err, http.StatusOK, updated)
}

func (s *Server) DeleteGalleryEvent(w http.ResponseWriter, r *http.Request) {
	id := parseInt(chi.URLParam(r, "id"), 0)
	err := s.Content.DeleteGalleryEvent(r.Context(), id)
	writeResult(w, err, http.StatusOK, map[string]string{"message": "Gallery event deleted"})
}

func (s *Server) AdminEvents(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, s.Content.Events())
}

func (s *Server) ReplaceEvents(w http.ResponseWriter, r *http.Request) {
	var items []models.UpcomingEvent
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	err := s.Content.ReplaceEvents(r.Context(), items)
	writeResult(w, err, http.StatusOK, s.Content.Events())
}

func (s *Server) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var item models.UpcomingEvent
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	created, err := s.Content.CreateEvent(r.Context(), item)
	writeResult(w, err, http.StatusCreated, created)
}

func (s *Server) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id := parseInt(chi.URLParam(r, "id"), 0)
	var item models.UpcomingEvent
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	item.ID = id
	updated, err := s.Content.UpdateEvent(r.Context(), item)
	writeResult(w, err, http.StatusOK, updated)
}

func (s *Server) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := parseInt(chi.URLParam(r, "id"), 0)
	err := s.Content.DeleteEvent(r.Context(), id)
	writeResult(w, err, http.StatusOK, map[string]string{"message": "Event deleted"})
}
