package httpapi

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/RameshKadariya/AISolutionProject/internal/config"
	"github.com/RameshKadariya/AISolutionProject/internal/models"
	"github.com/RameshKadariya/AISolutionProject/internal/services"
	"github.com/RameshKadariya/AISolutionProject/internal/store"
)

type Server struct {
	Store     store.Store
	Config    config.Config
	Tokens    services.TokenService
	Guard     *services.SessionGuard
	Content   *services.ContentRepository
	Inquiries *services.InquiryService
	Feedback  *services.FeedbackService
	Chatbot   *services.ChatbotService
	Hub       *services.EventHub
	StartedAt time.Time

	// Contact submissions received since startup. Deliberately volatile,
	// the durable copy lives in the inquiry pool.
	contactMu  sync.Mutex
	contactLog []models.Inquiry
}

func NewServer(s store.Store, cfg config.Config, hub *services.EventHub) *Server {
	tokens := services.TokenService{
		Secret:    []byte(cfg.JWTSecret),
		Issuer:    cfg.JWTIssuer,
		AccessTTL: time.Duration(cfg.SessionTTLSeconds) * time.Second,
	}
	guard := services.NewSessionGuard(
		s, tokens, cfg.AdminCredentials,
		time.Duration(cfg.SessionTTLSeconds)*time.Second,
		time.Duration(cfg.IdleTTLSeconds)*time.Second,
	)
	inquiries := services.NewInquiryService(s)
	inquiries.OnStats = func(stats services.InquiryStats) {
		hub.Broadcast(services.Event{Type: "inquiryStats", Data: stats})
	}
	return &Server{
		Store:     s,
		Config:    cfg,
		Tokens:    tokens,
		Guard:     guard,
		Content:   services.NewContentRepository(s),
		Inquiries: inquiries,
		Feedback:  services.NewFeedbackService(s),
		Chatbot:   services.NewChatbotService(),
		Hub:       hub,
		StartedAt: time.Now(),
	}
}

// Bootstrap loads the content collections and seeds first-run data.
func (s *Server) Bootstrap(ctx context.Context) error {
	if err := s.Content.Load(ctx); err != nil {
		return err
	}
	if err := s.Inquiries.Load(ctx); err != nil {
		return err
	}
	return s.Feedback.Load(ctx)
}

func (s *Server) Router(ctx context.Context) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", s.Health)
		api.Post("/contact", s.SubmitContact)
		api.Get("/contact", s.ListContact)
		api.Post("/feedback", s.SubmitFeedback)

		api.Route("/chatbot", func(bot chi.Router) {
			bot.Post("/message", s.ChatMessage)
			bot.Get("/health", s.ChatHealth)
			bot.Get("/models", s.ChatModels)
		})

		api.Route("/public", func(pub chi.Router) {
			pub.Get("/articles", s.PublicArticles)
			pub.Get("/gallery", s.PublicGallery)
			pub.Get("/events", s.PublicEvents)
		})

		api.Route("/admin", func(admin chi.Router) {
			admin.Post("/login", s.AdminLogin)

			admin.Group(func(auth chi.Router) {
				auth.Use(s.WithAdmin)
				auth.Post("/logout", s.AdminLogout)
				auth.Post("/ping", s.AdminPing)

				auth.Route("/content", func(content chi.Router) {
					content.Get("/articles", s.AdminArticles)
					content.Put("/articles", s.ReplaceArticles)
					content.Post("/articles", s.CreateArticle)
					content.Put("/articles/{id}", s.UpdateArticle)
					content.Delete("/articles/{id}", s.DeleteArticle)

					content.Get("/gallery", s.AdminGallery)
					content.Put("/gallery", s.ReplaceGallery)
					content.Post("/gallery", s.CreateGalleryEvent)
					content.Put("/gallery/{id}", s.UpdateGalleryEvent)
					content.Delete("/gallery/{id}", s.DeleteGalleryEvent)

					content.Get("/events", s.AdminEvents)
					content.Put("/events", s.ReplaceEvents)
					content.Post("/events", s.CreateEvent)
					content.Put("/events/{id}", s.UpdateEvent)
					content.Delete("/events/{id}", s.DeleteEvent)
				})

				auth.Route("/inquiries", func(inq chi.Router) {
					inq.Get("/", s.ListInquiries)
					inq.Get("/stats", s.InquiryStats)
					inq.Post("/import", s.ImportInquiries)
					inq.Get("/{id}", s.InquiryDetail)
					inq.Put("/{id}/status", s.InquiryStatus)
				})

				auth.Route("/feedback", func(fb chi.Router) {
					fb.Get("/", s.ListFeedback)
					fb.Put("/{id}/status", s.FeedbackStatus)
				})

				auth.Get("/metrics/history", s.MetricsHistory)
			})
		})
	})

	r.Get("/ws/metrics", s.MetricsSocket)
	return r
}
