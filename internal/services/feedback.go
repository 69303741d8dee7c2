package services

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/RameshKadariya/AISolutionProject/internal/models"
	"github.com/RameshKadariya/AISolutionProject/internal/store"
)

var feedbackStatuses = map[string]bool{
	models.StatusNew:       true,
	models.StatusReviewed:  true,
	models.StatusResponded: true,
	models.StatusClosed:    true,
}

type FeedbackService struct {
	Store store.Store
	Now   func() time.Time

	mu sync.Mutex
}

func NewFeedbackService(s store.Store) *FeedbackService {
	return &FeedbackService{Store: s, Now: time.Now}
}

func (f *FeedbackService) load(ctx context.Context) ([]models.Feedback, error) {
	var items []models.Feedback
	err := store.LoadJSON(ctx, f.Store, store.KeyFeedback, &items)
	switch {
	case err == nil:
		return items, nil
	case errors.Is(err, store.ErrNotFound):
		items = seedFeedback(f.Now())
	case store.IsCorrupt(err):
		log.Printf("feedback: %v, reseeding", err)
		items = seedFeedback(f.Now())
	default:
		return nil, err
	}
	if err := store.SaveJSON(ctx, f.Store, store.KeyFeedback, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (f *FeedbackService) Load(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, err := f.load(ctx)
	return err
}

func (f *FeedbackService) Submit(ctx context.Context, in models.Feedback) (models.Feedback, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Feedback = strings.TrimSpace(in.Feedback)
	if in.Name == "" || in.Email == "" || in.Feedback == "" {
		return models.Feedback{}, ErrBadRequest("Name, email and feedback are required")
	}
	if !emailPattern.MatchString(in.Email) {
		return models.Feedback{}, ErrBadRequest("Please enter a valid email address")
	}
	if in.OverallRating < 1 || in.OverallRating > 5 || in.Recommendation < 1 || in.Recommendation > 5 {
		return models.Feedback{}, ErrBadRequest("Ratings must be between 1 and 5")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	items, err := f.load(ctx)
	if err != nil {
		return models.Feedback{}, err
	}
	nextID := 1
	for _, item := range items {
		if item.ID >= nextID {
			nextID = item.ID + 1
		}
	}
	in.ID = nextID
	in.Status = models.StatusNew
	in.Date = f.Now().Format("2006-01-02")
	items = append(items, in)
	if err := store.SaveJSON(ctx, f.Store, store.KeyFeedback, items); err != nil {
		return models.Feedback{}, err
	}
	return in, nil
}

func (f *FeedbackService) List(ctx context.Context) ([]models.Feedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items, err := f.load(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Date != items[j].Date {
			return items[i].Date > items[j].Date
		}
		return items[i].ID > items[j].ID
	})
	return items, nil
}

func (f *FeedbackService) SetStatus(ctx context.Context, id int, status string) (models.Feedback, error) {
	if !feedbackStatuses[status] {
		return models.Feedback{}, ErrBadRequest("Invalid status")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	items, err := f.load(ctx)
	if err != nil {
		return models.Feedback{}, err
	}
	for i := range items {
		if items[i].ID == id {
			items[i].Status = status
			if err := store.SaveJSON(ctx, f.Store, store.KeyFeedback, items); err != nil {
				return models.Feedback{}, err
			}
			return items[i], nil
		}
	}
	return models.Feedback{}, ErrNotFound("Feedback not found")
}

func seedFeedback(now time.Time) []models.Feedback {
	base := []models.Feedback{
		{Name: "David Miller", Email: "d.miller@northtech.co.uk", Company: "NorthTech", ServiceUsed: "Virtual Assistant", OverallRating: 5, Recommendation: 5, Feedback: "The assistant handles most of our support tickets now. Excellent work from start to finish."},
		{Name: "Sophie Laurent", Email: "sophie@lyonretail.fr", Company: "Lyon Retail", ServiceUsed: "Prototyping", OverallRating: 4, Recommendation: 5, Feedback: "The two-week prototype gave us exactly the clarity we needed before committing budget."},
		{Name: "Tom Barker", Email: "tom.barker@barkerlogistics.com", Company: "Barker Logistics", ServiceUsed: "Consulting", OverallRating: 5, Recommendation: 4, Feedback: "Clear advice, no jargon, and a realistic roadmap. Would work with them again."},
		{Name: "Nina Petrova", Email: "nina@balticmedia.lv", Company: "Baltic Media", ServiceUsed: "Virtual Assistant", OverallRating: 4, Recommendation: 4, Feedback: "Good results overall. Setup took a little longer than planned but support was responsive."},
		{Name: "Carlos Mendez", Email: "carlos@mendezgroup.mx", Company: "Mendez Group", ServiceUsed: "Prototyping", OverallRating: 5, Recommendation: 5, Feedback: "Impressive turnaround. The demo convinced our board in a single meeting."},
		{Name: "Aisha Okafor", Email: "aisha@lagosfintech.ng", Company: "Lagos FinTech", ServiceUsed: "Consulting", OverallRating: 4, Recommendation: 5, Feedback: "They understood our constraints and proposed something we could actually afford."},
		{Name: "Henrik Larsen", Email: "henrik@nordicfoods.dk", Company: "Nordic Foods", ServiceUsed: "Virtual Assistant", OverallRating: 3, Recommendation: 3, Feedback: "Decent outcome though the first iteration missed some of our edge cases."},
		{Name: "Grace Kim", Email: "grace.kim@seoulsoft.kr", Company: "SeoulSoft", ServiceUsed: "Prototyping", OverallRating: 5, Recommendation: 5, Feedback: "Fast, professional and the handover documentation was genuinely useful."},
	}
	items := make([]models.Feedback, len(base))
	for i, item := range base {
		item.ID = i + 1
		item.Status = models.StatusNew
		item.Date = now.AddDate(0, 0, -(i*9 + 3)).Format("2006-01-02")
		items[i] = item
	}
	return items
}
