package services

import (
	"context"
	"errors"
	"log"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/RameshKadariya/AISolutionProject/internal/models"
	"github.com/RameshKadariya/AISolutionProject/internal/store"
)

// The demo pool owns ids 1 through 12; contact form submissions get ids from
// 13 up. Ids at or above the ceiling are legacy junk from an old generator
// and are dropped on load.
const (
	demoPoolMax   = 12
	userPoolMin   = 13
	userPoolLimit = 10000
)

const inquiryPageSize = 10

var inquiryStatuses = map[string]bool{
	models.StatusNew:        true,
	models.StatusInProgress: true,
	models.StatusContacted:  true,
	models.StatusClosed:     true,
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9\s\-().]{7,20}$`)
)

type InquiryStats struct {
	Total      int            `json:"total"`
	ThisMonth  int            `json:"thisMonth"`
	ThisWeek   int            `json:"thisWeek"`
	ByCountry  map[string]int `json:"byCountry"`
	ByIndustry map[string]int `json:"byIndustry"`
}

type InquiryQuery struct {
	Search   string
	Status   string
	Country  string
	Industry string
	SortBy   string
	SortDesc bool
	Page     int
}

type InquiryPage struct {
	Items      []models.Inquiry `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}

// InquiryService merges the fixed demo pool with contact form submissions
// and keeps derived stats. OnStats, when set, is called after any change
// that affects the numbers.
type InquiryService struct {
	Store   store.Store
	Now     func() time.Time
	OnStats func(InquiryStats)

	mu    sync.Mutex
	stats *cache.Cache
}

func NewInquiryService(s store.Store) *InquiryService {
	return &InquiryService{
		Store: s,
		Now:   time.Now,
		stats: cache.New(30*time.Second, time.Minute),
	}
}

// Load seeds the demo pool on first run and scrubs the user pool of ids
// outside the valid range.
func (s *InquiryService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.demoPool(ctx); err != nil {
		return WrapError(err, "load demo inquiries")
	}
	_, err := s.userPool(ctx)
	return WrapError(err, "load user inquiries")
}

func (s *InquiryService) demoPool(ctx context.Context) ([]models.Inquiry, error) {
	var items []models.Inquiry
	err := store.LoadJSON(ctx, s.Store, store.KeyDemoInquiries, &items)
	switch {
	case err == nil:
		return items, nil
	case errors.Is(err, store.ErrNotFound):
		items = seedInquiries(s.Now())
	case store.IsCorrupt(err):
		log.Printf("inquiries: %v, reseeding demo pool", err)
		items = seedInquiries(s.Now())
	default:
		return nil, err
	}
	if err := store.SaveJSON(ctx, s.Store, store.KeyDemoInquiries, items); err != nil {
		return nil, err
	}
	return items, nil
}

// userPool loads the contact form pool and drops records whose id falls
// outside [userPoolMin, userPoolLimit). The cleaned pool is written back
// whenever anything was removed.
func (s *InquiryService) userPool(ctx context.Context) ([]models.Inquiry, error) {
	var items []models.Inquiry
	err := store.LoadJSON(ctx, s.Store, store.KeyUserInquiries, &items)
	if errors.Is(err, store.ErrNotFound) {
		return []models.Inquiry{}, nil
	}
	if err != nil {
		return nil, err
	}
	cleaned := make([]models.Inquiry, 0, len(items))
	for _, item := range items {
		if item.ID >= userPoolMin && item.ID < userPoolLimit {
			cleaned = append(cleaned, item)
		}
	}
	if len(cleaned) != len(items) {
		log.Printf("inquiries: dropped %d records with out-of-range ids", len(items)-len(cleaned))
		if err := store.SaveJSON(ctx, s.Store, store.KeyUserInquiries, cleaned); err != nil {
			return nil, err
		}
	}
	return cleaned, nil
}

func (s *InquiryService) nextUserID(userItems []models.Inquiry) int {
	next := userPoolMin
	for _, item := range userItems {
		if item.ID >= next {
			next = item.ID + 1
		}
	}
	return next
}

// Submit validates a contact form payload, fills the defaults every new
// inquiry gets and appends it to the user pool.
func (s *InquiryService) Submit(ctx context.Context, in models.Inquiry) (models.Inquiry, error) {
	if err := validateInquiry(&in); err != nil {
		return models.Inquiry{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	pool, err := s.userPool(ctx)
	if err != nil {
		return models.Inquiry{}, err
	}
	in.ID = s.nextUserID(pool)
	in.Status = models.StatusNew
	if in.Industry == "" {
		in.Industry = "Technology"
	}
	in.Priority = "Medium"
	in.EstimatedValue = "$25,000"
	in.Date = s.Now().Format("2006-01-02")
	pool = append(pool, in)
	if err := store.SaveJSON(ctx, s.Store, store.KeyUserInquiries, pool); err != nil {
		return models.Inquiry{}, err
	}
	s.invalidate(ctx)
	return in, nil
}

// Aggregate merges both pools plus optional remote records. Remote records
// get fresh ids above everything already present. Duplicates by id keep the
// first occurrence; order is submission date descending, id descending on
// ties.
func (s *InquiryService) Aggregate(ctx context.Context, remote []models.Inquiry) ([]models.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.aggregateLocked(ctx, remote)
}

func (s *InquiryService) aggregateLocked(ctx context.Context, remote []models.Inquiry) ([]models.Inquiry, error) {
	demo, err := s.demoPool(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.userPool(ctx)
	if err != nil {
		return nil, err
	}
	merged := make([]models.Inquiry, 0, len(demo)+len(user)+len(remote))
	merged = append(merged, demo...)
	merged = append(merged, user...)

	maxID := 0
	for _, item := range merged {
		if item.ID > maxID {
			maxID = item.ID
		}
	}
	for _, item := range remote {
		maxID++
		item.ID = maxID
		if item.Status == "" {
			item.Status = models.StatusNew
		}
		if item.Date == "" {
			item.Date = s.Now().Format("2006-01-02")
		}
		merged = append(merged, item)
	}

	seen := map[int]bool{}
	items := make([]models.Inquiry, 0, len(merged))
	for _, item := range merged {
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		items = append(items, item)
	}
	sortInquiries(items)
	return items, nil
}

// Import persists remote records into the user pool and returns the merged
// view.
func (s *InquiryService) Import(ctx context.Context, remote []models.Inquiry) ([]models.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := s.aggregateLocked(ctx, remote)
	if err != nil {
		return nil, err
	}
	user := make([]models.Inquiry, 0, len(items))
	for _, item := range items {
		if item.ID >= userPoolMin && item.ID < userPoolLimit {
			user = append(user, item)
		}
	}
	if err := store.SaveJSON(ctx, s.Store, store.KeyUserInquiries, user); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return items, nil
}

func (s *InquiryService) Get(ctx context.Context, id int) (models.Inquiry, error) {
	items, err := s.Aggregate(ctx, nil)
	if err != nil {
		return models.Inquiry{}, err
	}
	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}
	return models.Inquiry{}, ErrNotFound("Inquiry not found")
}

// SetStatus updates one record and writes it back to whichever pool its id
// belongs to.
func (s *InquiryService) SetStatus(ctx context.Context, id int, status string) (models.Inquiry, error) {
	if !inquiryStatuses[status] {
		return models.Inquiry{}, ErrBadRequest("Invalid status")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := s.aggregateLocked(ctx, nil)
	if err != nil {
		return models.Inquiry{}, err
	}
	var updated models.Inquiry
	found := false
	demo := make([]models.Inquiry, 0, demoPoolMax)
	user := make([]models.Inquiry, 0, len(items))
	for _, item := range items {
		if item.ID == id {
			item.Status = status
			updated = item
			found = true
		}
		switch {
		case item.ID <= demoPoolMax:
			demo = append(demo, item)
		case item.ID < userPoolLimit:
			user = append(user, item)
		}
	}
	if !found {
		return models.Inquiry{}, ErrNotFound("Inquiry not found")
	}
	if err := store.SaveJSON(ctx, s.Store, store.KeyDemoInquiries, demo); err != nil {
		return models.Inquiry{}, err
	}
	if err := store.SaveJSON(ctx, s.Store, store.KeyUserInquiries, user); err != nil {
		return models.Inquiry{}, err
	}
	s.invalidate(ctx)
	return updated, nil
}

// List applies search, filters, sorting and pagination for the admin table.
func (s *InquiryService) List(ctx context.Context, q InquiryQuery) (InquiryPage, error) {
	items, err := s.Aggregate(ctx, nil)
	if err != nil {
		return InquiryPage{}, err
	}
	filtered := make([]models.Inquiry, 0, len(items))
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	for _, item := range items {
		if q.Status != "" && item.Status != q.Status {
			continue
		}
		if q.Country != "" && item.Country != q.Country {
			continue
		}
		if q.Industry != "" && item.Industry != q.Industry {
			continue
		}
		if needle != "" && !matchesSearch(item, needle) {
			continue
		}
		filtered = append(filtered, item)
	}
	if q.SortBy != "" {
		sortInquiriesBy(filtered, q.SortBy, q.SortDesc)
	}

	total := len(filtered)
	totalPages := (total + inquiryPageSize - 1) / inquiryPageSize
	if totalPages == 0 {
		totalPages = 1
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * inquiryPageSize
	end := start + inquiryPageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return InquiryPage{
		Items:      filtered[start:end],
		Total:      total,
		Page:       page,
		PageSize:   inquiryPageSize,
		TotalPages: totalPages,
	}, nil
}

// Stats recomputes the dashboard counters, cached briefly because the admin
// UI polls them.
func (s *InquiryService) Stats(ctx context.Context) (InquiryStats, error) {
	if cached, ok := s.stats.Get("stats"); ok {
		return cached.(InquiryStats), nil
	}
	items, err := s.Aggregate(ctx, nil)
	if err != nil {
		return InquiryStats{}, err
	}
	result := computeStats(items, s.Now())
	s.stats.Set("stats", result, cache.DefaultExpiration)
	return result, nil
}

func (s *InquiryService) invalidate(ctx context.Context) {
	s.stats.Delete("stats")
	if s.OnStats == nil {
		return
	}
	items, err := s.aggregateLocked(ctx, nil)
	if err != nil {
		return
	}
	s.OnStats(computeStats(items, s.Now()))
}

func computeStats(items []models.Inquiry, now time.Time) InquiryStats {
	result := InquiryStats{
		Total:      len(items),
		ByCountry:  map[string]int{},
		ByIndustry: map[string]int{},
	}
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	weekStart := startOfWeek(now)
	for _, item := range items {
		date, err := time.ParseInLocation("2006-01-02", item.Date, now.Location())
		if err == nil {
			if !date.Before(monthStart) {
				result.ThisMonth++
			}
			if !date.Before(weekStart) {
				result.ThisWeek++
			}
		}
		if item.Country != "" {
			result.ByCountry[item.Country]++
		}
		if item.Industry != "" {
			result.ByIndustry[item.Industry]++
		}
	}
	return result
}

// startOfWeek is the most recent Sunday at midnight local time.
func startOfWeek(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func matchesSearch(item models.Inquiry, needle string) bool {
	for _, field := range []string{item.Name, item.Email, item.Company, item.Country} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func sortInquiries(items []models.Inquiry) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Date != items[j].Date {
			return items[i].Date > items[j].Date
		}
		return items[i].ID > items[j].ID
	})
}

func sortInquiriesBy(items []models.Inquiry, field string, desc bool) {
	less := func(i, j int) bool { return false }
	switch field {
	case "name":
		less = func(i, j int) bool { return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name) }
	case "company":
		less = func(i, j int) bool { return strings.ToLower(items[i].Company) < strings.ToLower(items[j].Company) }
	case "country":
		less = func(i, j int) bool { return items[i].Country < items[j].Country }
	case "status":
		less = func(i, j int) bool { return items[i].Status < items[j].Status }
	case "date":
		less = func(i, j int) bool {
			if items[i].Date != items[j].Date {
				return items[i].Date < items[j].Date
			}
			return items[i].ID < items[j].ID
		}
	default:
		return
	}
	if desc {
		sort.SliceStable(items, func(i, j int) bool { return less(j, i) })
		return
	}
	sort.SliceStable(items, less)
}

func validateInquiry(in *models.Inquiry) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Company = strings.TrimSpace(in.Company)
	in.Country = strings.TrimSpace(in.Country)
	in.JobTitle = strings.TrimSpace(in.JobTitle)
	in.JobDetails = strings.TrimSpace(in.JobDetails)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Name == "" || in.Email == "" || in.Company == "" || in.Country == "" || in.JobTitle == "" {
		return ErrBadRequest("All required fields must be filled in")
	}
	if !emailPattern.MatchString(in.Email) {
		return ErrBadRequest("Please enter a valid email address")
	}
	if len(in.JobDetails) < 20 {
		return ErrBadRequest("Job details must be at least 20 characters")
	}
	if in.Phone != "" && !phonePattern.MatchString(in.Phone) {
		return ErrBadRequest("Please enter a valid phone number")
	}
	return nil
}
