package services

import (
	"context"
	"errors"
	"log"
	"net/url"
	"strings"
	"sync"

	"github.com/RameshKadariya/AISolutionProject/internal/models"
	"github.com/RameshKadariya/AISolutionProject/internal/store"
)

// Collection names accepted by the content API.
const (
	CollectionArticles = "articles"
	CollectionGallery  = "gallery"
	CollectionEvents   = "events"
)

var articleStatuses = map[string]bool{
	models.ArticleDraft:     true,
	models.ArticlePublished: true,
	models.ArticleArchived:  true,
}

var galleryStatuses = map[string]bool{
	models.GalleryActive: true,
	models.GalleryHidden: true,
}

var eventStatuses = map[string]bool{
	models.EventUpcoming:  true,
	models.EventOngoing:   true,
	models.EventCompleted: true,
	models.EventCancelled: true,
}

// ContentRepository owns the three editable site collections. All reads are
// served from memory; every mutation rewrites the whole collection in the
// store (last write wins, no partial updates).
type ContentRepository struct {
	Store store.Store

	mu       sync.RWMutex
	articles []models.Article
	gallery  []models.GalleryEvent
	events   []models.UpcomingEvent
	nextID   map[string]int
}

func NewContentRepository(s store.Store) *ContentRepository {
	return &ContentRepository{Store: s, nextID: map[string]int{}}
}

// Load reads the collections from the store. A key that was never written is
// seeded with defaults; an explicitly emptied collection stays empty. A value
// that no longer decodes is reseeded and reported, never papered over.
func (c *ContentRepository) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := loadCollection(ctx, c.Store, store.KeyArticles, &c.articles, seedArticles); err != nil {
		return WrapError(err, "load articles")
	}
	if err := loadCollection(ctx, c.Store, store.KeyGallery, &c.gallery, seedGallery); err != nil {
		return WrapError(err, "load gallery")
	}
	if err := loadCollection(ctx, c.Store, store.KeyEvents, &c.events, seedEvents); err != nil {
		return WrapError(err, "load events")
	}

	counters := map[string]int{}
	err := store.LoadJSON(ctx, c.Store, store.KeyContentNextID, &counters)
	if err != nil && !errors.Is(err, store.ErrNotFound) && !store.IsCorrupt(err) {
		return err
	}
	c.nextID = counters
	if c.nextID == nil {
		c.nextID = map[string]int{}
	}
	c.bumpCounter(CollectionArticles, maxArticleID(c.articles))
	c.bumpCounter(CollectionGallery, maxGalleryID(c.gallery))
	c.bumpCounter(CollectionEvents, maxEventID(c.events))
	return store.SaveJSON(ctx, c.Store, store.KeyContentNextID, c.nextID)
}

func loadCollection[T any](ctx context.Context, s store.Store, key string, dst *[]T, seed func() []T) error {
	var items []T
	err := store.LoadJSON(ctx, s, key, &items)
	switch {
	case err == nil:
		if items == nil {
			items = []T{}
		}
		*dst = items
		return nil
	case errors.Is(err, store.ErrNotFound):
		*dst = seed()
		return store.SaveJSON(ctx, s, key, *dst)
	case store.IsCorrupt(err):
		log.Printf("content: %v, reseeding", err)
		*dst = seed()
		return store.SaveJSON(ctx, s, key, *dst)
	default:
		return err
	}
}

// bumpCounter keeps the allocator ahead of any id already in use so ids are
// never reissued even if the counter document was lost.
func (c *ContentRepository) bumpCounter(collection string, maxID int) {
	if c.nextID[collection] <= maxID {
		c.nextID[collection] = maxID + 1
	}
	if c.nextID[collection] < 1 {
		c.nextID[collection] = 1
	}
}

func (c *ContentRepository) allocID(ctx context.Context, collection string) (int, error) {
	id := c.nextID[collection]
	c.nextID[collection] = id + 1
	if err := store.SaveJSON(ctx, c.Store, store.KeyContentNextID, c.nextID); err != nil {
		return 0, err
	}
	return id, nil
}

func (c *ContentRepository) Articles() []models.Article {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Article{}, c.articles...)
}

func (c *ContentRepository) Gallery() []models.GalleryEvent {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.GalleryEvent{}, c.gallery...)
}

func (c *ContentRepository) Events() []models.UpcomingEvent {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.UpcomingEvent{}, c.events...)
}

// PublishedArticles is the public site view.
func (c *ContentRepository) PublishedArticles() []models.Article {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items := make([]models.Article, 0, len(c.articles))
	for _, a := range c.articles {
		if a.Status == models.ArticlePublished {
			items = append(items, a)
		}
	}
	return items
}

func (c *ContentRepository) ActiveGallery() []models.GalleryEvent {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items := make([]models.GalleryEvent, 0, len(c.gallery))
	for _, g := range c.gallery {
		if g.Status == models.GalleryActive {
			items = append(items, g)
		}
	}
	return items
}

func (c *ContentRepository) UpcomingEvents() []models.UpcomingEvent {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items := make([]models.UpcomingEvent, 0, len(c.events))
	for _, e := range c.events {
		if e.Status == models.EventUpcoming || e.Status == models.EventOngoing {
			items = append(items, e)
		}
	}
	return items
}

// ReplaceArticles overwrites the whole collection in one write.
func (c *ContentRepository) ReplaceArticles(ctx context.Context, items []models.Article) error {
	for i := range items {
		if err := validateArticle(&items[i]); err != nil {
			return err
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if items == nil {
		items = []models.Article{}
	}
	if err := store.SaveJSON(ctx, c.Store, store.KeyArticles, items); err != nil {
		return err
	}
	c.articles = items
	c.bumpCounter(CollectionArticles, maxArticleID(items))
	return store.SaveJSON(ctx, c.Store, store.KeyContentNextID, c.nextID)
}

func (c *ContentRepository) ReplaceGallery(ctx context.Context, items []models.GalleryEvent) error {
	for i := range items {
		if err := validateGalleryEvent(&items[i]); err != nil {
			return err
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if items == nil {
		items = []models.GalleryEvent{}
	}
	if err := store.SaveJSON(ctx, c.Store, store.KeyGallery, items); err != nil {
		return err
	}
	c.gallery = items
	c.bumpCounter(CollectionGallery, maxGalleryID(items))
	return store.SaveJSON(ctx, c.Store, store.KeyContentNextID, c.nextID)
}

func (c *ContentRepository) ReplaceEvents(ctx context.Context, items []models.UpcomingEvent) error {
	for i := range items {
		if err := validateUpcomingEvent(&items[i]); err != nil {
			return err
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if items == nil {
		items = []models.UpcomingEvent{}
	}
	if err := store.SaveJSON(ctx, c.Store, store.KeyEvents, items); err != nil {
		return err
	}
	c.events = items
	c.bumpCounter(CollectionEvents, maxEventID(items))
	return store.SaveJSON(ctx, c.Store, store.KeyContentNextID, c.nextID)
}

func (c *ContentRepository) CreateArticle(ctx context.Context, item models.Article) (models.Article, error) {
	if err := validateArticle(&item); err != nil {
		return models.Article{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	id, err := c.allocID(ctx, CollectionArticles)
	if err != nil {
		return models.Article{}, err
	}
	item.ID = id
	updated := append(append([]models.Article{}, c.articles...), item)
	if err := store.SaveJSON(ctx, c.Store, store.KeyArticles, updated); err != nil {
		return models.Article{}, err
	}
	c.articles = updated
	return item, nil
}

func (c *ContentRepository) UpdateArticle(ctx context.Context, item models.Article) (models.Article, error) {
	if err := validateArticle(&item); err != nil {
		return models.Article{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	updated := append([]models.Article{}, c.articles...)
	found := false
	for i := range updated {
		if updated[i].ID == item.ID {
			updated[i] = item
			found = true
			break
		}
	}
	if !found {
		return models.Article{}, ErrNotFound("Article not found")
	}
	if err := store.SaveJSON(ctx, c.Store, store.KeyArticles, updated); err != nil {
		return models.Article{}, err
	}
	c.articles = updated
	return item, nil
}

func (c *ContentRepository) DeleteArticle(ctx context.Context, id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	updated := make([]models.Article, 0, len(c.articles))
	found := false
	for _, a := range c.articles {
		if a.ID == id {
			found = true
			continue
		}
		updated = append(updated, a)
	}
	if !found {
		return ErrNotFound("Article not found")
	}
	if err := store.SaveJSON(ctx, c.Store, store.KeyArticles, updated); err != nil {
		return err
	}
	c.articles = updated
	return nil
}

func (c *ContentRepository) CreateGalleryEvent(ctx context.Context, item models.GalleryEvent) (models.GalleryEvent, error) {
	if err := validateGalleryEvent(&item); err != nil {
		return models.GalleryEvent{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	id, err := c.allocID(ctx, CollectionGallery)
	if err != nil {
		return models.GalleryEvent{}, err
	}
	item.ID = id
	updated := append(append([]models.GalleryEvent{}, c.gallery...), item)
	if err := store.SaveJSON(ctx, c.Store, store.KeyGallery, updated); err != nil {
		return models.GalleryEvent{}, err
	}
	c.gallery = updated
	return item, nil
}

func (c *ContentRepository) UpdateGalleryEvent(ctx context.Context, item models.GalleryEvent) (models.GalleryEvent, error) {
	if err := validateGalleryEvent(&item); err != nil {
		return models.GalleryEvent{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	updated := append([]models.GalleryEvent{}, c.gallery...)
	found := false
	for i := range updated {
		if updated[i].ID == item.ID {
			updated[i] = item
			found = true
			break
		}
	}
	if !found {
		return models.GalleryEvent{}, ErrNotFound("Gallery event not found")
	}
	if err := store.SaveJSON(ctx, c.Store, store.KeyGallery, updated); err != nil {
		return models.GalleryEvent{}, err
	}
	c.gallery = updated
	return item, nil
}

func (c *ContentRepository) DeleteGalleryEvent(ctx context.Context, id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	updated := make([]models.GalleryEvent, 0, len(c.gallery))
	found := false
	for _, g := range c.gallery {
		if g.ID == id {
			found = true
			continue
		}
		updated = append(updated, g)
	}
	if !found {
		return ErrNotFound("Gallery event not found")
	}
	if err := store.SaveJSON(ctx, c.Store, store.KeyGallery, updated); err != nil {
		return err
	}
	c.gallery = updated
	return nil
}

func (c *ContentRepository) CreateEvent(ctx context.Context, item models.UpcomingEvent) (models.UpcomingEvent, error) {
	if err := validateUpcomingEvent(&item); err != nil {
		return models.UpcomingEvent{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	id, err := c.allocID(ctx, CollectionEvents)
	if err != nil {
		return models.UpcomingEvent{}, err
	}
	item.ID = id
	updated := append(append([]models.UpcomingEvent{}, c.events...), item)
	if err := store.SaveJSON(ctx, c.Store, store.KeyEvents, updated); err != nil {
		return models.UpcomingEvent{}, err
	}
	c.events = updated
	return item, nil
}

func (c *ContentRepository) UpdateEvent(ctx context.Context, item models.UpcomingEvent) (models.UpcomingEvent, error) {
	if err := validateUpcomingEvent(&item); err != nil {
		return models.UpcomingEvent{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	updated := append([]models.UpcomingEvent{}, c.events...)
	found := false
	for i := range updated {
		if updated[i].ID == item.ID {
			updated[i] = item
			found = true
			break
		}
	}
	if !found {
		return models.UpcomingEvent{}, ErrNotFound("Event not found")
	}
	if err := store.SaveJSON(ctx, c.Store, store.KeyEvents, updated); err != nil {
		return models.UpcomingEvent{}, err
	}
	c.events = updated
	return item, nil
}

func (c *ContentRepository) DeleteEvent(ctx context.Context, id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	updated := make([]models.UpcomingEvent, 0, len(c.events))
	found := false
	for _, e := range c.events {
		if e.ID == id {
			found = true
			continue
		}
		updated = append(updated, e)
	}
	if !found {
		return ErrNotFound("Event not found")
	}
	if err := store.SaveJSON(ctx, c.Store, store.KeyEvents, updated); err != nil {
		return err
	}
	c.events = updated
	return nil
}

func validateArticle(a *models.Article) error {
	a.Title = strings.TrimSpace(a.Title)
	a.Excerpt = strings.TrimSpace(a.Excerpt)
	a.Author = strings.TrimSpace(a.Author)
	if a.Title == "" || a.Excerpt == "" || strings.TrimSpace(a.Content) == "" || a.Author == "" {
		return ErrBadRequest("Title, excerpt, content and author are required")
	}
	if a.Image != "" && !isHTTPURL(a.Image) {
		return ErrBadRequest("Image must be a valid URL")
	}
	if a.Status == "" {
		a.Status = models.ArticleDraft
	}
	if !articleStatuses[a.Status] {
		return ErrBadRequest("Invalid article status")
	}
	return nil
}

func validateGalleryEvent(g *models.GalleryEvent) error {
	g.Title = strings.TrimSpace(g.Title)
	g.Location = strings.TrimSpace(g.Location)
	if g.Title == "" || strings.TrimSpace(g.Date) == "" || g.Location == "" {
		return ErrBadRequest("Title, date and location are required")
	}
	if g.Image != "" && !isHTTPURL(g.Image) {
		return ErrBadRequest("Image must be a valid URL")
	}
	for _, item := range g.Gallery {
		if item != "" && !isHTTPURL(item) {
			return ErrBadRequest("Gallery entries must be valid URLs")
		}
	}
	if g.Gallery == nil {
		g.Gallery = []string{}
	}
	if g.Status == "" {
		g.Status = models.GalleryActive
	}
	if !galleryStatuses[g.Status] {
		return ErrBadRequest("Invalid gallery status")
	}
	return nil
}

func validateUpcomingEvent(e *models.UpcomingEvent) error {
	e.Title = strings.TrimSpace(e.Title)
	e.Location = strings.TrimSpace(e.Location)
	if e.Title == "" || strings.TrimSpace(e.Description) == "" || strings.TrimSpace(e.Date) == "" ||
		strings.TrimSpace(e.Time) == "" || e.Location == "" {
		return ErrBadRequest("Title, description, date, time and location are required")
	}
	if e.Image != "" && !isHTTPURL(e.Image) {
		return ErrBadRequest("Image must be a valid URL")
	}
	if e.RegistrationURL != "" && !isHTTPURL(e.RegistrationURL) {
		return ErrBadRequest("Registration link must be a valid URL")
	}
	if e.Program == nil {
		e.Program = []models.ProgramItem{}
	}
	if e.Speakers == nil {
		e.Speakers = []models.Speaker{}
	}
	if e.Status == "" {
		e.Status = models.EventUpcoming
	}
	if !eventStatuses[e.Status] {
		return ErrBadRequest("Invalid event status")
	}
	return nil
}

func isHTTPURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

func maxArticleID(items []models.Article) int {
	maxID := 0
	for _, item := range items {
		if item.ID > maxID {
			maxID = item.ID
		}
	}
	return maxID
}

func maxGalleryID(items []models.GalleryEvent) int {
	maxID := 0
	for _, item := range items {
		if item.ID > maxID {
			maxID = item.ID
		}
	}
	return maxID
}

func maxEventID(items []models.UpcomingEvent) int {
	maxID := 0
	for _, item := range items {
		if item.ID > maxID {
			maxID = item.ID
		}
	}
	return maxID
}
