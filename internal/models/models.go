package models

import "time"

// Article statuses.
const (
	ArticleDraft     = "draft"
	ArticlePublished = "published"
	ArticleArchived  = "archived"
)

// Gallery event statuses.
const (
	GalleryActive = "active"
	GalleryHidden = "hidden"
)

// Upcoming event statuses.
const (
	EventUpcoming  = "upcoming"
	EventOngoing   = "ongoing"
	EventCompleted = "completed"
	EventCancelled = "cancelled"
)

// Inquiry and feedback workflow statuses.
const (
	StatusNew        = "New"
	StatusInProgress = "In Progress"
	StatusContacted  = "Contacted"
	StatusClosed     = "Closed"
	StatusReviewed   = "Reviewed"
	StatusResponded  = "Responded"
)

type Article struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Image    string `json:"image,omitempty"`
	Date     string `json:"date"`
	Author   string `json:"author"`
	Category string `json:"category,omitempty"`
	ReadTime string `json:"readTime,omitempty"`
	Status   string `json:"status"`
}

type GalleryEvent struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Location    string   `json:"location"`
	Image       string   `json:"image,omitempty"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Gallery     []string `json:"gallery"`
	Status      string   `json:"status"`
}

type UpcomingEvent struct {
	ID              int           `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	Date            string        `json:"date"`
	Time            string        `json:"time"`
	Location        string        `json:"location"`
	Image           string        `json:"image,omitempty"`
	Category        string        `json:"category,omitempty"`
	RegistrationURL string        `json:"registrationUrl,omitempty"`
	Program         []ProgramItem `json:"program"`
	Speakers        []Speaker     `json:"speakers"`
	Price           string        `json:"price,omitempty"`
	Status          string        `json:"status"`
}

type ProgramItem struct {
	Time  string `json:"time"`
	Title string `json:"title"`
}

type Speaker struct {
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
	Topic string `json:"topic,omitempty"`
}

// Inquiry is a contact request. Dates use YYYY-MM-DD so that string order is
// chronological order.
type Inquiry struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Company        string `json:"company"`
	Country        string `json:"country"`
	JobTitle       string `json:"jobTitle"`
	JobDetails     string `json:"jobDetails"`
	Industry       string `json:"industry"`
	Status         string `json:"status"`
	Priority       string `json:"priority"`
	EstimatedValue string `json:"estimatedValue"`
	Date           string `json:"date"`
}

type Feedback struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Company        string `json:"company,omitempty"`
	ServiceUsed    string `json:"serviceUsed,omitempty"`
	OverallRating  int    `json:"overallRating"`
	Recommendation int    `json:"recommendation"`
	Feedback       string `json:"feedback"`
	Status         string `json:"status"`
	Date           string `json:"date"`
}

// LockoutRecord tracks consecutive failed logins. LockedUntil is zero while
// no lock is in effect.
type LockoutRecord struct {
	Attempts    int       `json:"attempts"`
	LockedUntil time.Time `json:"lockedUntil"`
}

type AdminSession struct {
	User         string    `json:"user"`
	LoginTime    time.Time `json:"loginTime"`
	LastActivity time.Time `json:"lastActivity"`
}
