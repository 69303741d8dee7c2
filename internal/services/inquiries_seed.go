package services

import (
	"time"

	"github.com/RameshKadariya/AISolutionProject/internal/models"
)

// seedInquiries builds the 12-record demo pool. Submission dates roll back
// one day per id so the dashboard always shows recent-looking activity.
func seedInquiries(now time.Time) []models.Inquiry {
	base := []models.Inquiry{
		{Name: "James Wilson", Email: "james.wilson@techcorp.com", Phone: "+44 191 555 0101", Company: "TechCorp Solutions", Country: "United Kingdom", JobTitle: "Operations Director", JobDetails: "We need an AI virtual assistant to handle first-line customer support queries.", Industry: "Technology", Status: models.StatusNew, Priority: "High", EstimatedValue: "$45,000"},
		{Name: "Maria Garcia", Email: "m.garcia@retailplus.es", Company: "RetailPlus", Country: "Spain", JobTitle: "Head of Digital", JobDetails: "Looking to prototype a product recommendation engine for our online store.", Industry: "Retail", Status: models.StatusInProgress, Priority: "Medium", EstimatedValue: "$30,000"},
		{Name: "Chen Wei", Email: "chen.wei@manufast.cn", Company: "ManuFast Industries", Country: "China", JobTitle: "Plant Manager", JobDetails: "Interested in predictive maintenance for our assembly line equipment.", Industry: "Manufacturing", Status: models.StatusContacted, Priority: "High", EstimatedValue: "$80,000"},
		{Name: "Sarah Johnson", Email: "sjohnson@healthfirst.com", Phone: "+1 212 555 0134", Company: "HealthFirst Clinics", Country: "United States", JobTitle: "CTO", JobDetails: "We want to automate patient appointment scheduling and follow-up reminders.", Industry: "Healthcare", Status: models.StatusNew, Priority: "High", EstimatedValue: "$60,000"},
		{Name: "Ahmed Hassan", Email: "a.hassan@gulfbank.ae", Company: "Gulf Commercial Bank", Country: "United Arab Emirates", JobTitle: "Innovation Lead", JobDetails: "Exploring a chatbot for routine banking queries in Arabic and English.", Industry: "Finance", Status: models.StatusInProgress, Priority: "Medium", EstimatedValue: "$55,000"},
		{Name: "Emma Schmidt", Email: "emma.schmidt@logistik.de", Company: "Logistik Express", Country: "Germany", JobTitle: "Process Manager", JobDetails: "Need help automating our shipment document processing workflow.", Industry: "Logistics", Status: models.StatusClosed, Priority: "Low", EstimatedValue: "$20,000"},
		{Name: "Lucas Oliveira", Email: "lucas@edubrasil.com.br", Company: "EduBrasil", Country: "Brazil", JobTitle: "Product Manager", JobDetails: "We want an AI tutor prototype for our online learning platform.", Industry: "Education", Status: models.StatusNew, Priority: "Medium", EstimatedValue: "$25,000"},
		{Name: "Yuki Tanaka", Email: "y.tanaka@sakurafoods.jp", Company: "Sakura Foods", Country: "Japan", JobTitle: "Supply Chain Director", JobDetails: "Interested in demand forecasting for seasonal product lines.", Industry: "Food & Beverage", Status: models.StatusContacted, Priority: "Medium", EstimatedValue: "$40,000"},
		{Name: "Priya Sharma", Email: "priya.sharma@fintechin.in", Phone: "+91 98 5550 1199", Company: "FinTech India", Country: "India", JobTitle: "VP Engineering", JobDetails: "Evaluating fraud detection approaches for our payments product.", Industry: "Finance", Status: models.StatusInProgress, Priority: "High", EstimatedValue: "$70,000"},
		{Name: "Olivia Brown", Email: "olivia@brownestates.co.uk", Company: "Brown Estates", Country: "United Kingdom", JobTitle: "Managing Director", JobDetails: "Looking for a virtual assistant to qualify property viewing requests.", Industry: "Real Estate", Status: models.StatusNew, Priority: "Low", EstimatedValue: "$15,000"},
		{Name: "Pierre Dubois", Email: "p.dubois@energieverte.fr", Company: "Energie Verte", Country: "France", JobTitle: "Data Lead", JobDetails: "We need a prototype that forecasts solar output for our installations.", Industry: "Energy", Status: models.StatusClosed, Priority: "Medium", EstimatedValue: "$35,000"},
		{Name: "Anna Kowalski", Email: "anna.k@polmedia.pl", Company: "PolMedia Group", Country: "Poland", JobTitle: "Editor in Chief", JobDetails: "Interested in automated tagging and summarisation of our news archive.", Industry: "Media", Status: models.StatusContacted, Priority: "Low", EstimatedValue: "$18,000"},
	}
	items := make([]models.Inquiry, len(base))
	for i, item := range base {
		item.ID = i + 1
		item.Date = now.AddDate(0, 0, -item.ID).Format("2006-01-02")
		items[i] = item
	}
	return items
}
