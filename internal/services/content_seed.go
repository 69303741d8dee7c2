package services

import "github.com/RameshKadariya/AISolutionProject/internal/models"

// Default site content, used only when a collection key has never been
// written.

func seedArticles() []models.Article {
	return []models.Article{
		{
			ID:       1,
			Title:    "How AI Virtual Assistants Are Changing Customer Support",
			Excerpt:  "Deploying a virtual assistant cut first-response times by 80% for one of our retail clients.",
			Content:  "Customer support teams spend most of their day answering the same twenty questions. A well-trained virtual assistant handles those instantly, around the clock, and hands the unusual cases to a human with full context already gathered. In this article we walk through a recent retail deployment, the training data we used and the measurable impact on response times and customer satisfaction.",
			Image:    "https://images.unsplash.com/photo-1531746790731-6c087fecd65a",
			Date:     "2025-06-12",
			Author:   "Ramesh Kadariya",
			Category: "Virtual Assistants",
			ReadTime: "6 min read",
			Status:   models.ArticlePublished,
		},
		{
			ID:       2,
			Title:    "Rapid Prototyping: From Idea to Working Demo in Two Weeks",
			Excerpt:  "Why we build a throwaway prototype before writing a single line of production code.",
			Content:  "Every engagement starts with a prototype sprint. The goal is not production quality, it is learning: which data is actually available, where the model struggles, what the users really need. Two weeks and a working demo answer those questions far cheaper than three months of development. Here is how we structure the sprint and what clients can expect at the end of it.",
			Image:    "https://images.unsplash.com/photo-1552664730-d307ca884978",
			Date:     "2025-05-28",
			Author:   "Ramesh Kadariya",
			Category: "Prototyping",
			ReadTime: "4 min read",
			Status:   models.ArticlePublished,
		},
		{
			ID:       3,
			Title:    "Measuring the ROI of AI Projects",
			Excerpt:  "A practical framework for putting numbers on automation projects before committing budget.",
			Content:  "AI projects fail most often not for technical reasons but because nobody agreed up front what success looks like. We use a simple framework: baseline the current process cost, estimate the automation rate conservatively, and track both weekly from day one. This article shares the worksheet we use with every client.",
			Date:     "2025-04-15",
			Author:   "Sarah Chen",
			Category: "Strategy",
			ReadTime: "8 min read",
			Status:   models.ArticleDraft,
		},
	}
}

func seedGallery() []models.GalleryEvent {
	return []models.GalleryEvent{
		{
			ID:          1,
			Title:       "AI Innovation Summit 2025",
			Date:        "2025-03-18",
			Location:    "Sunderland, UK",
			Image:       "https://images.unsplash.com/photo-1540575467063-178a50c2df87",
			Description: "Our annual summit brought together 200 delegates to discuss practical AI adoption in the North East.",
			Category:    "Conference",
			Gallery: []string{
				"https://images.unsplash.com/photo-1540575467063-178a50c2df87",
				"https://images.unsplash.com/photo-1587825140708-dfaf72ae4b04",
			},
			Status: models.GalleryActive,
		},
		{
			ID:          2,
			Title:       "Hands-on Chatbot Workshop",
			Date:        "2025-01-22",
			Location:    "Newcastle, UK",
			Image:       "https://images.unsplash.com/photo-1515187029135-18ee286d815b",
			Description: "A full-day workshop where local businesses built their first customer support bot.",
			Category:    "Workshop",
			Gallery:     []string{},
			Status:      models.GalleryActive,
		},
	}
}

func seedEvents() []models.UpcomingEvent {
	return []models.UpcomingEvent{
		{
			ID:          1,
			Title:       "AI for Small Business: Free Webinar",
			Description: "A one-hour introduction to the automation opportunities most small businesses overlook, with live Q&A.",
			Date:        "2025-10-09",
			Time:        "14:00",
			Location:    "Online",
			Image:       "https://images.unsplash.com/photo-1591115765373-5207764f72e7",
			Category:    "Webinar",
			Program: []models.ProgramItem{
				{Time: "14:00", Title: "Where AI actually saves money"},
				{Time: "14:30", Title: "Case study: invoice processing"},
				{Time: "14:45", Title: "Live Q&A"},
			},
			Speakers: []models.Speaker{
				{Name: "Ramesh Kadariya", Role: "Founder", Topic: "Practical AI adoption"},
			},
			Price:  "Free",
			Status: models.EventUpcoming,
		},
		{
			ID:          2,
			Title:       "Prototyping Bootcamp",
			Description: "Two days of hands-on work taking a business problem to a working AI prototype.",
			Date:        "2025-11-20",
			Time:        "09:30",
			Location:    "Sunderland Software Centre",
			Category:    "Training",
			Program:     []models.ProgramItem{},
			Speakers:    []models.Speaker{},
			Price:       "£250",
			Status:      models.EventUpcoming,
		},
	}
}
