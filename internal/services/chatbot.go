package services

import (
	"math/rand"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const chatbotModel = "aisolution-assist-1"

const maxChatMessageLength = 1000

type ChatReply struct {
	Response       string `json:"response"`
	ConversationID string `json:"conversation_id"`
	UserID         string `json:"user_id,omitempty"`
	Model          string `json:"model"`
	Timestamp      string `json:"timestamp"`
	ResponseTimeMs int    `json:"response_time_ms"`
	TokensUsed     int    `json:"tokens_used"`
	RateLimit      struct {
		Limit     int   `json:"limit"`
		Remaining int   `json:"remaining"`
		ResetAt   int64 `json:"reset_at"`
	} `json:"rate_limit"`
}

type ChatModel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ChatbotService answers site visitor messages from a small keyword table.
// There is no model behind it; the latency and token figures are simulated
// so the frontend widget behaves like a real integration.
type ChatbotService struct {
	Now  func() time.Time
	rand *rand.Rand
}

func NewChatbotService() *ChatbotService {
	return &ChatbotService{
		Now:  time.Now,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

var keywordReplies = []struct {
	keywords []string
	reply    string
}{
	{
		keywords: []string{"price", "cost", "pricing", "quote"},
		reply:    "Our pricing depends on project scope. Prototyping engagements start around $5,000 and virtual assistant deployments from $15,000. Fill in the contact form and we will prepare a tailored quote within two business days.",
	},
	{
		keywords: []string{"service", "offer", "what do you do"},
		reply:    "We offer three core services: AI virtual assistants for customer support, rapid prototyping of AI solutions, and strategic AI consulting. Which one would you like to know more about?",
	},
	{
		keywords: []string{"contact", "reach", "email", "phone"},
		reply:    "You can reach us through the contact form on this site, and the team replies within one business day. For urgent matters mention it in the job details and we will prioritise your inquiry.",
	},
	{
		keywords: []string{"portfolio", "project", "case stud", "example"},
		reply:    "We have delivered projects across retail, healthcare, finance and manufacturing. Have a look at the articles and events sections for recent case studies, or ask us about a specific industry.",
	},
}

var cannedReplies = []string{
	"Thanks for your message! Could you tell me a bit more about what you are looking for?",
	"That's a great question. Our team would be happy to discuss it in detail, just leave your details in the contact form.",
	"I can help with questions about our services, pricing and past projects. What would you like to know?",
	"Interesting! AI can likely help with that. Would you like me to outline how we usually approach similar problems?",
}

func (c *ChatbotService) Reply(message, conversationID, userID string) (ChatReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return ChatReply{}, ErrBadRequest("Message is required")
	}
	if utf8.RuneCountInString(message) > maxChatMessageLength {
		return ChatReply{}, ErrBadRequest("Message must be 1000 characters or less")
	}
	if conversationID == "" {
		conversationID = "conv_" + uuid.NewString()
	}

	lowered := strings.ToLower(message)
	response := ""
	for _, entry := range keywordReplies {
		for _, keyword := range entry.keywords {
			if strings.Contains(lowered, keyword) {
				response = entry.reply
				break
			}
		}
		if response != "" {
			break
		}
	}
	if response == "" {
		response = cannedReplies[c.rand.Intn(len(cannedReplies))]
	}

	now := c.Now()
	reply := ChatReply{
		Response:       response,
		ConversationID: conversationID,
		UserID:         userID,
		Model:          chatbotModel,
		Timestamp:      now.UTC().Format(time.RFC3339),
		ResponseTimeMs: 200 + c.rand.Intn(600),
		TokensUsed:     len(strings.Fields(response)) + len(strings.Fields(message)),
	}
	reply.RateLimit.Limit = 60
	reply.RateLimit.Remaining = 59
	reply.RateLimit.ResetAt = now.Add(time.Minute).Unix()
	return reply, nil
}

func (c *ChatbotService) Models() []ChatModel {
	return []ChatModel{
		{ID: chatbotModel, Name: "AI-Solution Assistant", Description: "General site assistant for services, pricing and contact questions"},
	}
}
