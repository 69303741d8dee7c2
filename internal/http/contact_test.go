package httpapi

import (
	"encoding/json"
	"net/http"
	"testing"
)

func validContact() map[string]string {
	return map[string]string{
		"name":       "Jane Doe",
		"email":      "jane@example.com",
		"company":    "Acme",
		"country":    "United Kingdom",
		"jobTitle":   "CTO",
		"jobDetails": "We would like to automate our support desk workflows.",
	}
}

func TestSubmitContactSuccess(t *testing.T) {
	_, handler := newTestServer(t)
	rec := doJSON(t, handler, http.MethodPost, "/api/contact", "", validContact())
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["message"] == "" {
		t.Fatal("expected a confirmation message")
	}
}

func TestSubmitContactRejectsInvalidEmail(t *testing.T) {
	_, handler := newTestServer(t)
	payload := validContact()
	payload["email"] = "not-an-email"
	rec := doJSON(t, handler, http.MethodPost, "/api/contact", "", payload)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSubmitContactRejectsShortJobDetails(t *testing.T) {
	_, handler := newTestServer(t)
	payload := validContact()
	payload["jobDetails"] = "too short"
	rec := doJSON(t, handler, http.MethodPost, "/api/contact", "", payload)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestListContactIsVolatile(t *testing.T) {
	_, handler := newTestServer(t)

	rec := doJSON(t, handler, http.MethodGet, "/api/contact", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: %d", rec.Code)
	}
	var items []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Fatalf("fresh server should have no submissions, got %d", len(items))
	}

	if rec := doJSON(t, handler, http.MethodPost, "/api/contact", "", validContact()); rec.Code != http.StatusOK {
		t.Fatalf("submit: %d", rec.Code)
	}
	rec = doJSON(t, handler, http.MethodGet, "/api/contact", "", nil)
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 submission, got %d", len(items))
	}
	if items[0]["name"] != "Jane Doe" {
		t.Fatalf("unexpected submission: %v", items[0])
	}

	// A second server over its own store starts with an empty list again.
	_, fresh := newTestServer(t)
	rec = doJSON(t, fresh, http.MethodGet, "/api/contact", "", nil)
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Fatalf("restart should clear the volatile list, got %d", len(items))
	}
}

func TestChatbotEndpoints(t *testing.T) {
	_, handler := newTestServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/chatbot/message", "", map[string]string{"message": ""})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty message: %d, want 400", rec.Code)
	}

	rec = doJSON(t, handler, http.MethodPost, "/api/chatbot/message", "", map[string]string{"message": "what is your pricing?"})
	if rec.Code != http.StatusOK {
		t.Fatalf("message: %d %s", rec.Code, rec.Body.String())
	}
	var reply struct {
		Response       string `json:"response"`
		ConversationID string `json:"conversation_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &reply); err != nil {
		t.Fatal(err)
	}
	if reply.Response == "" || reply.ConversationID == "" {
		t.Fatalf("incomplete reply: %+v", reply)
	}

	rec = doJSON(t, handler, http.MethodGet, "/api/chatbot/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("chat health: %d", rec.Code)
	}
	rec = doJSON(t, handler, http.MethodGet, "/api/chatbot/models", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("chat models: %d", rec.Code)
	}
}

func TestSubmitFeedbackOverHTTP(t *testing.T) {
	_, handler := newTestServer(t)
	rec := doJSON(t, handler, http.MethodPost, "/api/feedback", "", map[string]interface{}{
		"name": "Jane", "email": "jane@example.com", "feedback": "Very helpful team",
		"overallRating": 5, "recommendation": 4,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("feedback: %d %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, handler, http.MethodPost, "/api/feedback", "", map[string]interface{}{
		"name": "Jane", "email": "jane@example.com", "feedback": "x",
		"overallRating": 9, "recommendation": 4,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad rating: %d, want 400", rec.Code)
	}
}
