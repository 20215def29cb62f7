package main

import (
	"encoding/json"
	"time"
)

// Intent is the coarse category assigned to an incoming message
type Intent string

const (
	IntentGreetings Intent = "greetings"
	IntentProducts  Intent = "products"
	IntentDelivery  Intent = "delivery"
	IntentPayment   Intent = "payment"
	IntentAccount   Intent = "account"
	IntentSupport   Intent = "support"
	IntentGoodbye   Intent = "goodbye"
	IntentDefault   Intent = "default"

	// IntentFAQ is only ever used as the output label of an FAQ hit
	IntentFAQ Intent = "faq"
)

// Fixed confidence per classification path
const (
	confidenceFAQ     = 0.9
	confidenceKeyword = 0.8
	confidenceDefault = 0.3
)

// timestampLayout is ISO-8601 with microseconds and a UTC offset
const timestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// FAQEntry maps a literal phrase to a complete canned answer
type FAQEntry struct {
	Phrase string `json:"phrase" yaml:"phrase"`
	Answer string `json:"answer" yaml:"answer"`
}

// KeywordSet lists the substring triggers of one intent
type KeywordSet struct {
	Intent   Intent   `json:"intent" yaml:"intent"`
	Triggers []string `json:"triggers" yaml:"triggers"`
}

// Bank holds every table the responder reads.
// FAQ and Keywords are ordered: declaration order decides ties.
type Bank struct {
	FAQ         []FAQEntry          `json:"faq" yaml:"faq"`
	Keywords    []KeywordSet        `json:"keywords" yaml:"keywords"`
	Responses   map[Intent][]string `json:"responses" yaml:"responses"`
	Suggestions map[Intent][]string `json:"suggestions" yaml:"suggestions"`
}

// UserContext carries optional flags supplied by the chat widget.
// Only boolean true counts; any other value fails the check.
type UserContext map[string]interface{}

func (uc UserContext) flag(name string) bool {
	if uc == nil {
		return false
	}
	v, ok := uc[name].(bool)
	return ok && v
}

// UnmarshalJSON accepts any JSON value; anything but an object carries no flags
func (uc *UserContext) UnmarshalJSON(data []byte) error {
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		*uc = nil
		return nil
	}
	*uc = fields
	return nil
}

// IsSeller reports whether the is_seller flag is set
func (uc UserContext) IsSeller() bool { return uc.flag("is_seller") }

// IsLoggedIn reports whether the is_logged_in flag is set
func (uc UserContext) IsLoggedIn() bool { return uc.flag("is_logged_in") }

// Classification is the result of Classify. FAQKey is set only on FAQ hits.
type Classification struct {
	Intent Intent
	FAQKey string
}

// IsFAQ reports whether an FAQ phrase matched
func (c Classification) IsFAQ() bool {
	return c.FAQKey != ""
}

// ResponsePayload is the JSON answer returned to the chat widget
type ResponsePayload struct {
	Response    string   `json:"response"`
	Intent      string   `json:"intent"`
	Confidence  float64  `json:"confidence"`
	Timestamp   string   `json:"timestamp"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Request/Response structures
type ChatRequest struct {
	Message     *string     `json:"message"`
	UserContext UserContext `json:"userContext"`
}

type SuggestionsResponse struct {
	Intent      string   `json:"intent"`
	Suggestions []string `json:"suggestions"`
}

type ReloadResponse struct {
	Message    string    `json:"message"`
	Source     string    `json:"source"`
	ReloadedAt time.Time `json:"reloaded_at"`
}

// BankInfo describes the bank currently served
type BankInfo struct {
	Source     string    `json:"source"`
	LoadedAt   time.Time `json:"loaded_at"`
	FAQEntries int       `json:"faq_entries"`
	Intents    int       `json:"intents"`
	Triggers   int       `json:"triggers"`
}
