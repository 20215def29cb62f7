package main

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidBank is returned when a bank breaks one of the table invariants
var ErrInvalidBank = errors.New("invalid bank")

var (
	repeatedBangs = regexp.MustCompile(`[!?]{2,}`)
	repeatedDots  = regexp.MustCompile(`\.{2,}`)
)

// keywordEntry is a prepared trigger list for one intent
type keywordEntry struct {
	intent   Intent
	triggers []string
}

// Responder classifies messages and picks canned replies.
// It is never mutated after NewResponder returns.
type Responder struct {
	faq         []FAQEntry
	faqAnswers  map[string]string
	keywords    []keywordEntry
	responses   map[Intent][]string
	suggestions map[Intent][]string
	now         func() time.Time
}

var defaultResponder = mustNewResponder(defaultBank())

func mustNewResponder(bank Bank) *Responder {
	r, err := NewResponder(bank)
	if err != nil {
		panic(err)
	}
	return r
}

// NewResponder validates the bank and prepares its phrases for matching.
// Phrases are NFC-composed and normalized; empty ones are dropped since
// they would match every message.
func NewResponder(bank Bank) (*Responder, error) {
	if err := validateBank(bank); err != nil {
		return nil, err
	}

	r := &Responder{
		faq:         make([]FAQEntry, 0, len(bank.FAQ)),
		faqAnswers:  make(map[string]string, len(bank.FAQ)),
		keywords:    make([]keywordEntry, 0, len(bank.Keywords)),
		responses:   make(map[Intent][]string, len(bank.Responses)),
		suggestions: make(map[Intent][]string, len(bank.Suggestions)),
		now:         time.Now,
	}

	for _, entry := range bank.FAQ {
		phrase := preparePhrase(entry.Phrase)
		if phrase == "" {
			continue
		}
		if _, dup := r.faqAnswers[phrase]; dup {
			continue
		}
		r.faq = append(r.faq, FAQEntry{Phrase: phrase, Answer: entry.Answer})
		r.faqAnswers[phrase] = entry.Answer
	}

	for _, set := range bank.Keywords {
		triggers := make([]string, 0, len(set.Triggers))
		for _, trigger := range set.Triggers {
			if prepared := preparePhrase(trigger); prepared != "" {
				triggers = append(triggers, prepared)
			}
		}
		r.keywords = append(r.keywords, keywordEntry{intent: set.Intent, triggers: triggers})
	}

	for intent, replies := range bank.Responses {
		r.responses[intent] = slices.Clone(replies)
	}
	for intent, prompts := range bank.Suggestions {
		r.suggestions[intent] = slices.Clone(prompts)
	}

	return r, nil
}

func validateBank(bank Bank) error {
	if len(bank.Responses[IntentDefault]) == 0 {
		return fmt.Errorf("%w: no default responses", ErrInvalidBank)
	}
	if len(bank.Suggestions[IntentDefault]) == 0 {
		return fmt.Errorf("%w: no default suggestions", ErrInvalidBank)
	}

	for _, entry := range bank.FAQ {
		if strings.TrimSpace(entry.Answer) == "" {
			return fmt.Errorf("%w: faq %q has no answer", ErrInvalidBank, entry.Phrase)
		}
	}

	for _, set := range bank.Keywords {
		switch set.Intent {
		case "", IntentDefault, IntentFAQ:
			return fmt.Errorf("%w: keyword intent %q is reserved", ErrInvalidBank, set.Intent)
		}
		if len(bank.Responses[set.Intent]) == 0 {
			return fmt.Errorf("%w: intent %q has no responses", ErrInvalidBank, set.Intent)
		}
		if len(bank.Suggestions[set.Intent]) == 0 {
			return fmt.Errorf("%w: intent %q has no suggestions", ErrInvalidBank, set.Intent)
		}
	}

	return nil
}

func preparePhrase(phrase string) string {
	return Normalize(norm.NFC.String(phrase))
}

// Normalize lowercases the message, trims it and collapses punctuation runs:
// two or more of '!' or '?' become "!", two or more '.' become ".".
func Normalize(message string) string {
	// cases.Caser keeps state, so one per call
	message = cases.Lower(language.French).String(message)
	message = strings.TrimSpace(message)
	message = repeatedBangs.ReplaceAllString(message, "!")
	message = repeatedDots.ReplaceAllString(message, ".")
	return message
}

// Classify scans the FAQ bank then the keyword lexicon, both in declaration
// order, and stops at the first phrase contained in the normalized message.
// Returns IntentDefault when nothing matches.
func (r *Responder) Classify(message string) Classification {
	normalized := Normalize(message)

	for _, entry := range r.faq {
		if strings.Contains(normalized, entry.Phrase) {
			return Classification{Intent: IntentFAQ, FAQKey: entry.Phrase}
		}
	}

	for _, entry := range r.keywords {
		for _, trigger := range entry.triggers {
			if strings.Contains(normalized, trigger) {
				return Classification{Intent: entry.intent}
			}
		}
	}

	return Classification{Intent: IntentDefault}
}

// Suggestions returns the follow-up prompts for an intent, falling back to
// the default prompts. The result is a copy.
func (r *Responder) Suggestions(intent Intent) []string {
	prompts, ok := r.suggestions[intent]
	if !ok {
		prompts = r.suggestions[IntentDefault]
	}
	return slices.Clone(prompts)
}

// Info summarizes the prepared tables
func (r *Responder) Info() BankInfo {
	triggers := 0
	for _, entry := range r.keywords {
		triggers += len(entry.triggers)
	}
	return BankInfo{
		FAQEntries: len(r.faq),
		Intents:    len(r.keywords),
		Triggers:   triggers,
	}
}
