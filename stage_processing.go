package main

// Respond builds the payload for a message.
// It follows this order:
// 1. FAQ hit: literal answer, intent "faq", no suggestions
// 2. Context override for sellers asking about products and for logged-in
//    users asking about their account
// 3. First reply of the response bank for the intent
//
// A nil context means no context was supplied.
func (r *Responder) Respond(message string, uc UserContext) ResponsePayload {
	result := r.Classify(message)
	timestamp := r.now().Format(timestampLayout)

	if result.IsFAQ() {
		return ResponsePayload{
			Response:   r.faqAnswers[result.FAQKey],
			Intent:     string(IntentFAQ),
			Confidence: confidenceFAQ,
			Timestamp:  timestamp,
		}
	}

	intent := result.Intent
	confidence := confidenceKeyword
	if intent == IntentDefault {
		confidence = confidenceDefault
	}

	return ResponsePayload{
		Response:    r.pickReply(intent, uc),
		Intent:      string(intent),
		Confidence:  confidence,
		Timestamp:   timestamp,
		Suggestions: r.Suggestions(intent),
	}
}

// pickReply always takes the first candidate; the other entries of the
// response bank are not rotated in.
func (r *Responder) pickReply(intent Intent, uc UserContext) string {
	switch {
	case intent == IntentProducts && uc.IsSeller():
		return sellerProductsReply
	case intent == IntentAccount && uc.IsLoggedIn():
		return loggedInAccountReply
	}

	replies, ok := r.responses[intent]
	if !ok || len(replies) == 0 {
		replies = r.responses[IntentDefault]
	}
	return replies[0]
}

// GetBotResponse answers a message with the built-in bank
func GetBotResponse(message string, uc UserContext) ResponsePayload {
	return defaultResponder.Respond(message, uc)
}
