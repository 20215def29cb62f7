package main

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedResponder(t *testing.T, at time.Time) *Responder {
	t.Helper()
	r, err := NewResponder(defaultBank())
	require.NoError(t, err)
	r.now = func() time.Time { return at }
	return r
}

func TestRespond_FAQ(t *testing.T) {
	resp := GetBotResponse("comment vendre", nil)

	assert.Equal(t, "Pour vendre sur Tomati Market : 1) Créez un compte, 2) Connectez-vous, 3) Cliquez sur 'Vendre un article', 4) Ajoutez photos et description, 5) Publiez votre annonce !", resp.Response)
	assert.Equal(t, "faq", resp.Intent)
	assert.Equal(t, 0.9, resp.Confidence)
	assert.Nil(t, resp.Suggestions)
}

func TestRespond_FAQOmitsSuggestionsInJSON(t *testing.T) {
	data, err := json.Marshal(GetBotResponse("quels sont les frais ?", nil))
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.NotContains(t, fields, "suggestions")
	assert.Equal(t, "faq", fields["intent"])
	assert.Equal(t, "Tomati Market est gratuit pour les acheteurs et vendeurs. Aucun frais caché !", fields["response"])
}

func TestRespond_FAQIgnoresContext(t *testing.T) {
	resp := GetBotResponse("comment acheter un produit", UserContext{"is_seller": true})

	assert.Equal(t, "faq", resp.Intent)
	assert.Equal(t, "Pour acheter : 1) Parcourez les produits, 2) Contactez le vendeur via la messagerie, 3) Convenez des modalités, 4) Finalisez la transaction.", resp.Response)
}

func TestRespond_Greetings(t *testing.T) {
	resp := GetBotResponse("bonjour", nil)

	assert.Equal(t, "greetings", resp.Intent)
	assert.Equal(t, 0.8, resp.Confidence)
	assert.Equal(t, "Bonjour ! Je suis votre assistant Tomati. Comment puis-je vous aider aujourd'hui ?", resp.Response)
	assert.Equal(t, []string{"Comment vendre un produit ?", "Comment acheter ?", "Y a-t-il des frais ?"}, resp.Suggestions)
}

func TestRespond_Default(t *testing.T) {
	resp := GetBotResponse("xyz random text", nil)

	assert.Equal(t, "default", resp.Intent)
	assert.Equal(t, 0.3, resp.Confidence)
	assert.Equal(t, "Je ne suis pas sûr de comprendre votre question. Pouvez-vous la reformuler ?", resp.Response)
	assert.Equal(t, []string{"Vendre un produit", "Acheter un article", "Créer un compte", "Nous contacter"}, resp.Suggestions)
}

func TestRespond_EmptyAndLongMessages(t *testing.T) {
	assert.Equal(t, "default", GetBotResponse("", nil).Intent)
	assert.Equal(t, "default", GetBotResponse("   \t\n", nil).Intent)

	long := strings.Repeat("z", 100000)
	assert.Equal(t, "default", GetBotResponse(long, nil).Intent)
	assert.Equal(t, "delivery", GetBotResponse(long+" livraison", nil).Intent)
}

func TestRespond_FirstReplyForEveryIntent(t *testing.T) {
	bank := defaultBank()
	messages := map[Intent]string{
		IntentProducts: "je cherche un article",
		IntentDelivery: "expédition",
		IntentPayment:  "comment payer",
		IntentAccount:  "mot de passe",
		IntentSupport:  "une erreur",
		IntentGoodbye:  "au revoir",
	}

	for intent, msg := range messages {
		resp := GetBotResponse(msg, nil)
		assert.Equal(t, string(intent), resp.Intent, "message %q", msg)
		assert.Equal(t, 0.8, resp.Confidence, "message %q", msg)
		assert.Equal(t, bank.Responses[intent][0], resp.Response, "message %q", msg)
		assert.Equal(t, bank.Suggestions[intent], resp.Suggestions, "message %q", msg)
	}
}

func TestRespond_SellerContext(t *testing.T) {
	resp := GetBotResponse("je veux vendre un produit", UserContext{"is_seller": true})

	assert.Equal(t, "products", resp.Intent)
	assert.Equal(t, sellerProductsReply, resp.Response)
	assert.Equal(t, 0.8, resp.Confidence)
	assert.Equal(t, defaultBank().Suggestions[IntentProducts], resp.Suggestions)
}

func TestRespond_LoggedInContext(t *testing.T) {
	resp := GetBotResponse("mon compte", UserContext{"is_logged_in": true})

	assert.Equal(t, "account", resp.Intent)
	assert.Equal(t, loggedInAccountReply, resp.Response)
}

func TestRespond_ContextOnlyAppliesToItsIntent(t *testing.T) {
	bank := defaultBank()

	// seller flag on an account question
	resp := GetBotResponse("mon compte", UserContext{"is_seller": true})
	assert.Equal(t, bank.Responses[IntentAccount][0], resp.Response)

	// logged-in flag on a products question
	resp = GetBotResponse("un produit", UserContext{"is_logged_in": true})
	assert.Equal(t, bank.Responses[IntentProducts][0], resp.Response)
}

func TestRespond_MalformedContext(t *testing.T) {
	first := defaultBank().Responses[IntentProducts][0]

	for _, uc := range []UserContext{
		nil,
		{},
		{"is_seller": "true"},
		{"is_seller": 1},
		{"is_seller": false},
		{"other": true},
	} {
		assert.Equal(t, first, GetBotResponse("un produit", uc).Response, "context %v", uc)
	}
}

func TestRespond_Timestamp(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 589793000, time.UTC)
	r := fixedResponder(t, at)

	resp := r.Respond("bonjour", nil)
	assert.Equal(t, "2026-03-14T09:26:53.589793Z", resp.Timestamp)

	parsed, err := time.Parse(time.RFC3339Nano, resp.Timestamp)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(at))
}

func TestRespond_TimestampNonDecreasing(t *testing.T) {
	var prev time.Time
	for i := 0; i < 50; i++ {
		resp := GetBotResponse("bonjour", nil)
		ts, err := time.Parse(time.RFC3339Nano, resp.Timestamp)
		require.NoError(t, err)
		assert.False(t, ts.Before(prev))
		prev = ts
	}
}

func TestPickReply_UnmappedIntentFallsBack(t *testing.T) {
	r := fixedResponder(t, time.Now())
	assert.Equal(t, defaultBank().Responses[IntentDefault][0], r.pickReply("unknown", nil))
}
