package main

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/text/unicode/norm"
)

// Handlers exposes the responder over HTTP
type Handlers struct {
	store  *BankStore
	logger zerolog.Logger
}

func NewHandlers(store *BankStore, logger zerolog.Logger) *Handlers {
	return &Handlers{store: store, logger: logger}
}

func (h *Handlers) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"timestamp":   time.Now(),
		"bank_source": h.store.Source(),
	})
}

func (h *Handlers) handleChat(c echo.Context) error {
	var req ChatRequest

	if err := c.Bind(&req); err != nil || req.Message == nil || *req.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Message is required"})
	}

	// Mobile keyboards may send decomposed accents
	message := norm.NFC.String(*req.Message)

	payload := h.store.Current().Respond(message, req.UserContext)

	h.logger.Debug().
		Str("intent", payload.Intent).
		Float64("confidence", payload.Confidence).
		Msg("chat message classified")

	return c.JSON(http.StatusOK, payload)
}

func (h *Handlers) handleSuggestions(c echo.Context) error {
	intent := c.QueryParam("intent")
	if intent == "" {
		intent = string(IntentDefault)
	}

	return c.JSON(http.StatusOK, SuggestionsResponse{
		Intent:      intent,
		Suggestions: h.store.Current().Suggestions(Intent(intent)),
	})
}

func (h *Handlers) handleReload(c echo.Context) error {
	if err := h.store.Reload(); err != nil {
		h.logger.Error().Err(err).Msg("manual bank reload failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, ReloadResponse{
		Message:    "Bank reloaded",
		Source:     h.store.Source(),
		ReloadedAt: time.Now(),
	})
}

func (h *Handlers) handleBankInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Info())
}

// Register mounts every route on e
func (h *Handlers) Register(e *echo.Echo) {
	e.POST("/api/chat", h.handleChat)
	e.GET("/api/suggestions", h.handleSuggestions)
	e.GET("/health", h.handleHealth)

	// Admin endpoints for manual reload
	e.POST("/admin/reload", h.handleReload)
	e.GET("/admin/bank-info", h.handleBankInfo)
}
