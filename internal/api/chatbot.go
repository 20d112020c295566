package api

import (
	"net/http"

	"github.com/skjuv/portfolio/internal/portfolio"
)

// Persona defaults applied when the admin leaves a field blank, so the
// public widget never renders an empty bubble.
const (
	defaultBotName          = "Assistant"
	defaultWelcomeMessage   = "Hello!"
	defaultFallbackMessage  = "I can only answer questions about this portfolio."
	defaultInputPlaceholder = "Ask a question..."
)

func (h *Handlers) GetChatBot(w http.ResponseWriter, r *http.Request) {
	data, err := h.store.Read(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "reading portfolio data failed")
		return
	}
	writeJSON(w, http.StatusOK, data.ChatBot)
}

// PutChatBot replaces the chatbot configuration, filling persona defaults
// for blank strings.
func (h *Handlers) PutChatBot(w http.ResponseWriter, r *http.Request) {
	var cfg portfolio.ChatBotSettings
	if err := readJSON(r, &cfg); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if cfg.BotName == "" {
		cfg.BotName = defaultBotName
	}
	if cfg.WelcomeMessage == "" {
		cfg.WelcomeMessage = defaultWelcomeMessage
	}
	if cfg.FallbackMessage == "" {
		cfg.FallbackMessage = defaultFallbackMessage
	}
	if cfg.InputPlaceholder == "" {
		cfg.InputPlaceholder = defaultInputPlaceholder
	}
	if cfg.CustomResponses == nil {
		cfg.CustomResponses = []portfolio.CustomResponse{}
	}

	updated, err := h.store.Update(r.Context(), func(d *portfolio.Data) *portfolio.Data {
		d.ChatBot = cfg
		return d
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "saving chatbot settings failed")
		return
	}
	writeJSON(w, http.StatusOK, updated.ChatBot)
}
