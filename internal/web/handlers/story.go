package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jusunglee/sutja/internal/mnemonic"
	"github.com/jusunglee/sutja/internal/story"
)

type StoryHandler struct {
	teller *story.Teller
	dict   mnemonic.Dictionary
	log    *slog.Logger
}

// NewStoryHandler returns a handler that answers 503 when teller is nil.
func NewStoryHandler(teller *story.Teller, dict mnemonic.Dictionary, log *slog.Logger) *StoryHandler {
	return &StoryHandler{teller: teller, dict: dict, log: log}
}

func (h *StoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h.teller == nil {
		writeError(w, http.StatusServiceUnavailable, "story generation not configured")
		return
	}

	var req chunksRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	clean := mnemonic.Digits(req.Digits)
	if clean == "" {
		writeError(w, http.StatusBadRequest, "digits are required")
		return
	}
	if len(clean) > maxDigits {
		writeError(w, http.StatusBadRequest, "too many digits")
		return
	}

	s, err := h.teller.Tell(r.Context(), mnemonic.Convert(clean, h.dict))
	if err != nil {
		h.log.ErrorContext(r.Context(), "telling story", "digits", clean, "error", err)
		writeError(w, http.StatusBadGateway, "story generation failed")
		return
	}

	writeJSON(w, http.StatusOK, s)
}
