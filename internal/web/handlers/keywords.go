package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jusunglee/sutja/internal/db"
	"github.com/jusunglee/sutja/internal/keyword"
	"github.com/jusunglee/sutja/internal/metrics"
	"github.com/jusunglee/sutja/internal/mnemonic"
)

type KeywordHandler struct {
	dict *keyword.Live
	repo db.Repository
	log  *slog.Logger
}

// NewKeywordHandler serves lookups from dict. repo may be nil, in which case
// the dictionary is read-only.
func NewKeywordHandler(dict *keyword.Live, repo db.Repository, log *slog.Logger) *KeywordHandler {
	return &KeywordHandler{dict: dict, repo: repo, log: log}
}

type keywordResponse struct {
	Code     string   `json:"code"`
	Keywords []string `json:"keywords"`
	Fallback bool     `json:"fallback"`
}

func (h *KeywordHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if !keyword.ValidCode(code) {
		writeError(w, http.StatusBadRequest, "code must be 2 or 3 digits")
		return
	}

	c := mnemonic.Resolve(h.dict, code)
	metrics.RecordLookup(c.Fallback)
	writeJSON(w, http.StatusOK, keywordResponse{
		Code:     c.Digits,
		Keywords: c.Candidates,
		Fallback: c.Fallback,
	})
}

type putKeywordsRequest struct {
	Keywords []string `json:"keywords"`
}

func (h *KeywordHandler) Put(w http.ResponseWriter, r *http.Request) {
	if h.repo == nil {
		writeError(w, http.StatusServiceUnavailable, "keyword store not configured")
		return
	}

	code := r.PathValue("code")
	var req putKeywordsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := keyword.Validate(keyword.Entry{Code: code, Keywords: req.Keywords})
	if err != nil {
		switch {
		case errors.Is(err, keyword.ErrInvalidCode):
			writeError(w, http.StatusBadRequest, "code must be 2 or 3 digits")
		default:
			writeError(w, http.StatusBadRequest, "keywords are required")
		}
		return
	}

	if _, err := h.repo.UpsertDigitEntry(r.Context(), db.UpsertDigitEntryParams{
		Code:     entry.Code,
		Keywords: entry.Keywords,
	}); err != nil {
		h.log.ErrorContext(r.Context(), "upserting keywords", "code", code, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if err := h.dict.Reload(r.Context(), h.repo); err != nil {
		h.log.ErrorContext(r.Context(), "reloading dictionary", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	metrics.DictionaryEntries.Set(float64(h.dict.Len()))

	h.log.InfoContext(r.Context(), "keywords updated", "code", entry.Code, "count", len(entry.Keywords))
	writeJSON(w, http.StatusOK, keywordResponse{Code: entry.Code, Keywords: entry.Keywords})
}
