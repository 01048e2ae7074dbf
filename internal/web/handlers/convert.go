package handlers

import (
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/jusunglee/sutja/internal/metrics"
	"github.com/jusunglee/sutja/internal/mnemonic"
)

const (
	maxWordRunes  = 256
	maxDigits     = 64
	maxPINLength  = 64
	defaultLength = 6
)

type ConvertHandler struct {
	dict mnemonic.Dictionary
	log  *slog.Logger
}

func NewConvertHandler(dict mnemonic.Dictionary, log *slog.Logger) *ConvertHandler {
	return &ConvertHandler{dict: dict, log: log}
}

type encodeRequest struct {
	Word string `json:"word"`
}

type encodeResponse struct {
	Word       string `json:"word"`
	Digits     string `json:"digits"`
	Consonants string `json:"consonants"`
}

func (h *ConvertHandler) Encode(w http.ResponseWriter, r *http.Request) {
	var req encodeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if utf8.RuneCountInString(req.Word) > maxWordRunes {
		writeError(w, http.StatusBadRequest, "word is too long")
		return
	}

	digits := mnemonic.Encode(req.Word)
	writeJSON(w, http.StatusOK, encodeResponse{
		Word:       req.Word,
		Digits:     digits,
		Consonants: mnemonic.Decode(digits),
	})
}

type deriveRequest struct {
	Word   string `json:"word"`
	Length int    `json:"length"`
}

type digitsResponse struct {
	Digits string `json:"digits"`
}

func (h *ConvertHandler) Derive(w http.ResponseWriter, r *http.Request) {
	var req deriveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Word == "" {
		writeError(w, http.StatusBadRequest, "word is required")
		return
	}
	if utf8.RuneCountInString(req.Word) > maxWordRunes {
		writeError(w, http.StatusBadRequest, "word is too long")
		return
	}
	if req.Length < 1 || req.Length > maxPINLength {
		writeError(w, http.StatusBadRequest, "length must be between 1 and 64")
		return
	}

	writeJSON(w, http.StatusOK, digitsResponse{Digits: mnemonic.DeriveFixedLength(req.Word, req.Length)})
}

type chunksRequest struct {
	Digits string `json:"digits"`
}

type chunksResponse struct {
	Digits string           `json:"digits"`
	Chunks []mnemonic.Chunk `json:"chunks"`
}

func (h *ConvertHandler) Chunks(w http.ResponseWriter, r *http.Request) {
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

	chunks := mnemonic.Convert(clean, h.dict)
	for _, c := range chunks {
		metrics.RecordLookup(c.Fallback)
	}
	writeJSON(w, http.StatusOK, chunksResponse{Digits: clean, Chunks: chunks})
}

type credentialRequest struct {
	Level   string `json:"level"`
	Word    string `json:"word"`
	Length  int    `json:"length"`
	Service string `json:"service"`
	Symbol  string `json:"symbol"`
}

type credentialResponse struct {
	Level      mnemonic.Level `json:"level"`
	Digits     string         `json:"digits"`
	Credential string         `json:"credential"`
}

func (h *ConvertHandler) Credential(w http.ResponseWriter, r *http.Request) {
	var req credentialRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	level, err := mnemonic.ParseLevel(req.Level)
	if err != nil {
		writeError(w, http.StatusBadRequest, "level must be pin, standard, or master")
		return
	}
	if req.Word == "" {
		writeError(w, http.StatusBadRequest, "word is required")
		return
	}
	if utf8.RuneCountInString(req.Word) > maxWordRunes || utf8.RuneCountInString(req.Service) > maxWordRunes {
		writeError(w, http.StatusBadRequest, "input is too long")
		return
	}
	if level != mnemonic.LevelPIN && req.Service == "" {
		writeError(w, http.StatusBadRequest, "service is required for standard and master levels")
		return
	}
	if req.Length == 0 {
		req.Length = defaultLength
	}
	if req.Length < 1 || req.Length > maxPINLength {
		writeError(w, http.StatusBadRequest, "length must be between 1 and 64")
		return
	}

	digits := mnemonic.DeriveFixedLength(req.Word, req.Length)
	metrics.CredentialsComposed.WithLabelValues(string(level)).Inc()

	writeJSON(w, http.StatusOK, credentialResponse{
		Level:      level,
		Digits:     digits,
		Credential: mnemonic.Compose(level, digits, req.Service, req.Symbol),
	})
}
