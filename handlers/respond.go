package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/andrewpaige1/cosmic-travel-api/utils"
)

type DBHandler struct {
	*gorm.DB
}

type errorResponse struct {
	Error string `json:"error"`
}

type validationResponse struct {
	Errors []string `json:"errors"`
}

var validationErrors = validationResponse{Errors: []string{"validation errors"}}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

func writeValidationErrors(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, validationErrors)
}

// writeServerError logs err and answers with a generic 500
func writeServerError(w http.ResponseWriter, r *http.Request, op string, err error) {
	log.Error().
		Err(err).
		Str("op", op).
		Str("request_id", utils.GetRequestID(r)).
		Msg("Request failed")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// requestBody holds the top-level members of a JSON object body. Lookups
// are by exact key.
type requestBody map[string]json.RawMessage

// decodeBody reads the whole request body as a single JSON object
func decodeBody(r *http.Request) (requestBody, error) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	var body requestBody
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, err
	}
	return body, nil
}

// String returns the string member named key, or "" when it is absent or null
func (b requestBody) String(key string) (string, error) {
	raw, ok := b[key]
	if !ok {
		return "", nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("field %s: %w", key, err)
	}
	return s, nil
}

// ID returns the id member named key. Numbers and numeric strings are
// accepted; an absent, null or empty-string member is 0.
func (b requestBody) ID(key string) (uint, error) {
	raw, ok := b[key]
	if !ok {
		return 0, nil
	}

	raw = bytes.TrimSpace(raw)
	text := string(raw)
	switch {
	case text == "null":
		return 0, nil
	case strings.HasPrefix(text, `"`):
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, fmt.Errorf("field %s: %w", key, err)
		}
		if text == "" {
			return 0, nil
		}
	}

	id, err := strconv.ParseUint(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("field %s: %w", key, err)
	}
	return uint(id), nil
}
