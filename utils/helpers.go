package utils

import (
	"context"
	"net/http"
	"strconv"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID stores the request id on the context
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func GetRequestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey).(string)
	return id
}

// GetPathID parses a positive integer path value. ok is false for anything
// else, including zero and negative numbers.
func GetPathID(r *http.Request, name string) (uint, bool) {
	raw := r.PathValue(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
