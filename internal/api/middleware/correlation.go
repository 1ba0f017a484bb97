package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const correlationIDKey contextKey = "correlation_id"

// CorrelationIDHeader carries the per-request trace identifier.
const CorrelationIDHeader = "X-Correlation-ID"

// maxCorrelationIDLen bounds what is handed to uuid.Parse; the longest form
// it accepts ("urn:uuid:" prefix) is 45 bytes.
const maxCorrelationIDLen = 45

// CorrelationID tags every request with a UUID. A caller-supplied
// X-Correlation-ID is kept only when it parses as a UUID, and is echoed in
// canonical form so the header and the log line never carry raw caller input.
func CorrelationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := correlationIDFrom(r.Header.Get(CorrelationIDHeader))
		w.Header().Set(CorrelationIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), correlationIDKey, id)))
	})
}

func correlationIDFrom(raw string) string {
	if raw == "" || len(raw) > maxCorrelationIDLen {
		return uuid.NewString()
	}
	parsed, err := uuid.Parse(raw)
	if err != nil || parsed == uuid.Nil {
		return uuid.NewString()
	}
	return parsed.String()
}

// GetCorrelationID returns "" when the middleware was not applied.
func GetCorrelationID(ctx context.Context) string {
	v, _ := ctx.Value(correlationIDKey).(string)
	return v
}
