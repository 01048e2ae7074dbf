package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Pinger is anything whose liveness can be probed, such as a repository.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler reports {"status":"ok"}, or 503 when pinger fails. A nil pinger
// is always healthy.
func Handler(pinger Pinger, dictionarySize func() int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{"status": "ok"}
		status := http.StatusOK

		if dictionarySize != nil {
			body["dictionary_entries"] = dictionarySize()
		}
		if pinger != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := pinger.Ping(ctx); err != nil {
				body["status"] = "degraded"
				body["database"] = err.Error()
				status = http.StatusServiceUnavailable
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	})
}
