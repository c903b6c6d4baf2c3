package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"crud-service/pkg/logger"
)

// HeaderCorrelationID is the header used to propagate the per-request
// correlation identifier in both directions.
const HeaderCorrelationID = "X-Correlation-Id"

// Correlation assigns every request a correlation id: the inbound header
// value when present and non-empty, otherwise a fresh random UUID. The id is
// stored in the request context and echoed on the response header for every
// outcome, including errors.
func Correlation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderCorrelationID)
		if id == "" {
			id = logger.NewCorrelationID()
		}

		ctx := logger.WithCorrelationID(r.Context(), id)
		w.Header().Set(HeaderCorrelationID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Logging emits one log line per handled request.
func Logging(next http.Handler, log *logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		log.LogRequest(r.Context(), r.Method, r.URL.Path, wrapped.statusCode, time.Since(start))
	})
}

// Recover converts a handler panic into an internal-fault envelope so a
// single bad request never takes the process down.
func Recover(next http.Handler, log *logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Errorf("panic handling %s %s: %v", r.Method, r.URL.Path, rec)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(Envelope{
					CorrelationID: logger.CorrelationIDFromContext(r.Context()),
					Message:       "operation failed",
					Error:         fmt.Sprintf("panic: %v", rec),
					Data:          nil,
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// responseWriter captures the status code written by the handler.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.statusCode = code
		rw.written = true
		rw.ResponseWriter.WriteHeader(code)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}
