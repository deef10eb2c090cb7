package middleware

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"ads-dental-admin/internal/infrastructure/backend"
	"ads-dental-admin/pkg/response"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

type LoggerMiddleware struct {
	log *logrus.Logger
}

func NewLoggerMiddleware(log *logrus.Logger) *LoggerMiddleware {
	return &LoggerMiddleware{
		log: log,
	}
}

// Handle assigns a request id (keeping one sent by the browser), passes it on
// to backend calls and logs the request once it completes.
func (m *LoggerMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rid := r.Header.Get(RequestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, rid)

		ctx := context.WithValue(r.Context(), RequestIDKey, rid)
		ctx = backend.WithRequestID(ctx, rid)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		entry := m.log.WithFields(logrus.Fields{
			"request_id": rid,
			"method":     r.Method,
			"path":       r.URL.Path,
		})

		defer func() {
			if p := recover(); p != nil {
				var stack [4096]byte
				n := runtime.Stack(stack[:], false)
				entry.WithField("stack", string(stack[:n])).Errorf("Panic recovered: %v", p)
				response.InternalServerError(rec, "")
			}
			entry.WithFields(logrus.Fields{
				"status":  rec.status,
				"latency": time.Since(start).String(),
			}).Info("request")
		}()

		next.ServeHTTP(rec, r.WithContext(ctx))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
