package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type contextKey string

// RequestIDKey ключ контекста с идентификатором запроса
const RequestIDKey contextKey = "request_id"

// RequestIDHeader заголовок, через который клиент может передать свой идентификатор
const RequestIDHeader = "X-Request-ID"

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RequestLogging пишет в лог каждый запрос с кодом ответа и длительностью
func RequestLogging(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, requestID)
			r = r.WithContext(context.WithValue(r.Context(), RequestIDKey, requestID))

			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r)

			logger.Info("%s %s - status=%d, duration_ms=%d, request_id=%s",
				r.Method, r.URL.Path, sw.status, time.Since(start).Milliseconds(), requestID)
		})
	}
}

// RequestIDFrom возвращает идентификатор запроса из контекста
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
