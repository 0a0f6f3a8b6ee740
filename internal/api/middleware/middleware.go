// Package middleware HTTP middleware: аутентификация админских ручек,
// метрики и request id.
package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/JBarber-BookingService/internal/api/handlers"
	"github.com/m04kA/JBarber-BookingService/pkg/metrics"
)

const (
	msgMissingToken = "требуется авторизация"
	msgInvalidToken = "невалидный или просроченный токен"

	bearerPrefix = "Bearer "
)

// TokenVerifier интерфейс проверки токена сессии
type TokenVerifier interface {
	VerifyToken(token string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth проверяет Bearer токен в заголовке Authorization.
// На невалидный или отсутствующий токен отвечаем 401 без деталей причины.
func Auth(verifier TokenVerifier, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				logger.Warn("Auth: missing bearer token: %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			token := strings.TrimPrefix(header, bearerPrefix)
			if err := verifier.VerifyToken(token); err != nil {
				logger.Warn("Auth: invalid token: %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestID проставляет X-Request-ID в запрос и ответ
// (генерирует, если клиент не прислал).
func RequestID() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.NewString()
				r.Header.Set("X-Request-ID", requestID)
			}

			w.Header().Set("X-Request-ID", requestID)
			next.ServeHTTP(w, r)
		})
	}
}

// statusRecorder перехватывает статус ответа для метрик
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Metrics собирает HTTP метрики: счётчик запросов, длительность,
// число активных запросов. Endpoint берется из шаблона маршрута mux,
// чтобы не плодить лейблы на каждый конкретный ID.
func Metrics(m *metrics.Metrics, serviceName string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			endpoint := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if tmpl, err := route.GetPathTemplate(); err == nil {
					endpoint = tmpl
				}
			}

			m.HTTPRequestsActive.WithLabelValues(serviceName).Inc()
			defer m.HTTPRequestsActive.WithLabelValues(serviceName).Dec()

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(recorder, r)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(recorder.status)
			m.HTTPRequestsTotal.WithLabelValues(serviceName, r.Method, endpoint, status).Inc()
			m.HTTPRequestDuration.WithLabelValues(serviceName, r.Method, endpoint).Observe(duration)
		})
	}
}
