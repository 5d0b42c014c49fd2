package middlewarectx

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newNoopLoggerLimit() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRateLimitMiddleware(t *testing.T) {
	originalLimiter := limiter
	defer func() { limiter = originalLimiter }()

	t.Run("запросы в пределах лимита проходят", func(t *testing.T) {
		limiter = rate.NewLimiter(rate.Limit(100), 5)

		handler := RateLimitMiddleware(newNoopLoggerLimit())(http.HandlerFunc(
			func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

		for i := 0; i < 5; i++ {
			req := httptest.NewRequest(http.MethodGet, "/members", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code, "запрос %d должен пройти", i+1)
		}
	})

	t.Run("запросы сверх лимита отклоняются со статусом 429", func(t *testing.T) {
		limiter = rate.NewLimiter(rate.Limit(1), 2)
		handlerCalled := 0

		handler := RateLimitMiddleware(newNoopLoggerLimit())(http.HandlerFunc(
			func(w http.ResponseWriter, _ *http.Request) {
				handlerCalled++
				w.WriteHeader(http.StatusOK)
			}))

		var blocked int
		for i := 0; i < 5; i++ {
			req := httptest.NewRequest(http.MethodGet, "/members", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			if w.Code == http.StatusTooManyRequests {
				blocked++
				assert.Contains(t, w.Body.String(), "too many requests")
			}
		}

		require.Equal(t, 3, blocked)
		assert.Equal(t, 2, handlerCalled, "обработчик не должен вызываться для отклоненных запросов")
	})

	t.Run("лимит восстанавливается со временем", func(t *testing.T) {
		limiter = rate.NewLimiter(rate.Limit(10), 1)

		handler := RateLimitMiddleware(newNoopLoggerLimit())(http.HandlerFunc(
			func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

		req := httptest.NewRequest(http.MethodGet, "/members", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		require.Equal(t, http.StatusTooManyRequests, w.Code)

		time.Sleep(150 * time.Millisecond)

		w = httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
