package status

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gymtrack/gymtrack/internal/models"
	memberservice "github.com/gymtrack/gymtrack/internal/services/member"
)

// MockService реализует интерфейс status.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) UpdateStatus(ctx context.Context, id string, status models.MembershipStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func TestStatusHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		id             string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешная смена статуса",
			id:          "abc-123",
			requestBody: models.DummyStatusUpdate{Status: "suspended"},
			setupMock: func(m *MockService) {
				m.On("UpdateStatus", mock.Anything, "abc-123", models.StatusSuspended).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"suspended"`,
		},
		{
			name:           "некорректный JSON",
			id:             "abc-123",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name:           "статус вне перечисления",
			id:             "abc-123",
			requestBody:    models.DummyStatusUpdate{Status: "cancelled"},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Status must be one of: active expired suspended`,
		},
		{
			name:        "участник не найден",
			id:          "missing",
			requestBody: models.DummyStatusUpdate{Status: "expired"},
			setupMock: func(m *MockService) {
				m.On("UpdateStatus", mock.Anything, "missing", models.StatusExpired).
					Return(memberservice.ErrMemberNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"member not found"}`,
		},
		{
			name:        "ошибка сервиса",
			id:          "abc-123",
			requestBody: models.DummyStatusUpdate{Status: "active"},
			setupMock: func(m *MockService) {
				m.On("UpdateStatus", mock.Anything, "abc-123", models.StatusActive).
					Return(errors.New("storage error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not update member status"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			var body bytes.Buffer
			switch v := tt.requestBody.(type) {
			case string:
				body.WriteString(v)
			default:
				err := json.NewEncoder(&body).Encode(v)
				assert.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPut, "/members/"+tt.id+"/status", &body)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
