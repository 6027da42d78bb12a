package send

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/tattoo-studio/internal/models"
	"github.com/magabrotheeeer/tattoo-studio/internal/storage"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) SendMessage(ctx context.Context, userID, salonID int, content string, isFromUser bool) (models.Message, error) {
	args := m.Called(ctx, userID, salonID, content, isFromUser)
	return args.Get(0).(models.Message), args.Error(1)
}

func TestSendHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "сообщение от пользователя",
			body: `{"userId":1,"salonId":2,"content":"Коли можна прийти?","isFromUser":true}`,
			setupMock: func(m *MockService) {
				m.On("SendMessage", mock.Anything, 1, 2, "Коли можна прийти?", true).
					Return(models.Message{ID: 10, UserID: 1, SalonID: 2, Content: "Коли можна прийти?", IsFromUser: true}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"id":10`,
		},
		{
			name: "isFromUser=false допустим",
			body: `{"userId":1,"salonId":2,"content":"Чекаємо","isFromUser":false}`,
			setupMock: func(m *MockService) {
				m.On("SendMessage", mock.Anything, 1, 2, "Чекаємо", false).
					Return(models.Message{ID: 11, UserID: 1, SalonID: 2, Content: "Чекаємо"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"isFromUser":false`,
		},
		{
			name:           "нет isFromUser",
			body:           `{"userId":1,"salonId":2,"content":"hi"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field IsFromUser is a required field`,
		},
		{
			name:           "пустой текст",
			body:           `{"userId":1,"salonId":2,"content":"","isFromUser":true}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field Content is a required field`,
		},
		{
			name:           "некорректный JSON",
			body:           `not json`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid request body`,
		},
		{
			name: "салон не найден",
			body: `{"userId":1,"salonId":99,"content":"hi","isFromUser":true}`,
			setupMock: func(m *MockService) {
				m.On("SendMessage", mock.Anything, 1, 99, "hi", true).
					Return(models.Message{}, fmt.Errorf("salon 99: %w", storage.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `user or salon not found`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			New(logger, svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}
