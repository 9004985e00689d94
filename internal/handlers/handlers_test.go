package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/0wnerDied/Web-Development-Course-Design/docs"
	"github.com/0wnerDied/Web-Development-Course-Design/internal/handlers/auth"
	"github.com/0wnerDied/Web-Development-Course-Design/internal/handlers/draws"
	"github.com/0wnerDied/Web-Development-Course-Design/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService: auth.NewMockService(ctrl),
		DrawService: draws.NewMockService(ctrl),
		Permissions: draws.NewMockPermissionChecker(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockDrawHandler := NewMockDrawHandler(ctrl)

	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockDrawHandler.EXPECT().ListDraws(gomock.Any(), gomock.Any()).AnyTimes()
	mockDrawHandler.EXPECT().ListPending(gomock.Any(), gomock.Any()).AnyTimes()
	mockDrawHandler.EXPECT().ListWins(gomock.Any(), gomock.Any()).AnyTimes()
	mockDrawHandler.EXPECT().CreateDraw(gomock.Any(), gomock.Any()).AnyTimes()
	mockDrawHandler.EXPECT().ExecuteDraw(gomock.Any(), gomock.Any()).AnyTimes()
	mockDrawHandler.EXPECT().SetWinner(gomock.Any(), gomock.Any()).AnyTimes()
	mockDrawHandler.EXPECT().DeleteDraw(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler: mockAuthHandler,
		DrawHandler: mockDrawHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/login", http.StatusOK},
		{"GET", "/api/lucky-draw", http.StatusUnauthorized},
		{"GET", "/api/lucky-draw/pending", http.StatusUnauthorized},
		{"GET", "/api/lucky-draw/wins/10001", http.StatusUnauthorized},
		{"POST", "/api/lucky-draw/create", http.StatusUnauthorized},
		{"POST", "/api/lucky-draw/execute/1", http.StatusUnauthorized},
		{"POST", "/api/lucky-draw/winner/1", http.StatusUnauthorized},
		{"DELETE", "/api/lucky-draw/1", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
