package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	schedulerhandlers "github.com/GlebRadaev/groupvault/internal/handlers/scheduler"
	"github.com/GlebRadaev/groupvault/internal/service"
	"github.com/GlebRadaev/groupvault/internal/service/contributionservice"
	"github.com/GlebRadaev/groupvault/internal/service/ledgerservice"
	"github.com/GlebRadaev/groupvault/internal/service/requestservice"
	"github.com/GlebRadaev/groupvault/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		RequestService:      &requestservice.Service{},
		LedgerService:       &ledgerservice.Service{},
		ContributionService: &contributionservice.Service{},
	}

	h := New(services, schedulerhandlers.NewMockService(ctrl), auth.NewJWTService("secret"), "")
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.RequestHandler)
	assert.NotNil(t, h.WalletHandler)
	assert.NotNil(t, h.SchedulerHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRequestHandler := NewMockRequestHandler(ctrl)
	mockWalletHandler := NewMockWalletHandler(ctrl)
	mockSchedulerHandler := NewMockSchedulerHandler(ctrl)

	mockRequestHandler.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).AnyTimes()
	mockRequestHandler.EXPECT().ListRequests(gomock.Any(), gomock.Any()).AnyTimes()
	mockRequestHandler.EXPECT().GetRequest(gomock.Any(), gomock.Any()).AnyTimes()
	mockRequestHandler.EXPECT().CastBallot(gomock.Any(), gomock.Any()).AnyTimes()
	mockRequestHandler.EXPECT().Remind(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetWallet(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().Contribute(gomock.Any(), gomock.Any()).AnyTimes()
	mockSchedulerHandler.EXPECT().Run(gomock.Any(), gomock.Any()).AnyTimes()

	jwtService := auth.NewJWTService("secret")
	token, _ := jwtService.GenerateJWT(uuid.New(), time.Now().Add(time.Hour))

	h := &Handlers{
		RequestHandler:   mockRequestHandler,
		WalletHandler:    mockWalletHandler,
		SchedulerHandler: mockSchedulerHandler,
		JWTService:       jwtService,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	groupPath := "/api/groups/" + uuid.NewString()
	requestPath := "/api/requests/" + uuid.NewString()

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/internal/scheduler/run", "", http.StatusOK},
		{"GET", "/metrics", "", http.StatusOK},
		{"POST", groupPath + "/requests", "", http.StatusUnauthorized},
		{"GET", groupPath + "/requests", "", http.StatusUnauthorized},
		{"POST", groupPath + "/contributions", "", http.StatusUnauthorized},
		{"GET", requestPath, "", http.StatusUnauthorized},
		{"POST", requestPath + "/ballots", "", http.StatusUnauthorized},
		{"POST", requestPath + "/remind", "", http.StatusUnauthorized},
		{"GET", "/api/wallet", "", http.StatusUnauthorized},
		{"POST", groupPath + "/requests", token, http.StatusOK},
		{"GET", requestPath, token, http.StatusOK},
		{"POST", requestPath + "/ballots", token, http.StatusOK},
		{"GET", "/api/wallet", token, http.StatusOK},
		{"DELETE", "/api/wallet", token, http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
