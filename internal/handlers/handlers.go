package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/groupvault/docs"
	requesthandlers "github.com/GlebRadaev/groupvault/internal/handlers/requests"
	schedulerhandlers "github.com/GlebRadaev/groupvault/internal/handlers/scheduler"
	wallethandlers "github.com/GlebRadaev/groupvault/internal/handlers/wallet"
	"github.com/GlebRadaev/groupvault/internal/service"
	"github.com/GlebRadaev/groupvault/pkg/auth"
	"github.com/GlebRadaev/groupvault/pkg/metrics"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type RequestHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	CastBallot(w http.ResponseWriter, r *http.Request)
	Remind(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	Contribute(w http.ResponseWriter, r *http.Request)
}

type SchedulerHandler interface {
	Run(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	RequestHandler   RequestHandler
	WalletHandler    WalletHandler
	SchedulerHandler SchedulerHandler
	JWTService       auth.JWTServiceInterface
}

func New(s *service.Services, gateway schedulerhandlers.Service, jwtService auth.JWTServiceInterface, schedulerToken string) *Handlers {
	return &Handlers{
		RequestHandler:   requesthandlers.New(s.RequestService),
		WalletHandler:    wallethandlers.New(s.LedgerService, s.ContributionService),
		SchedulerHandler: schedulerhandlers.New(gateway, schedulerToken),
		JWTService:       jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.RequestID,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins:   []string{"https://*", "http://*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", schedulerhandlers.TokenHeader},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/internal/scheduler/run", h.SchedulerHandler.Run)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.JWTService))
			r.Route("/groups/{groupID}", func(r chi.Router) {
				r.Post("/requests", h.RequestHandler.CreateRequest)
				r.Get("/requests", h.RequestHandler.ListRequests)
				r.Post("/contributions", h.WalletHandler.Contribute)
			})
			r.Route("/requests/{requestID}", func(r chi.Router) {
				r.Get("/", h.RequestHandler.GetRequest)
				r.Post("/ballots", h.RequestHandler.CastBallot)
				r.Post("/remind", h.RequestHandler.Remind)
			})
			r.Get("/wallet", h.WalletHandler.GetWallet)
		})
	})

	return r
}
