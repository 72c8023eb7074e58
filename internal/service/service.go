package service

import (
	"github.com/GlebRadaev/groupvault/internal/pg"
	"github.com/GlebRadaev/groupvault/internal/repo"
	"github.com/GlebRadaev/groupvault/internal/service/contributionservice"
	"github.com/GlebRadaev/groupvault/internal/service/ledgerservice"
	"github.com/GlebRadaev/groupvault/internal/service/requestservice"
	"github.com/GlebRadaev/groupvault/pkg/notify"
)

type Config struct {
	Requests                requestservice.Config
	Ledger                  ledgerservice.Options
	ContributionMaxFailures int
}

// Services are concrete because each one plays several roles: HTTP handlers
// and the scheduler gateway consume them through different interfaces.
type Services struct {
	RequestService      *requestservice.Service
	LedgerService       *ledgerservice.Service
	ContributionService *contributionservice.Service
}

func New(repos *repo.Repositories, txManager pg.TXManager, notifier notify.Notifier, cfg Config) *Services {
	ledgerService := ledgerservice.New(repos.LedgerRepo, txManager, cfg.Ledger)
	requestService := requestservice.New(repos.RequestRepo, repos.GroupRepo, ledgerService, notifier, txManager, cfg.Requests)
	contributionService := contributionservice.New(repos.ScheduleRepo, ledgerService, txManager, cfg.ContributionMaxFailures)

	return &Services{
		RequestService:      requestService,
		LedgerService:       ledgerService,
		ContributionService: contributionService,
	}
}
