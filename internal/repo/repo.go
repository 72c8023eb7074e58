package repo

import (
	"github.com/GlebRadaev/groupvault/internal/pg"
	grouprepo "github.com/GlebRadaev/groupvault/internal/repo/group-repo"
	ledgerrepo "github.com/GlebRadaev/groupvault/internal/repo/ledger-repo"
	requestrepo "github.com/GlebRadaev/groupvault/internal/repo/request-repo"
	schedulerepo "github.com/GlebRadaev/groupvault/internal/repo/schedule-repo"
	"github.com/GlebRadaev/groupvault/internal/service/contributionservice"
	"github.com/GlebRadaev/groupvault/internal/service/ledgerservice"
	"github.com/GlebRadaev/groupvault/internal/service/requestservice"
)

type Repositories struct {
	RequestRepo  requestservice.RequestRepo
	GroupRepo    requestservice.GroupRepo
	LedgerRepo   ledgerservice.Repo
	ScheduleRepo contributionservice.ScheduleRepo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		RequestRepo:  requestrepo.New(conn),
		GroupRepo:    grouprepo.New(conn),
		LedgerRepo:   ledgerrepo.New(conn),
		ScheduleRepo: schedulerepo.New(conn),
	}
}
