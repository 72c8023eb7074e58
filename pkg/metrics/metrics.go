package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "groupvault_requests_created_total",
		Help: "Withdrawal and refund requests created",
	}, []string{"kind"})

	BallotsCast = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "groupvault_ballots_cast_total",
		Help: "Ballots cast or overwritten",
	}, []string{"vote"})

	RequestsResolved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "groupvault_requests_resolved_total",
		Help: "Requests reaching a terminal status",
	}, []string{"kind", "status"})

	LedgerOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "groupvault_ledger_operations_total",
		Help: "Balance ledger operations by outcome",
	}, []string{"operation", "result"})

	LedgerMovedKobo = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "groupvault_ledger_moved_kobo_total",
		Help: "Amount moved by the balance ledger, in kobo",
	}, []string{"operation"})

	SchedulerRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "groupvault_scheduler_run_duration_seconds",
		Help:    "Scheduler job latency",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 30},
	}, []string{"job"})

	SchedulerItems = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "groupvault_scheduler_items_total",
		Help: "Items processed by scheduler jobs",
	}, []string{"job", "result"})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
