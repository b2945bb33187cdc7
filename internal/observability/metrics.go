// Package observability holds the Prometheus metrics of the economy engine.
package observability

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"coinloop/internal/core/domain"
)

// Outcome labels.
const (
	OutcomeOK                = "ok"
	OutcomeValidation        = "validation"
	OutcomeNotFound          = "not_found"
	OutcomeInsufficientFunds = "insufficient_funds"
	OutcomeExhausted         = "exhausted"
	OutcomeConflict          = "conflict"
	OutcomeError             = "error"
)

// CommandsTotal counts commands by name and outcome.
var CommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "coinloop",
	Name:      "commands_total",
	Help:      "Economy commands processed, by command and outcome.",
}, []string{"command", "outcome"})

// CommandDuration observes how long commands hold the per-user gate.
var CommandDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "coinloop",
	Name:      "command_duration_seconds",
	Help:      "Economy command latency.",
	Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
}, []string{"command"})

// LedgerVolume sums committed credits by transaction kind.
var LedgerVolume = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "coinloop",
	Name:      "ledger_credits_total",
	Help:      "Credits moved through the ledger, by transaction kind.",
}, []string{"kind"})

// ActiveUserGates tracks users with a command in flight or queued.
var ActiveUserGates = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "coinloop",
	Name:      "user_gates_active",
	Help:      "Users with a command currently holding or awaiting their gate.",
})

// Classify maps a command error to an outcome label.
func Classify(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrValidation):
		return OutcomeValidation
	case errors.Is(err, domain.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, domain.ErrInsufficientFunds):
		return OutcomeInsufficientFunds
	case errors.Is(err, domain.ErrCampaignExhausted):
		return OutcomeExhausted
	case errors.Is(err, domain.ErrConflict):
		return OutcomeConflict
	default:
		return OutcomeError
	}
}

// ObserveCommand records one finished command.
func ObserveCommand(command string, started time.Time, err error) {
	CommandsTotal.WithLabelValues(command, Classify(err)).Inc()
	CommandDuration.WithLabelValues(command).Observe(time.Since(started).Seconds())
}

// ObserveTransaction records a committed ledger entry.
func ObserveTransaction(tx *domain.Transaction) {
	if tx == nil {
		return
	}
	LedgerVolume.WithLabelValues(string(tx.Kind)).Add(float64(tx.Amount))
}
