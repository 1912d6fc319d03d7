package claim

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ClaimAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "claim_attempts_total",
		Help: "Total claim attempts by outcome",
	},
	[]string{"outcome"},
)

func observeClaim(err error) {
	switch {
	case err == nil:
		ClaimAttemptsTotal.WithLabelValues("granted").Inc()
	case errors.Is(err, ErrAlreadyClaimed):
		ClaimAttemptsTotal.WithLabelValues("already_claimed").Inc()
	case errors.Is(err, ErrNotClaimable):
		ClaimAttemptsTotal.WithLabelValues("not_claimable").Inc()
	case errors.Is(err, ErrOrderNotFound):
		ClaimAttemptsTotal.WithLabelValues("not_found").Inc()
	default:
		ClaimAttemptsTotal.WithLabelValues("error").Inc()
	}
}
