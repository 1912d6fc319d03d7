package syncqueue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"dispatch/internal/entities"
)

var ReconcileEntriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "offline_reconcile_entries_total",
		Help: "Total reconciled offline queue entries by final sync status",
	},
	[]string{"status"},
)

func observeReconcile(status entities.SyncStatusType) {
	ReconcileEntriesTotal.WithLabelValues(status.String()).Inc()
}
