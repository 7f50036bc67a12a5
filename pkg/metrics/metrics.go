package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CheckoutsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lumen_checkouts_created_total",
		Help: "Checkout sessions successfully created.",
	})

	SettlementsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lumen_settlements_total",
		Help: "Ledger entries settled and credited.",
	})

	WebhooksRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lumen_webhooks_rejected_total",
		Help: "Webhook deliveries rejected for invalid signatures.",
	})

	AbandonedCheckoutsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lumen_checkouts_abandoned_total",
		Help: "Pending checkouts expired by the reconciliation sweep.",
	})

	GenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lumen_generations_total",
		Help: "Billed generation requests by kind and outcome.",
	}, []string{"kind", "outcome"})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
