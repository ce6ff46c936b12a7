package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(
		subscriptionsTotal,
		confirmationsTotal,
	)
}

var (
	subscriptionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsletter_subscriptions_total",
			Help: "Subscribe attempts by outcome.",
		},
		[]string{"outcome"}, // 'success', 'validation_failed', 'persistence_failed', 'dispatch_failed'
	)

	confirmationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsletter_confirmations_total",
			Help: "Confirmation attempts by outcome.",
		},
		[]string{"outcome"}, // 'success', 'validation_failed', 'unauthorized', 'persistence_failed'
	)
)

func IncSubscription(outcome string) {
	subscriptionsTotal.WithLabelValues(outcome).Inc()
}

func IncConfirmation(outcome string) {
	confirmationsTotal.WithLabelValues(outcome).Inc()
}
