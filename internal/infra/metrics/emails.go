package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(newsletterEmailsTotal)
}

var newsletterEmailsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "newsletter_emails_total",
		Help: "Newsletter emails by result.",
	},
	[]string{"result"}, // 'sent', 'failed'
)

func IncNewsletterEmails(result string, n int) {
	if n <= 0 {
		return
	}
	newsletterEmailsTotal.WithLabelValues(result).Add(float64(n))
}
