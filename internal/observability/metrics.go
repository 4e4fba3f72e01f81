package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "guestlist_http_requests_total", Help: "HTTP requests"},
		[]string{"route", "status"},
	)
	Registrations = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "guestlist_registrations_total", Help: "Accepted registrations"},
	)
	ValidationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "guestlist_validation_failures_total", Help: "Rejected form submissions"},
		[]string{"field"},
	)
	LedgerReadRecoveries = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "guestlist_ledger_read_recoveries_total", Help: "Ledger reads recovered as empty"},
		[]string{"reason"},
	)
)

func Register(reg prometheus.Registerer) {
	reg.MustRegister(HTTPRequests, Registrations, ValidationFailures, LedgerReadRecoveries)
}
