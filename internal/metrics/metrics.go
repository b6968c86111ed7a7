package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const prefix = "smartpark_"

var (
	registerOnce sync.Once

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec

	ticketsOpened     prometheus.Counter
	ticketsCompleted  prometheus.Counter
	paymentsRecorded  prometheus.Counter
	revenueCollected  prometheus.Counter
)

// Init registers the application metrics. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		httpRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "http_requests_total",
				Help: "HTTP requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		)
		httpLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		)
		ticketsOpened = prometheus.NewCounter(prometheus.CounterOpts{
			Name: prefix + "tickets_opened_total",
			Help: "Tickets opened",
		})
		ticketsCompleted = prometheus.NewCounter(prometheus.CounterOpts{
			Name: prefix + "tickets_completed_total",
			Help: "Tickets completed",
		})
		paymentsRecorded = prometheus.NewCounter(prometheus.CounterOpts{
			Name: prefix + "payments_recorded_total",
			Help: "Payments recorded",
		})
		revenueCollected = prometheus.NewCounter(prometheus.CounterOpts{
			Name: prefix + "revenue_collected_total",
			Help: "Sum of recorded payment amounts",
		})

		prometheus.MustRegister(
			httpRequests,
			httpLatency,
			ticketsOpened,
			ticketsCompleted,
			paymentsRecorded,
			revenueCollected,
		)
	})
}

// ObserveRequest records one handled HTTP request.
func ObserveRequest(route, method string, status int, seconds float64) {
	if httpRequests == nil {
		return
	}
	httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpLatency.WithLabelValues(route).Observe(seconds)
}

// TicketOpened bumps the opened counter.
func TicketOpened() {
	if ticketsOpened != nil {
		ticketsOpened.Inc()
	}
}

// TicketCompleted bumps the completed counter.
func TicketCompleted() {
	if ticketsCompleted != nil {
		ticketsCompleted.Inc()
	}
}

// PaymentRecorded bumps the payment counter and adds to collected revenue.
func PaymentRecorded(amount float64) {
	if paymentsRecorded != nil {
		paymentsRecorded.Inc()
		if amount > 0 {
			revenueCollected.Add(amount)
		}
	}
}
