package prometheus

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Instance interface {
	Register(r prometheus.Registerer)
	ObserveRequest(status int, d time.Duration)
	ObserveDownstream(subject, method string, failed bool, d time.Duration)
}

type Options struct {
	Labels prometheus.Labels
}

type metrics struct {
	requests           *prometheus.CounterVec
	requestDuration    prometheus.Histogram
	downstreamCalls    *prometheus.CounterVec
	downstreamDuration *prometheus.HistogramVec
}

func New(o Options) Instance {
	return &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "api_gql_requests_total",
			Help:        "Total GraphQL requests served, by HTTP status",
			ConstLabels: o.Labels,
		}, []string{"status"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "api_gql_request_duration_seconds",
			Help:        "GraphQL request duration",
			ConstLabels: o.Labels,
		}),
		downstreamCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "api_downstream_calls_total",
			Help:        "Downstream RPC calls, by service subject, method and outcome",
			ConstLabels: o.Labels,
		}, []string{"subject", "method", "outcome"}),
		downstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "api_downstream_call_duration_seconds",
			Help:        "Downstream RPC call duration",
			ConstLabels: o.Labels,
		}, []string{"subject", "method"}),
	}
}

func (m *metrics) Register(r prometheus.Registerer) {
	r.MustRegister(
		m.requests,
		m.requestDuration,
		m.downstreamCalls,
		m.downstreamDuration,
	)
}

func (m *metrics) ObserveRequest(status int, d time.Duration) {
	m.requests.WithLabelValues(strconv.Itoa(status)).Inc()
	m.requestDuration.Observe(d.Seconds())
}

func (m *metrics) ObserveDownstream(subject, method string, failed bool, d time.Duration) {
	outcome := "ok"
	if failed {
		outcome = "error"
	}

	m.downstreamCalls.WithLabelValues(subject, method, outcome).Inc()
	m.downstreamDuration.WithLabelValues(subject, method).Observe(d.Seconds())
}
