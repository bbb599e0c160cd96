package webapi

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var ErrRegisterMetrics = errors.New("failed to register webapi metrics")

// NewInstrumentedTransport wraps next with request count and latency collectors registered on reg. A nil next
// uses http.DefaultTransport. Pass the result as the Transport of Config.HTTPClient.
func NewInstrumentedTransport(reg prometheus.Registerer, next http.RoundTripper) (http.RoundTripper, error) {
	if next == nil {
		next = http.DefaultTransport
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "steamwebapi",
		Name:      "requests_total",
		Help:      "Steam WebAPI requests by response code and method.",
	}, []string{"code", "method"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "steamwebapi",
		Name:      "request_duration_seconds",
		Help:      "Steam WebAPI request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	for _, collector := range []prometheus.Collector{requests, duration} {
		if errRegister := reg.Register(collector); errRegister != nil {
			return nil, errors.Join(errRegister, ErrRegisterMetrics)
		}
	}

	return promhttp.InstrumentRoundTripperCounter(requests,
		promhttp.InstrumentRoundTripperDuration(duration, next)), nil
}
