// Package diag is the diagnostics transport: a websocket feed of
// datascope frames/sync events and a Prometheus metrics endpoint,
// grounded on madpsy-ka9q_ubersdr's prometheus.go and websocket.go.
package diag

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dsdgo/dsdgo/core"
)

// Metrics is the set of Prometheus collectors the decoder publishes.
type Metrics struct {
	syncHits   *prometheus.CounterVec
	noCarriers prometheus.Counter
	offset     prometheus.Gauge
	modulation *prometheus.GaugeVec
}

// NewMetrics registers every collector against the default registry.
func NewMetrics() *Metrics {
	return &Metrics{
		syncHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dsdgo_sync_hits_total",
			Help: "Confirmed sync matches, by sync code.",
		}, []string{"code"}),
		noCarriers: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dsdgo_no_carrier_total",
			Help: "Carrier-loss resets.",
		}),
		offset: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "dsdgo_sync_offset",
			Help: "Sync-test position at the most recent hit.",
		}),
		modulation: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "dsdgo_modulation_active",
			Help: "1 for the currently selected modulation, 0 otherwise.",
		}, []string{"modulation"}),
	}
}

// Observe is a core.Observer that updates the collectors from the
// decoder's event stream.
func (m *Metrics) Observe(ev core.Event) {
	if m == nil {
		return
	}
	switch ev.Kind {
	case core.EventSyncHit:
		m.syncHits.WithLabelValues(syncCodeLabel(ev.SyncCode)).Inc()
		m.offset.Set(float64(ev.Offset))
		for _, mod := range []core.Modulation{core.ModC4FM, core.ModQPSK, core.ModGFSK} {
			v := 0.0
			if mod == ev.Modulation {
				v = 1.0
			}
			m.modulation.WithLabelValues(mod.String()).Set(v)
		}
	case core.EventNoCarrier:
		m.noCarriers.Inc()
	}
}

func syncCodeLabel(c core.SyncCode) string {
	if c < 0 {
		return "none"
	}
	digits := "0123456789"
	if c < 10 {
		return string(digits[c])
	}
	return string(digits[c/10]) + string(digits[c%10])
}

// Handler returns the /metrics HTTP handler for http.Serve.
func Handler() http.Handler {
	return promhttp.Handler()
}
