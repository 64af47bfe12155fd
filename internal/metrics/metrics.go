// Package metrics exposes board counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Mutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "board_mutations_total",
		Help: "Successful writes to a board collection.",
	}, []string{"collection", "op"})

	Feedback = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "board_feedback_total",
		Help: "Helpful votes recorded on FAQs.",
	}, []string{"vote"})

	StoreFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "board_store_fallbacks_total",
		Help: "Loads that returned the default sequence instead of stored data.",
	}, []string{"key", "reason"})

	WSClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "board_ws_clients",
		Help: "Connected websocket clients.",
	})
)

// StoreFallback matches store.WithFallbackHook.
func StoreFallback(key, reason string) {
	StoreFallbacks.WithLabelValues(key, reason).Inc()
}

func Mutation(collection, op string) {
	Mutations.WithLabelValues(collection, op).Inc()
}

func Vote(positive bool) {
	if positive {
		Feedback.WithLabelValues("yes").Inc()
		return
	}
	Feedback.WithLabelValues("no").Inc()
}
