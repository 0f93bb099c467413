// Package metrics collects and exposes Prometheus metrics for the
// gateway.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the interface the handlers record through.
type Recorder interface {
	RecordSendAccepted()
	RecordSendRejected()
	RecordChatReply()
	RecordChatFallback()
	RecordAuthSuccess(kind string)
	RecordAuthFailure(kind string)
}

// Collector is the Prometheus-backed Recorder implementation.
type Collector struct {
	sendAccepted prometheus.Counter
	sendRejected prometheus.Counter
	chatReplies  prometheus.Counter
	chatFallback prometheus.Counter
	authSuccess  *prometheus.CounterVec
	authFailure  *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		sendAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "saturday_send_accepted_total",
			Help: "Messages accepted by the exchange engine.",
		}),
		sendRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "saturday_send_rejected_total",
			Help: "Sends rejected by admission control (blank or in flight).",
		}),
		chatReplies: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "saturday_chat_replies_total",
			Help: "Assistant replies received from the chat service.",
		}),
		chatFallback: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "saturday_chat_fallback_total",
			Help: "Exchanges settled with the fallback assistant message.",
		}),
		authSuccess: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "saturday_auth_success_total",
			Help: "Successful auth operations by kind.",
		}, []string{"kind"}),
		authFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "saturday_auth_failure_total",
			Help: "Failed auth operations by kind.",
		}, []string{"kind"}),
	}

	reg.MustRegister(
		c.sendAccepted,
		c.sendRejected,
		c.chatReplies,
		c.chatFallback,
		c.authSuccess,
		c.authFailure,
	)

	return c
}

func (c *Collector) RecordSendAccepted() { c.sendAccepted.Inc() }

func (c *Collector) RecordSendRejected() { c.sendRejected.Inc() }

func (c *Collector) RecordChatReply() { c.chatReplies.Inc() }

func (c *Collector) RecordChatFallback() { c.chatFallback.Inc() }

func (c *Collector) RecordAuthSuccess(kind string) { c.authSuccess.WithLabelValues(kind).Inc() }

func (c *Collector) RecordAuthFailure(kind string) { c.authFailure.WithLabelValues(kind).Inc() }

// Handler returns the HTTP handler Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
