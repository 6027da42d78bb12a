// Package metrics объявляет метрики Prometheus сервиса.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics содержит коллекторы HTTP-слоя и доменные счётчики.
type Metrics struct {
	HTTPRequests         *prometheus.CounterVec
	HTTPDuration         *prometheus.HistogramVec
	MessagesSent         *prometheus.CounterVec
	SubscriptionsCreated prometheus.Counter
	ImagesGenerated      *prometheus.CounterVec
}

// New создаёт метрики и регистрирует их в reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tattoo_studio",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tattoo_studio",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		MessagesSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tattoo_studio",
			Name:      "messages_sent_total",
			Help:      "Chat messages stored, by sender side.",
		}, []string{"sender"}),
		SubscriptionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tattoo_studio",
			Name:      "subscriptions_created_total",
			Help:      "User subscriptions created.",
		}),
		ImagesGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tattoo_studio",
			Name:      "images_generated_total",
			Help:      "Image generation attempts by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.MessagesSent,
		m.SubscriptionsCreated,
		m.ImagesGenerated,
	)
	return m
}

// MessageSent учитывает сохранённое сообщение.
func (m *Metrics) MessageSent(isFromUser bool) {
	sender := "salon"
	if isFromUser {
		sender = "user"
	}
	m.MessagesSent.WithLabelValues(sender).Inc()
}

// ImageGenerated учитывает попытку генерации изображения.
func (m *Metrics) ImageGenerated(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.ImagesGenerated.WithLabelValues(result).Inc()
}
