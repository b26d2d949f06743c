package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	OnlineConns = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "delivery_online_conns",
		Help: "Current open websocket connections by gateway kind.",
	}, []string{"kind"})
	OnlineUsers = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "delivery_online_users",
		Help: "Users with at least one open connection.",
	})

	MessagesPersisted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "delivery_messages_persisted_total",
		Help: "Total messages created (duplicates excluded).",
	})
	MessagesDuplicate = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "delivery_messages_duplicate_total",
		Help: "Total send-message requests answered from an existing idempotency key.",
	})
	DirectDelivered = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "delivery_direct_delivered_total",
		Help: "Total messages pushed to an online recipient without queueing.",
	})

	QueueEnqueued = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "delivery_queue_enqueued_total",
		Help: "Total items put on the offline queue.",
	})
	QueueOutcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "delivery_queue_outcomes_total",
		Help: "Queued delivery attempts by outcome (delivered, retry, abandoned).",
	}, []string{"outcome"})

	NotificationsGrouped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "delivery_notifications_total",
		Help: "Notification events by type and result (created, merged).",
	}, []string{"type", "result"})
	NotificationPushes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "delivery_notification_pushes_total",
		Help: "Notification push decisions (pushed, deferred, disabled, offline).",
	}, []string{"decision"})

	Errors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "delivery_errors_total",
		Help: "Recorded messaging errors by category and severity.",
	}, []string{"category", "severity"})
)

func Register() {
	prometheus.MustRegister(
		OnlineConns, OnlineUsers,
		MessagesPersisted, MessagesDuplicate, DirectDelivered,
		QueueEnqueued, QueueOutcomes,
		NotificationsGrouped, NotificationPushes,
		Errors,
	)
}
