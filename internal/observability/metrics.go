// Package observability holds Prometheus collectors for application metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// NotificationsFanned counts notification records created by actor action type.
	NotificationsFanned = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pulse_notifications_fanout_total",
		Help: "Total number of notifications created, labeled by action type",
	}, []string{"type"})

	// NotificationFanoutFailures counts notification inserts that were
	// swallowed after the primary action succeeded.
	NotificationFanoutFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pulse_notification_fanout_failures_total",
		Help: "Total number of failed notification inserts, labeled by action type",
	}, []string{"type"})

	// MediaUploads counts accepted media uploads by media type.
	MediaUploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pulse_media_uploads_total",
		Help: "Total number of accepted media uploads, labeled by media type",
	}, []string{"media_type"})

	// MediaUploadRejections counts rejected uploads by reason.
	MediaUploadRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pulse_media_upload_rejections_total",
		Help: "Total number of rejected media uploads, labeled by reason",
	}, []string{"reason"})
)
