package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency (seconds)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Content operations by collection and outcome
	ContentOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_operations_total",
			Help: "Total number of content repository operations",
		},
		[]string{"collection", "operation", "status"}, // status: success, failed
	)

	// Uploaded image size (bytes)
	UploadBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "image_upload_bytes",
			Help:    "Size of uploaded images in bytes",
			Buckets: prometheus.ExponentialBuckets(16*1024, 2, 10), // 16KiB to ~8MiB
		},
	)

	// Crop latency (seconds)
	CropDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "image_crop_duration_seconds",
			Help:    "Image crop and re-encode duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
	)

	// Mirror reloads by collection and outcome
	MirrorReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mirror_reloads_total",
			Help: "Total number of public mirror collection reloads",
		},
		[]string{"collection", "status"},
	)
)

// RecordHTTPRequestDuration records HTTP request latency
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordContentOperation counts a repository operation
func RecordContentOperation(collection, operation string, err error) {
	ContentOperations.WithLabelValues(collection, operation, status(err)).Inc()
}

// RecordUpload records the size of a stored image
func RecordUpload(size int) {
	UploadBytes.Observe(float64(size))
}

// RecordCrop records crop latency
func RecordCrop(duration time.Duration) {
	CropDuration.Observe(duration.Seconds())
}

// RecordMirrorReload counts a mirror reload
func RecordMirrorReload(collection string, err error) {
	MirrorReloads.WithLabelValues(collection, status(err)).Inc()
}

func status(err error) string {
	if err != nil {
		return "failed"
	}
	return "success"
}
