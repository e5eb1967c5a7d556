package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for document processing.
// All counters and histograms are registered via promauto with the default
// Prometheus registry.
type Metrics struct {
	// DocumentsDecoded counts documents decoded and validated, labeled by root element.
	DocumentsDecoded *prometheus.CounterVec

	// DecodeFailures counts documents rejected, labeled by error kind.
	DecodeFailures *prometheus.CounterVec

	// RecordsDecoded counts citations, articles and deletions read, labeled by root element.
	RecordsDecoded *prometheus.CounterVec

	// DeletedCitations counts PMIDs listed in DeleteCitation elements.
	DeletedCitations prometheus.Counter

	// DocumentsEncoded counts documents written back as XML, labeled by root element.
	DocumentsEncoded *prometheus.CounterVec

	// SummariesWritten counts paper summaries written as JSON lines.
	SummariesWritten prometheus.Counter

	// DecodeDuration observes decode plus validation time in seconds.
	DecodeDuration prometheus.Histogram
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
// The namespace is used as a prefix for all metric names.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		DocumentsDecoded: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_decoded_total",
			Help:      "Total number of documents decoded and validated",
		}, []string{"root"}),
		DecodeFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decode_failures_total",
			Help:      "Total number of documents that failed to decode or validate",
		}, []string{"kind"}),
		RecordsDecoded: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_decoded_total",
			Help:      "Total number of citation records decoded",
		}, []string{"root"}),
		DeletedCitations: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deleted_citations_total",
			Help:      "Total number of PMIDs listed for deletion",
		}),
		DocumentsEncoded: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_encoded_total",
			Help:      "Total number of documents encoded",
		}, []string{"root"}),
		SummariesWritten: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "summaries_written_total",
			Help:      "Total number of paper summaries written",
		}),
		DecodeDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "decode_duration_seconds",
			Help:      "Time spent decoding and validating a document",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
}

// RecordDecoded records a successfully decoded document.
func (m *Metrics) RecordDecoded(root string, records, deleted int, durationSeconds float64) {
	m.DocumentsDecoded.WithLabelValues(root).Inc()
	m.RecordsDecoded.WithLabelValues(root).Add(float64(records))
	m.DeletedCitations.Add(float64(deleted))
	m.DecodeDuration.Observe(durationSeconds)
}

// RecordDecodeFailed records a rejected document.
func (m *Metrics) RecordDecodeFailed(kind string, durationSeconds float64) {
	m.DecodeFailures.WithLabelValues(kind).Inc()
	m.DecodeDuration.Observe(durationSeconds)
}

// RecordEncoded records a document written as XML.
func (m *Metrics) RecordEncoded(root string) {
	m.DocumentsEncoded.WithLabelValues(root).Inc()
}

// RecordSummaries records paper summaries written.
func (m *Metrics) RecordSummaries(count int) {
	m.SummariesWritten.Add(float64(count))
}

// WriteTextfile writes every metric in the default registry to path in the
// text exposition format, for pickup by the node exporter textfile collector.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
