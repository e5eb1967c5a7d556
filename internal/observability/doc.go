// Package observability provides logging and metrics support for the medline
// tool.
//
// # Overview
//
// The observability package provides:
//
//   - Structured logging with zerolog
//   - Prometheus metrics for decoded, rejected and encoded documents
//   - Context helpers for propagating run and document fields
//
// # Logging
//
// Create a logger from configuration:
//
//	cfg := observability.LoggingConfig{
//	    Level:  "info",
//	    Format: "json",
//	    Output: "stderr",
//	}
//
//	logger := observability.NewLogger(cfg)
//	logger = observability.WithRunContext(logger, runID, "validate")
//
// # Metrics
//
// Metrics register with the default registry. The tool does not serve HTTP;
// write them for the node exporter textfile collector instead:
//
//	metrics := observability.NewMetrics("medline")
//	metrics.RecordDecoded("PubmedArticleSet", 30000, 0, elapsed.Seconds())
//	err := observability.WriteTextfile("/var/lib/node_exporter/medline.prom")
//
// # Context Helpers
//
//	ctx = logger.WithContext(ctx)
//	ctx = observability.WithRunID(ctx, runID, "convert")
//	ctx = observability.WithDocumentPath(ctx, path)
//
//	log := observability.LoggerFromContext(ctx)
//
// # Standard Fields
//
//   - run_id: identifier of one CLI invocation
//   - command: CLI subcommand
//   - path: input document path
//   - root: document root element
//   - pmid: PubMed identifier
package observability
