package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/helixir/medline/internal/config"
	"github.com/helixir/medline/internal/dedup"
	"github.com/helixir/medline/internal/observability"
	"github.com/helixir/medline/internal/processor"
)

// app holds state shared by every subcommand once flags are parsed.
type app struct {
	configPath  string
	logLevel    string
	metricsFile string
	format      string
	outputPath  string

	cfg    *config.Config
	logger zerolog.Logger
	ctx    context.Context
	proc   *processor.Processor

	// logOutput overrides the configured log destination.
	logOutput io.Writer
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "medline",
		Short: "Validate, convert and summarize MEDLINE/PubMed XML files",
		Long: "medline reads PubmedArticleSet, MedlineCitationSet and the standalone eutils " +
			"documents from local files (\"-\" for stdin, .gz decompressed), validates them " +
			"against the record model and writes XML, JSON or PMID listings.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default: config.yaml in ., ./config, /etc/medline)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level override (trace, debug, info, warn, error)")
	flags.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile on exit")

	root.AddCommand(
		newValidateCmd(a),
		newConvertCmd(a),
		newSummaryCmd(a),
		newPMIDsCmd(a),
		newDupesCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.metricsFile != "" {
		cfg.Metrics.TextfilePath = a.metricsFile
	}
	if a.format != "" {
		cfg.Output.Format = a.format
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	a.cfg = cfg

	runID := uuid.NewString()
	if a.logOutput != nil {
		a.logger = observability.NewLoggerTo(cfg.Logging.Observability(), a.logOutput)
	} else {
		a.logger = observability.NewLogger(cfg.Logging.Observability())
	}
	a.logger = observability.WithRunContext(a.logger, runID, cmd.Name())

	var metrics *observability.Metrics
	if cfg.Metrics.Enabled {
		metrics = observability.NewMetrics(cfg.Metrics.Namespace)
	}

	a.proc = processor.New(processor.Config{
		Indent:  cfg.Output.Indent,
		Format:  cfg.Output.Format,
		Metrics: metrics,
		Stdin:   cmd.InOrStdin(),
		Dedup: dedup.CheckerConfig{
			AuthorThreshold: cfg.Dedup.AuthorThreshold,
			MinTitleLength:  cfg.Dedup.MinTitleLength,
		},
	})

	ctx := observability.WithRunID(cmd.Context(), runID, cmd.Name())
	a.ctx = a.logger.WithContext(ctx)

	a.logger.Debug().Str("config", a.configPath).Msg("medline starting")
	return nil
}

// finish writes the metrics textfile if one is configured. It runs even when
// the command failed so that failure counts are exported.
func (a *app) finish() error {
	if a.cfg == nil || !a.cfg.Metrics.Enabled || a.cfg.Metrics.TextfilePath == "" {
		return nil
	}
	if err := observability.WriteTextfile(a.cfg.Metrics.TextfilePath); err != nil {
		a.logger.Error().Err(err).Msg("failed to write metrics")
		return err
	}
	return nil
}

// output returns the destination for command output: the --output file when
// set, otherwise cmd's stdout.
func (a *app) output(cmd *cobra.Command) (io.Writer, func() error, error) {
	if a.outputPath == "" || a.outputPath == processor.Stdin {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(a.outputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}

// errValidation is returned by validate when at least one file failed.
var errValidation = errors.New("validation failed")
