package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helixir/medline/internal/observability"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check that each file decodes and satisfies the record model",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := a.proc.Validate(a.ctx, args)

			out := cmd.OutOrStdout()
			failed := 0
			for _, r := range results {
				if !r.OK() {
					failed++
					fmt.Fprintf(out, "FAIL\t%s\t%v\n", r.Path, r.Err)
					continue
				}
				fmt.Fprintf(out, "OK\t%s\t%s\t%d\n", r.Path, r.Root, r.Records)
				l := observability.WithDocumentContext(a.logger, r.Path, r.Root)
				l.Info().Int("records", r.Records).Msg("document valid")
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d files", errValidation, failed, len(results))
			}
			return nil
		},
	}
}

func newConvertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Re-encode a document as namespaced XML or as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, closeOut, err := a.output(cmd)
			if err != nil {
				return err
			}
			if err := a.proc.Convert(a.ctx, args[0], w); err != nil {
				closeOut()
				return err
			}
			return closeOut()
		},
	}
	cmd.Flags().StringVar(&a.format, "format", "", "output format (xml, json); overrides output.format")
	cmd.Flags().StringVarP(&a.outputPath, "output", "o", "", "write to this file instead of stdout")
	return cmd
}

func newSummaryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary FILE...",
		Short: "Write one JSON paper summary per article or citation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, closeOut, err := a.output(cmd)
			if err != nil {
				return err
			}
			total := 0
			for _, path := range args {
				n, err := a.proc.Summarize(a.ctx, path, w)
				total += n
				if err != nil {
					closeOut()
					return err
				}
			}
			a.logger.Info().Int("papers", total).Int("files", len(args)).Msg("summaries written")
			return closeOut()
		},
	}
	cmd.Flags().StringVarP(&a.outputPath, "output", "o", "", "write to this file instead of stdout")
	return cmd
}

func newPMIDsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pmids FILE...",
		Short: "List PMIDs, one per line; deleted citations are prefixed with -",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if _, err := a.proc.PMIDs(a.ctx, path, cmd.OutOrStdout()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newDupesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dupes FILE...",
		Short: "Report citations that repeat an earlier one by identifier or by title and authors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.proc.Duplicates(a.ctx, args, cmd.OutOrStdout())
			return err
		},
	}
}
