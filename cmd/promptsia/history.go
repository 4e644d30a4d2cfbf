package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/sant0-9/promptsia/internal/export"
	"github.com/sant0-9/promptsia/internal/history"
	"github.com/sant0-9/promptsia/internal/logging"
)

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List generated prompts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			items := history.NewStore(cfg.HistoryPath()).Recent(limit)
			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "No hay prompts en el historial aún.")
				return nil
			}

			for _, item := range items {
				fmt.Fprintln(out, history.Summary(item.Entry, item.Number))
				fmt.Fprintf(out, "  📝 %s\n", history.Snippet(item.Entry.Description, 100))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum entries to show, 0 for all")
	return cmd
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export [N]",
		Short: "Export history entry #N (default: the latest) to exports/",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := 0
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil || v < 1 {
					return fmt.Errorf("invalid entry number %q", args[0])
				}
				n = v
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)

			entry, err := history.NewStore(cfg.HistoryPath()).Get(n)
			if err != nil {
				return err
			}

			path, err := export.Write(cfg.Dir, entry, time.Now())
			if err != nil {
				return err
			}
			logger.Debug("exported", "entry", n, "path", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Exportado a: %s\n", path)
			return nil
		},
	}
}
