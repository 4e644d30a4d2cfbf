package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sant0-9/promptsia/internal/generator"
	"github.com/sant0-9/promptsia/internal/history"
	"github.com/sant0-9/promptsia/internal/logging"
	"github.com/sant0-9/promptsia/internal/prompt"
)

// requestFlags are the request-building flags shared by generate and instruction.
type requestFlags struct {
	media    string
	category string
	style    string
	extras   []string
}

func (f *requestFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.media, "media", "m", string(prompt.MediaImage), "media type: imagen or video")
	flags.StringVarP(&f.category, "category", "c", "", "category value or label (default: generate from scratch)")
	flags.StringVarP(&f.style, "style", "s", prompt.DefaultStyle, "style value or label")
	flags.StringArrayVarP(&f.extras, "extra", "e", nil, "category field as key=value, repeatable")
}

// build turns flags and the description arguments into a request. Category
// fields start from their defaults and are overridden by --extra.
func (f *requestFlags) build(args []string) (prompt.Request, error) {
	media, ok := prompt.ParseMediaType(f.media)
	if !ok {
		return prompt.Request{}, fmt.Errorf("unknown media type %q: use imagen or video", f.media)
	}

	category := prompt.DefaultCategory(media)
	if f.category != "" {
		c, ok := prompt.ParseCategory(media, f.category)
		if !ok {
			return prompt.Request{}, fmt.Errorf("unknown %s category %q", media, f.category)
		}
		category = c
	}

	extras := prompt.DefaultExtras(media, category)
	for _, kv := range f.extras {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return prompt.Request{}, fmt.Errorf("invalid --extra %q: want key=value", kv)
		}
		extras[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	if v, ok := extras[prompt.FieldAspect]; ok {
		extras[prompt.FieldAspect] = prompt.AspectRatio(v)
	}

	return prompt.Request{
		Media:       media,
		Category:    category,
		Description: strings.Join(args, " "),
		Style:       prompt.ParseStyle(f.style),
		Extras:      extras,
	}, nil
}

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	var (
		flags    requestFlags
		doExport bool
	)

	cmd := &cobra.Command{
		Use:   "generate DESCRIPTION...",
		Short: "Generate a positive and negative prompt",
		Example: `  promptsia generate un gato astronauta
  promptsia generate -m video -c camera_movement -e movimiento_camara=Dolly una calle de noche`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.build(args)
			if err != nil {
				return err
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)

			apiKey, err := loadAPIKey(cfg.Dir)
			if err != nil {
				return err
			}

			gen, err := newGenerator(cmd.Context(), cfg, apiKey, history.NewStore(cfg.HistoryPath()), logger)
			if err != nil {
				return err
			}

			entry, err := gen.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), entry)

			if doExport {
				path, err := gen.Export(*entry)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nExportado a: %s\n", path)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&doExport, "export", "x", false, "also write the result to exports/")

	return cmd
}

func newInstructionCmd() *cobra.Command {
	var flags requestFlags

	cmd := &cobra.Command{
		Use:   "instruction DESCRIPTION...",
		Short: "Print the instruction that would be sent, without calling any API",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.build(args)
			if err != nil {
				return err
			}

			instruction, err := generator.Instruction(req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), instruction)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func printResult(w io.Writer, entry *history.Entry) {
	fmt.Fprintln(w, "POSITIVE:")
	fmt.Fprintln(w, entry.Positive)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "NEGATIVE:")
	fmt.Fprintln(w, entry.Negative)
}
