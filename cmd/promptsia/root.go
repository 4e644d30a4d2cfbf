package main

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sant0-9/promptsia/internal/config"
	"github.com/sant0-9/promptsia/internal/generator"
	"github.com/sant0-9/promptsia/internal/history"
	"github.com/sant0-9/promptsia/internal/llm"
	"github.com/sant0-9/promptsia/internal/logging"
	"github.com/sant0-9/promptsia/internal/tui"
)

type rootOptions struct {
	dir      string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:     "promptsia",
		Short:   "Generador de prompts para imágenes y videos",
		Long:    "Genera prompts positivos y negativos optimizados para herramientas de generación de imágenes y videos con IA.",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
		SilenceUsage: true,
	}

	pflags := cmd.PersistentFlags()
	pflags.StringVar(&opts.dir, "dir", "", "data directory holding api_key.txt, config.yaml, history.json and exports/ (default: the executable's directory)")
	pflags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	cmd.AddCommand(
		newGenerateCmd(opts),
		newInstructionCmd(),
		newHistoryCmd(opts),
		newExportCmd(opts),
	)
	cmd.CompletionOptions.HiddenDefaultCmd = true

	return cmd
}

// loadConfig resolves the data directory and applies the log level flag.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	dir := o.dir
	if dir == "" {
		dir = config.DefaultDir()
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	return cfg, nil
}

// newGenerator connects the configured provider.
func newGenerator(ctx context.Context, cfg *config.Config, apiKey string, store *history.Store, logger *log.Logger) (*generator.Generator, error) {
	provider, err := llm.NewProvider(ctx, cfg, apiKey)
	if err != nil {
		return nil, err
	}
	return generator.New(provider, cfg, store, logger), nil
}

// loadAPIKey wraps a missing key with the setup guidance.
func loadAPIKey(dir string) (string, error) {
	key, err := config.LoadAPIKey(dir)
	if errors.Is(err, config.ErrMissingAPIKey) {
		return "", fmt.Errorf("%w\n\n%s", err, config.MissingKeyHelp(dir))
	}
	return key, err
}

func runTUI(ctx context.Context, opts *rootOptions) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := logging.OpenFile(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		// Read-only data dirs still get a working front end.
		logger = logging.Discard()
	} else {
		defer closer.Close()
	}

	apiKey, keyErr := config.LoadAPIKey(cfg.Dir)
	if keyErr != nil {
		logger.Error("api key unavailable", "dir", cfg.Dir, "err", keyErr)
	}

	store := history.NewStore(cfg.HistoryPath())
	app := tui.NewApp(tui.Options{
		Config: cfg,
		APIKey: apiKey,
		KeyErr: keyErr,
		Store:  store,
		Logger: logger,
		Connect: func(c *config.Config) (tui.Generator, error) {
			gen, err := newGenerator(ctx, c, apiKey, store, logger)
			if err != nil {
				return nil, err
			}
			return gen, nil
		},
	})

	logger.Info("starting", "version", version, "dir", cfg.Dir, "provider", cfg.Provider, "model", cfg.Model)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
