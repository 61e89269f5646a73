package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rickgao/poe-ninja-cli/internal/api"
	"github.com/rickgao/poe-ninja-cli/internal/config"
	"github.com/rickgao/poe-ninja-cli/internal/display"
	"github.com/rickgao/poe-ninja-cli/internal/version"
)

// app holds what a command needs once flags and config are resolved.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	format     string
	verbose    bool

	cfg      *config.Config
	logger   *slog.Logger
	renderer *display.Renderer
	client   *api.Client
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "poe-ninja",
		Short: "Path of Exile prices from poe.ninja",
		Long: `Fetches currency and item price overviews from poe.ninja for a league,
filters them by name or chaos value and prints them as a table or JSON.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default is $HOME/"+config.DefaultFileName+")")
	root.PersistentFlags().StringVar(&a.format, "format", config.DefaultFormat, "output format: table or json")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newCurrencyCmd(a),
		newItemCmd(a),
		newLeaguesCmd(a),
		newTypesCmd(a),
		newVersionCmd(a),
	)
	return root
}

// setup loads configuration and builds the logger, renderer and client.
// Explicit flags take precedence over the config file.
func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Logging.SlogLevel()
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)

	formatName := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		formatName = a.format
	}
	format, err := display.ParseFormat(formatName)
	if err != nil {
		return err
	}
	a.renderer = display.NewRenderer(a.out, format)

	opts := []api.ClientOption{
		api.WithTimeout(cfg.API.Timeout),
		api.WithLogger(a.logger),
	}
	if cfg.API.UserAgent != "" {
		opts = append(opts, api.WithUserAgent(cfg.API.UserAgent))
	}
	a.client = api.NewClient(cfg.API.BaseURL, opts...)

	a.logger.Debug("configuration loaded",
		"config", a.configPath,
		"base_url", cfg.API.BaseURL,
		"timeout", cfg.API.Timeout,
		"format", format,
	)
	return nil
}

// loadConfig reads --config when given. Otherwise ~/.poe-ninja.yaml is used
// if present and the defaults if not.
func (a *app) loadConfig() (*config.Config, error) {
	if a.configPath != "" {
		return config.LoadAndValidate(a.configPath)
	}

	path, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}
	a.configPath = path
	cfg, err := config.LoadOptional(path)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// stringFlag returns the flag value when set on the command line, else def.
func stringFlag(cmd *cobra.Command, name, value, def string) string {
	if cmd.Flags().Changed(name) {
		return value
	}
	return def
}

// optionalString returns nil unless the flag was set.
func optionalString(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

// optionalFloat returns nil unless the flag was set.
func optionalFloat(cmd *cobra.Command, name string, value float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}
