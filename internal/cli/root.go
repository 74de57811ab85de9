package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/roach88/brainz/internal/config"
	"github.com/roach88/brainz/internal/metrics"
	"github.com/roach88/brainz/internal/rules"
	"github.com/roach88/brainz/internal/service"
	"github.com/roach88/brainz/internal/transport"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
	Metrics    bool

	// Dial builds the ws/2 transport from the loaded config.
	Dial func(cfg config.Config) (transport.Invoker, error)
	// DialCoverArt builds the Cover Art Archive transport.
	DialCoverArt func(cfg config.Config) (transport.Invoker, error)
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the brainz CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{Dial: DialHTTP, DialCoverArt: DialCoverArtHTTP})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brainz",
		Short: "brainz - typed MusicBrainz catalog client",
		Long: `Build, validate and run MusicBrainz ws/2 requests.

Search queries are rendered locally and checked against the include,
status and type rules before anything is sent.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output and debug logging")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/brainz/config.yaml)")
	cmd.PersistentFlags().BoolVar(&opts.Metrics, "metrics", false, "print collected metrics to stderr on exit")

	cmd.AddCommand(NewQueryCommand(opts))
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewLookupCommand(opts))
	cmd.AddCommand(NewCoverArtCommand(opts))

	return cmd
}

// DialHTTP builds the HTTP transport described by cfg.
func DialHTTP(cfg config.Config) (transport.Invoker, error) {
	return transport.NewHTTPClient(transport.Options{
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
	})
}

// DialCoverArtHTTP builds the Cover Art Archive transport described by cfg.
func DialCoverArtHTTP(cfg config.Config) (transport.Invoker, error) {
	return transport.NewHTTPClient(transport.Options{
		BaseURL:   cfg.CoverArtURL,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
	})
}

// session is the per-command runtime built from the global flags.
type session struct {
	opts     *RootOptions
	cfg      config.Config
	tables   *rules.Tables
	svc      *service.Service
	registry *prometheus.Registry
	out      *OutputFormatter
}

func (o *RootOptions) open(cmd *cobra.Command) (*session, error) {
	out := &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}

	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		_ = out.Error(ErrCodeConfig, err.Error(), nil)
		return nil, WrapExitError(ExitCommandError, "load config", err)
	}

	tables, err := loadTables(cfg)
	if err != nil {
		_ = out.Error(ErrCodeConfig, err.Error(), nil)
		return nil, WrapExitError(ExitCommandError, "load rules", err)
	}

	invoker, err := o.Dial(cfg)
	if err != nil {
		_ = out.Error(ErrCodeConfig, err.Error(), nil)
		return nil, WrapExitError(ExitCommandError, "build transport", err)
	}

	svcOpts := []service.Option{
		service.WithLogger(newLogger(cfg, o.Verbose, cmd.ErrOrStderr())),
	}
	if o.DialCoverArt != nil {
		art, err := o.DialCoverArt(cfg)
		if err != nil {
			_ = out.Error(ErrCodeConfig, err.Error(), nil)
			return nil, WrapExitError(ExitCommandError, "build cover art transport", err)
		}
		svcOpts = append(svcOpts, service.WithCoverArt(art))
	}

	registry := prometheus.NewRegistry()
	svcOpts = append(svcOpts, service.WithObserver(metrics.New(registry, metrics.Options{})))
	svc := service.New(invoker, tables, svcOpts...)

	out.VerboseLog("config: base_url=%s timeout=%s", cfg.BaseURL, cfg.Timeout)
	return &session{opts: o, cfg: cfg, tables: tables, svc: svc, registry: registry, out: out}, nil
}

func loadTables(cfg config.Config) (*rules.Tables, error) {
	if cfg.RulesFile != "" {
		return rules.LoadFile(cfg.RulesFile)
	}
	return rules.Default()
}

func newLogger(cfg config.Config, verbose bool, w io.Writer) *slog.Logger {
	level := cfg.Log.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	hopts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(slog.NewTextHandler(w, hopts))
}

// close prints the gathered metrics when --metrics is set.
func (s *session) close() {
	if !s.opts.Metrics {
		return
	}
	families, err := s.registry.Gather()
	if err != nil {
		s.out.VerboseLog("gather metrics: %v", err)
		return
	}
	w := s.out.GetErrWriter()
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			s.out.VerboseLog("write metrics: %v", err)
			return
		}
	}
}
