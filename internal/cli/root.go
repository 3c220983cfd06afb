package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"concursos/internal/concursos/catalog"
	"concursos/internal/concursos/service"
	"concursos/internal/platform/logger"
)

const (
	formatPretty = "pretty"
	formatJSON   = "json"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// options holds the persistent flags shared by every subcommand.
type options struct {
	seed    string
	latency time.Duration
	debug   bool
	format  string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "concursos",
		Short:        "Match candidates and public job openings by profession",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			switch opts.format {
			case formatPretty, formatJSON:
				return nil
			default:
				return fmt.Errorf("unsupported format %q (expected pretty|json)", opts.format)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.seed, "seed", "", "Seed YAML file (defaults to the bundled dataset)")
	cmd.PersistentFlags().DurationVar(&opts.latency, "latency", service.DefaultLatency, "Simulated delay per lookup")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Log every lookup to stderr")
	cmd.PersistentFlags().StringVar(&opts.format, "format", formatPretty, "Output format: pretty|json")

	cmd.AddCommand(openingsCmd(opts), candidatesCmd(opts), cpfCmd(opts))
	return cmd
}

// service loads the catalog and builds a lookup service for one command run.
func (o *options) service(cmd *cobra.Command) (*service.Service, error) {
	cat, err := catalog.Open(o.seed)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	level := slog.LevelWarn
	if o.debug {
		level = slog.LevelDebug
	}
	log := logger.NewWithWriter(cmd.ErrOrStderr(), level)

	return service.New(cat,
		service.WithLatency(o.latency),
		service.WithLogger(log),
	), nil
}

func (o *options) printer(cmd *cobra.Command) *printer {
	w := cmd.OutOrStdout()
	return &printer{w: w, format: o.format, theme: NewTheme(w)}
}
