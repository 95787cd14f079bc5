package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/five82/ghactivity/internal/config"
	"github.com/five82/ghactivity/internal/github"
	"github.com/five82/ghactivity/internal/observability"
	"github.com/five82/ghactivity/internal/ui"
)

// Options configure one ghactivity invocation.
type Options struct {
	Username    string
	ConfigPath  string
	LogLevel    string // overrides the config file when set
	Interactive bool

	Stdout io.Writer // defaults to os.Stdout
	Stderr io.Writer // defaults to os.Stderr; receives log output
	Dial   github.DialFunc
}

// Run fetches the user's public events once and prints them, or opens the
// interactive browser when requested. Pipeline errors are returned unwrapped
// so the caller can print them verbatim.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	level := cfg.LogLevel
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logger := observability.NewLogger(level, stderr)

	if err := ValidateUsername(opts.Username); err != nil {
		return err
	}

	client := github.NewClient(github.Options{
		Host:      cfg.Host,
		Port:      cfg.Port,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
		Dial:      opts.Dial,
		Logger:    &logger,
	})
	logger.Debug().Str("address", cfg.Address()).Str("user", opts.Username).Msg("fetching events")

	if opts.Interactive {
		return ui.Browse(ui.BrowseOptions{
			Context:   ctx,
			Fetcher:   client,
			Username:  opts.Username,
			ThemeName: cfg.Theme,
		})
	}

	events, err := client.FetchEvents(ctx, opts.Username)
	if err != nil {
		logger.Debug().Str("kind", github.KindOf(err).String()).Msg("fetch failed")
		return err
	}
	return ui.NewRenderer(stdout, cfg.Theme).Print(stdout, events)
}
