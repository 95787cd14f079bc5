package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/five82/ghactivity/internal/app"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := pflag.NewFlagSet("ghactivity", pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: ghactivity [flags] <username>\n")
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "override config path (optional)")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error (optional)")
	interactive := fs.Bool("tui", false, "browse events interactively")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Printf("Error: %v\n", err)
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		fmt.Println("Error: expected exactly one username argument")
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		Username:    fs.Arg(0),
		ConfigPath:  *configPath,
		LogLevel:    *logLevel,
		Interactive: *interactive,
	}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}
	return 0
}
