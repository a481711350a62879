// Package main is the entry point for deeplus.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/dshills/deeplus/internal/app"
	"github.com/dshills/deeplus/internal/config"
	"github.com/dshills/deeplus/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errExit ends the program with status 0 after -help or -version.
var errExit = errors.New("exit")

func main() {
	os.Exit(run())
}

func run() int {
	opts, err := parseFlags(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, errExit) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: deeplus needs an interactive terminal")
		return 1
	}

	// Create application
	application, err := app.New(opts)
	if config.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: config file %s not found\n", opts.ConfigPath)
		return 1
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Ensure cleanup on all exit paths
	defer application.Shutdown()

	terminal, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(terminal); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		<-signals
		application.Shutdown()
	}()

	if err := application.Run(); err != nil && !errors.Is(err, app.ErrQuit) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// parseFlags turns command-line arguments into application options. Flags
// that were not given leave the configured values untouched.
func parseFlags(args []string, stdout, stderr io.Writer) (app.Options, error) {
	opts := app.Options{Watch: true}

	var (
		apiURL, logLevel, logFile string
		windowSize                int
		showVersion, showHelp     bool
	)

	fs := flag.NewFlagSet("deeplus", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&apiURL, "api", "", "Home feed URL")
	fs.IntVar(&windowSize, "window-size", 0, "Tiles per page")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&logFile, "log-file", "", "Log file, or \"-\" to disable logging")
	fs.BoolVar(&opts.Offline, "offline", false, "Serve the catalog from the cache only")
	fs.BoolVar(&opts.NoCache, "no-cache", false, "Disable the response cache")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&showHelp, "help", false, "Show help message")
	fs.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "deeplus - browse a streaming home page from the terminal\n\n")
		fmt.Fprintf(stderr, "Usage: deeplus [options]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nKeys:\n")
		fmt.Fprintf(stderr, "  arrows / WASD   move\n")
		fmt.Fprintf(stderr, "  space / enter   select\n")
		fmt.Fprintf(stderr, "  r               refresh\n")
		fmt.Fprintf(stderr, "  q / ctrl+c      quit\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, errExit
		}
		return opts, err
	}

	if showHelp {
		fs.Usage()
		return opts, errExit
	}
	if showVersion {
		fmt.Fprintf(stdout, "deeplus %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return opts, errExit
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	overrides := map[string]any{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "api":
			overrides["api.url"] = apiURL
		case "window-size":
			overrides["nav.windowSize"] = windowSize
		case "log-level":
			overrides["logging.level"] = logLevel
		case "log-file":
			overrides["logging.file"] = logFile
		}
	})
	if len(overrides) > 0 {
		opts.Overrides = overrides
	}
	return opts, nil
}
