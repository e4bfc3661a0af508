// Package main is the entry point for the vimdown editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/abeckett/vimdown/internal/app"
	"github.com/abeckett/vimdown/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", config.DefaultPath(), "config file (TOML or YAML)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("vimdown %s (%s)\n", version, commit)
		return 0
	}

	opts, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	var path string
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	application, err := app.New(path, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if *configPath != "" {
		// Live reload is best effort; editing works without it.
		_ = application.WatchConfig(*configPath)
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		application.Quit()
	}()

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: vimdown [flags] [file]\n\n")
	fmt.Fprintf(os.Stderr, "A modal text editor.\n\nFlags:\n")
	flag.PrintDefaults()
}
