// Package main is the entrypoint of ytcli.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ytcli/internal/cfg"
	"ytcli/internal/domain/paths"
	"ytcli/internal/utils/logging"
)

// main is the main entrypoint of the program (duh!).
func main() {
	os.Exit(run())
}

func run() int {
	if err := paths.InitProgFilesDirs(); err != nil {
		fmt.Fprintf(os.Stderr, "ytcli: %v, continuing without history and log file\n", err)
	} else if err := logging.SetupLogging(paths.YtcliLogFilePath); err != nil {
		fmt.Fprintf(os.Stderr, "ytcli: could not set up logging, proceeding without: %v\n", err)
	}
	defer logging.Close()

	// SIGINT/SIGTERM cancel the download, which kills yt-dlp.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return cfg.Execute(ctx, os.Args[1:])
}
