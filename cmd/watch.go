package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/binres-gen/binres-gen/internal/collector"
	"github.com/binres-gen/binres-gen/internal/config"
	"github.com/binres-gen/binres-gen/internal/ui"
	"github.com/binres-gen/binres-gen/internal/watcher"
)

// runWatch keeps the process resident, rerunning rebuild after each
// debounced burst of changes under sourceDir. Hidden directories stay out of
// the watch set. Returns when interrupted.
func runWatch(cfg *config.Config, sourceDir string, opts collector.Options, rebuild func() error) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := watcher.New(
		time.Duration(cfg.Filter.WatchDebounceMs)*time.Millisecond,
		func() {
			if err := rebuild(); err != nil {
				ui.PrintError("rebuild", err.Error())
			}
		},
		opts.HiddenDir,
	)
	if err != nil {
		return fmt.Errorf("Failed to start watcher: %v", err)
	}

	ui.PrintHeader(fmt.Sprintf("Watching %s for changes (Ctrl-C to stop)", sourceDir))
	return w.Run(ctx, sourceDir)
}
