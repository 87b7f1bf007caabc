package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"dayslot/internal/orchestrator"
	"dayslot/internal/watcher"
)

var (
	debounceSeconds int
	stableMs        int
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Rename continuously as new videos arrive",
	Long: `Performs one run, then watches the directory and performs another
complete run whenever a video or thumbnail is added. Temporary download
files (*.part, *.tmp, ...) are ignored. Stop with Ctrl+C.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := newOutput()
		cfg, err := loadConfig(out, args)
		if err != nil {
			return err
		}
		logger := newLogger(cfg.Verbose)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		orch := orchestrator.New(appFs, cfg, out)
		if _, err := orch.Run(); err != nil {
			return err
		}

		extensions := append([]string{cfg.MediaExtension}, cfg.ThumbnailExtensions...)
		w := watcher.New(cfg.Watch, appFs, extensions, func(ctx context.Context) (int, error) {
			summary, err := orch.Run()
			if summary == nil {
				return 0, err
			}
			return len(summary.Renames), err
		}).WithLogger(logger)

		if err := w.Start(ctx, cfg.Directory); err != nil {
			return err
		}
		out.Info("Watching %s (Ctrl+C to stop)", cfg.Directory)

		<-ctx.Done()
		summary := w.Stop()
		out.Info("Watch session: %d runs, %d renamed, %d failed in %s",
			summary.Runs, summary.Renames, summary.Failures, summary.Duration.Round(time.Second))
		return nil
	},
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
}

func init() {
	defaults := watcher.DefaultWatchConfig()
	watchCmd.Flags().IntVar(&debounceSeconds, "debounce", defaults.DebounceSeconds, "seconds to wait for activity to settle before a run")
	watchCmd.Flags().IntVar(&stableMs, "stable-ms", defaults.StableThresholdMs, "milliseconds a new file's size must stay unchanged")
	rootCmd.AddCommand(watchCmd)
}
