package cmd

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"dayslot/internal/config"
	"dayslot/internal/output"
	"dayslot/internal/thumbnail"
)

var (
	appFs  afero.Fs  = afero.NewOsFs()
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	mediaExt  string
	thumbExts []string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "dayslot [directory]",
	Short: "Give same-day videos distinct episode dates",
	Long: `dayslot renames video files that share a calendar day (MMDD) so each
one gets its own S<year>E<mmdd> episode name.

The alphabetically first file of each day keeps its name. Every later one
is moved to the nearest free day, searching forward up to 399 days and then
backward. Files with a matching thumbnail image and files without a date
in their name are left alone.

Examples:
  dayslot                       # Rename in the current directory
  dayslot ~/Videos/vlog -v      # Print a line for every file
  dayslot status ~/Videos/vlog  # Show what would be renamed`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRename,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		newOutput().Error("Error: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&mediaExt, "ext", config.DefaultMediaExtension, "extension of the video files to rename")
	rootCmd.PersistentFlags().StringSliceVar(&thumbExts, "thumb-ext", thumbnail.DefaultExtensions(), "thumbnail image extensions")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print a line for every file")
}

// loadConfig builds the configuration from flags and the optional
// directory argument, prints warnings to out and rejects invalid settings.
func loadConfig(out *output.Output, args []string) (*config.Configuration, error) {
	cfg := config.DefaultConfiguration()
	if len(args) > 0 {
		cfg.Directory = args[0]
	}
	cfg.MediaExtension = mediaExt
	cfg.ThumbnailExtensions = thumbExts
	cfg.Verbose = verbose
	cfg.Watch.DebounceSeconds = debounceSeconds
	cfg.Watch.StableThresholdMs = stableMs

	result := config.ValidateConfig(appFs, cfg)
	for _, w := range result.Warnings {
		out.Error("Warning: %s: %s", w.Field, w.Message)
	}
	if !result.Valid {
		return nil, cfg.Validate(appFs)
	}
	return cfg, nil
}

func newOutput() *output.Output {
	oc := output.DefaultConfig()
	oc.Verbose = verbose
	if stdout != os.Stdout {
		oc.IsTTY = false
	}
	oc.Writer = stdout
	oc.ErrWriter = stderr
	return output.New(oc)
}
