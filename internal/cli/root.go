package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pipeloop",
	Short: "Find the closed pipe loop in a maze and measure it",
	Long: `pipeloop reads a pipe maze (one row per line, glyphs | - L J 7 F . S),
resolves the shape hidden under the start tile S, walks the closed loop
through it and reports the distance to its farthest tile and the number
of tiles it encloses.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("pipeloop version {{.Version}}\n")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log candidate start shapes to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newLogger writes text records to w; debug level when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
