package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wavetool",
	Short: "Inspect, generate and resample WAV files",
	Long: `wavetool - a command line interface for PCM WAV files.

Commands:
  info     - print channel count, frame count, sample rate and bit depth
  chunks   - walk the RIFF chunk tree and print id/size rows
  gen      - synthesize a sine tone into a new WAV file
  resample - convert any PCM WAV file to mono 16-bit at a target rate

Examples:
  wavetool info speech.wav
  wavetool chunks speech.wav
  wavetool gen tone.wav --freq 440 --seconds 2 --rate 44100 --bits 16
  wavetool resample speech.wav phone.wav --rate 8000
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(chunksCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(resampleCmd)
}

func initLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
