package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/wavfile"
	"github.com/ik5/wavfile/formats/wav"
)

var resampleRate int

var resampleCmd = &cobra.Command{
	Use:   "resample <in.wav> <out.wav>",
	Short: "Resample a WAV file to mono 16-bit PCM",
	Long: `Convert any PCM WAV file to mono 16-bit at a target sample rate.

The source streams through a cubic-interpolation resampler and a mono
mixer, and the result is written to a temporary sibling of the output
path and renamed into place on success.

Example:
  wavetool resample speech.wav phone.wav --rate 8000`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inPath, outPath := args[0], args[1]

		if resampleRate <= 0 {
			return fmt.Errorf("--rate must be positive, got %d", resampleRate)
		}

		f, err := wav.Open(inPath)
		if err != nil {
			return fmt.Errorf("opening %s: %w", inPath, err)
		}

		slog.Debug("resampling",
			"in", inPath, "out", outPath,
			"from", f.SampleRate(), "to", resampleRate,
			"channels", f.Channels(), "frames", f.Frames())

		// Source owns the session; the pipeline closes it on drain.
		src := f.Source()
		pcm16, rate, err := wavfile.ResampleToMono16(src, resampleRate, 4096)
		src.Close()
		if err != nil {
			return fmt.Errorf("resampling %s: %w", inPath, err)
		}

		tmp := tmpSibling(outPath)
		if err := wavfile.WriteMono16(tmp, rate, pcm16); err != nil {
			os.Remove(tmp)
			return fmt.Errorf("writing %s: %w", tmp, err)
		}

		if err := os.Rename(tmp, outPath); err != nil {
			os.Remove(tmp)
			return fmt.Errorf("renaming into place: %w", err)
		}

		fmt.Printf("%s %s\n", styles.Label.Render("Wrote"), outPath)
		fmt.Printf("%s %d samples at %d Hz\n", styles.Dim.Render("      "), len(pcm16), rate)

		return nil
	},
}

func init() {
	resampleCmd.Flags().IntVar(&resampleRate, "rate", 8000, "target sample rate in Hz")
}
