package commands

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ik5/wavfile/formats/wav"
)

var infoCmd = &cobra.Command{
	Use:   "info <file.wav>",
	Short: "Print metadata of a WAV file",
	Long: `Print the format metadata of a PCM WAV file.

The file is opened through the engine, so anything info accepts is also
readable sample by sample.

Example:
  wavetool info speech.wav`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		f, err := wav.Open(path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()

		slog.Debug("opened file", "path", path, "summary", f.String())

		duration := float64(f.Frames()) / float64(f.SampleRate())

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		row := func(label, value string) {
			fmt.Fprintf(w, "%s\t%s\n", styles.Label.Render(label), styles.Value.Render(value))
		}

		row("Path", f.Path())
		row("Format", f.Format().String())
		row("Channels", fmt.Sprintf("%d", f.Channels()))
		row("Frames", fmt.Sprintf("%d", f.Frames()))
		row("Sample rate", fmt.Sprintf("%d Hz", f.SampleRate()))
		row("Bits", fmt.Sprintf("%d", f.ValidBits()))
		row("Block align", fmt.Sprintf("%d bytes", f.BlockAlign()))
		row("Duration", fmt.Sprintf("%.3f s", duration))

		return w.Flush()
	},
}
