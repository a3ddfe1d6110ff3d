package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/go-audio/riff"
	"github.com/spf13/cobra"
)

var chunksCmd = &cobra.Command{
	Use:   "chunks <file.wav>",
	Short: "Walk the RIFF chunk tree of a WAV file",
	Long: `Walk the RIFF container chunk by chunk and print one row per chunk.

Unlike 'info' this command does not validate the PCM format, so it also
works on files the engine refuses to open (extra chunks, non-PCM data).

Example:
  wavetool chunks speech.wav`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		raw, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		defer raw.Close()

		p := riff.New(raw)
		if err := p.ParseHeaders(); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}

		slog.Debug("parsed container", "path", path, "id", string(p.ID[:]), "size", p.Size)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			styles.Label.Render("ID"),
			styles.Label.Render("SIZE"),
			styles.Label.Render("NOTE"))
		fmt.Fprintf(w, "%s\t%d\t%s\n",
			string(p.ID[:]), p.Size,
			styles.Dim.Render("form "+string(p.Format[:])))

		for {
			chunk, err := p.NextChunk()
			if err == io.EOF {
				break
			}
			if err != nil {
				return fmt.Errorf("walking %s: %w", path, err)
			}

			note := ""
			if chunk.Size%2 != 0 {
				note = styles.Warn.Render("odd size, padded")
			}
			fmt.Fprintf(w, "%s\t%d\t%s\n", string(chunk.ID[:]), chunk.Size, note)

			chunk.Drain()
		}

		return w.Flush()
	},
}
