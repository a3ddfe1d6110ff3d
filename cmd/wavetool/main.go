// Package main provides the wavetool CLI.
//
// Usage:
//
//	wavetool [flags] <command> [args]
//
// Commands:
//
//	info     - Print metadata of a WAV file
//	chunks   - Walk the RIFF chunk tree of a WAV file
//	gen      - Generate a sine tone WAV file
//	resample - Resample a WAV file to mono 16-bit PCM
package main

import (
	"fmt"
	"os"

	"github.com/ik5/wavfile/cmd/wavetool/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
