// SPDX-License-Identifier: EPL-2.0

package wavfile_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/wavfile"
	"github.com/ik5/wavfile/audiofile"
	"github.com/ik5/wavfile/formats/wav"
	"github.com/ik5/wavfile/internal/wavtest"
)

// Example_basicUsage demonstrates the most common use case:
// writing a WAV file, reopening it, and reading the samples back.
func Example_basicUsage() {
	dir, _ := os.MkdirTemp("", "wavfile")
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "tone.wav")

	// Write a short mono 16-bit file in one call
	samples := []int16{100, -100, 200, -200, 300, -300}
	if err := wavfile.WriteMono16(path, 8000, samples); err != nil {
		fmt.Printf("write error: %v\n", err)
		return
	}

	// Reopen and inspect it
	f, err := wav.Open(path)
	if err != nil {
		fmt.Printf("open error: %v\n", err)
		return
	}
	defer f.Close()

	fmt.Printf("Sample rate: %d Hz\n", f.SampleRate())
	fmt.Printf("Channels: %d\n", f.Channels())
	fmt.Printf("Frames: %d\n", f.Frames())

	// Read the samples back
	got := make([]int16, f.Frames())
	n, _ := f.ReadInt16(got)
	fmt.Printf("Read %d frames: %v\n", n, got[:n])
	// Output:
	// Sample rate: 8000 Hz
	// Channels: 1
	// Frames: 6
	// Read 6 frames: [100 -100 200 -200 300 -300]
}

// Example_resampleToMono16 shows the file-to-file resampling flow.
func Example_resampleToMono16() {
	dir, _ := os.MkdirTemp("", "wavfile")
	defer os.RemoveAll(dir)
	inPath := filepath.Join(dir, "in.wav")
	outPath := filepath.Join(dir, "out.wav")

	// Simulate an input recording: 1 second of silence at 44.1kHz
	wavfile.WriteMono16(inPath, 44100, make([]int16, 44100))

	// Open it and run the pipeline: resample to 8kHz, mix to mono
	in, err := wav.Open(inPath)
	if err != nil {
		fmt.Printf("open error: %v\n", err)
		return
	}

	pcm16, rate, err := wavfile.ResampleToMono16(in.Source(), 8000, 4096)
	if err != nil {
		fmt.Printf("resample error: %v\n", err)
		return
	}
	in.Close()

	// Write the result
	if err := wavfile.WriteMono16(outPath, rate, pcm16); err != nil {
		fmt.Printf("write error: %v\n", err)
		return
	}

	out, _ := wav.Open(outPath)
	defer out.Close()
	fmt.Printf("Input: 44100 Hz, output: %d Hz\n", out.SampleRate())
	fmt.Printf("Output duration: %.1f seconds\n", float64(out.Frames())/float64(out.SampleRate()))
	// Output:
	// Input: 44100 Hz, output: 8000 Hz
	// Output duration: 1.0 seconds
}

// Example_registry demonstrates opening files through the format registry.
func Example_registry() {
	dir, _ := os.MkdirTemp("", "wavfile")
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "speech.wav")
	wavfile.WriteMono16(path, 16000, make([]int16, 16000))

	// Register the WAV engine for the Wave format
	reg := audiofile.NewRegistry()
	reg.Register(audiofile.Wave, audiofile.OpenerFunc(func(path string) (audiofile.File, error) {
		return wav.Open(path)
	}))

	// The registry detects the format from the extension
	f, err := reg.Open(path)
	if err != nil {
		fmt.Printf("open error: %v\n", err)
		return
	}
	defer f.Close()

	fmt.Printf("Format: %s\n", f.Format())
	fmt.Printf("State: %s\n", f.State())
	fmt.Printf("Duration: %.1f seconds\n", float64(f.Frames())/float64(f.SampleRate()))
	// Output:
	// Format: WAVE
	// State: reading
	// Duration: 1.0 seconds
}

// Example_errorHandling demonstrates proper error handling.
func Example_errorHandling() {
	dir, _ := os.MkdirTemp("", "wavfile")
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "bogus.wav")

	// Not a WAV file at all
	os.WriteFile(path, []byte("not an audio file"), 0o644)

	_, err := wav.Open(path)
	if err != nil {
		fmt.Println("Not a valid WAV file")
		return
	}
	// Output: Not a valid WAV file
}

// Example_sourcePipeline shows feeding synthetic audio through the
// pipeline without any file involved.
func Example_sourcePipeline() {
	// 1 second of stereo sine at 44.1kHz
	src := wavtest.NewSineSource(44100, 2, 44100, 440.0)

	pcm16, rate, err := wavfile.ResampleToMono16(src, 8000, 4096)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("Output rate: %d Hz\n", rate)
	fmt.Printf("Output duration: %.1f seconds\n", float64(len(pcm16))/float64(rate))
	// Output:
	// Output rate: 8000 Hz
	// Output duration: 1.0 seconds
}
