// SPDX-License-Identifier: EPL-2.0

// Package wavfile provides frame-oriented WAV file I/O and high-level
// audio processing utilities for Go applications.
//
// The heart of the module is the formats/wav package: a stateful WAV
// engine with frame-granular reads, writes and seeks across 16/32/64-bit
// integer and normalized floating point sample representations. This
// root package layers the common one-call flows on top of it.
//
// # Quick Start
//
// Read a WAV file frame by frame:
//
//	f, err := wav.Open("speech.wav")
//	if err != nil {
//	    // handle error
//	}
//	defer f.Close()
//
//	buf := make([]float64, 4096*f.Channels())
//	for {
//	    frames, err := f.ReadFloat64(buf)
//	    if err != nil {
//	        // handle error
//	    }
//	    if frames == 0 {
//	        break
//	    }
//	    // process buf[:frames*f.Channels()]
//	}
//
// Resample a file to 8kHz mono 16-bit PCM and write it back out:
//
//	f, _ := wav.Open("input.wav")
//	samples, rate, err := wavfile.ResampleToMono16(f.Source(), 8000, 4096)
//	if err != nil {
//	    // handle error
//	}
//	err = wavfile.WriteMono16("output.wav", rate, samples)
//
// # Audio Processing Pipeline
//
// For more control, build custom pipelines from the audio subpackage:
//
//	// Create a resampler
//	resampler := audio.NewResampler(source, 16000)
//
//	// Convert to mono
//	mono := audio.NewMonoMixer(resampler)
//
//	// Read samples
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// Any reading wav.File plugs into a pipeline through its Source method.
//
// # Format Detection
//
// The audiofile subpackage carries the format-independent surface: the
// Format and State enumerations, the File capability interface, and a
// Registry mapping detected formats to openers:
//
//	reg := audiofile.NewRegistry()
//	reg.Register(audiofile.Wave, audiofile.OpenerFunc(func(path string) (audiofile.File, error) {
//	    return wav.Open(path)
//	}))
//
//	f, err := reg.Open("input.wav")
//
// Only WAV has an engine in this module; the remaining Format values
// enumerate backends other modules could register.
//
// # Subpackages
//
//   - formats/wav: the WAV engine (header codec, buffered sample I/O,
//     frame cursor, go-audio bridges)
//   - audio: Source interface, Resampler, MonoMixer
//   - audiofile: Format/State enumerations, File interface, Registry
//   - utils: numeric helpers (cubic interpolation, float to int16)
package wavfile
