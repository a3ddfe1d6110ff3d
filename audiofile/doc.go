// SPDX-License-Identifier: EPL-2.0

// Package audiofile defines the format-agnostic surface shared by audio
// file backends: the Format and State enumerations, the File capability
// interface, extension-based format detection, and a Registry mapping
// formats to openers.
//
// # The File Interface
//
// File is deliberately thin. It carries the format parameters every
// backend has (channels, frames, sample rate, bit depth), frame-level
// positioning, and normalized float64 frame I/O. Concrete backends such
// as formats/wav expose wider typed read/write surfaces; code that only
// needs "an audio file" programs against this interface.
//
// # Registry
//
// A Registry lets callers open files without naming a backend:
//
//	reg := audiofile.NewRegistry()
//	reg.Register(audiofile.Wave, audiofile.OpenerFunc(func(p string) (audiofile.File, error) {
//		return wav.Open(p)
//	}))
//
//	file, err := reg.Open("speech.wav")
//
// Open detects the format from the extension and dispatches to the
// registered opener. Formats without a registered opener fail with
// ErrUnknownFormat.
//
// # Session States
//
// Every session is in exactly one of three states. Closed sessions
// accept no frame I/O; Reading sessions accept reads and seeks; Writing
// sessions accept writes. Backends report violations with their own
// illegal-state errors.
package audiofile
