// SPDX-License-Identifier: EPL-2.0

package audiofile

import (
	"path/filepath"
	"strings"
)

// Format identifies an audio container format. Only Wave has an engine
// in this module; the remaining values enumerate backends other
// packages could register.
type Format int

const (
	Unknown Format = iota
	Wave
	Flac
	Ape
	Mp3
)

func (f Format) String() string {
	switch f {
	case Wave:
		return "WAVE"
	case Flac:
		return "FLAC"
	case Ape:
		return "APE"
	case Mp3:
		return "MP3"
	}

	return "unknown"
}

// State tells which operations are legal on a file session. A session
// starts Closed, moves to Reading or Writing when opened or created,
// and returns to Closed when released.
type State int

const (
	Closed State = iota
	Reading
	Writing
)

func (s State) String() string {
	switch s {
	case Reading:
		return "reading"
	case Writing:
		return "writing"
	}

	return "closed"
}

// File is the capability surface a format backend exposes: format
// parameters, frame-granular positioning, and normalized float64 frame
// I/O. Backends usually expose richer typed surfaces on their concrete
// types; this interface is the common denominator the Registry hands
// out.
type File interface {
	// Path of the underlying file.
	Path() string
	// Format of the container.
	Format() Format
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// Frames declared for the session.
	Frames() int64
	// FramesRemaining until the declared count is exhausted.
	FramesRemaining() int64
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// ValidBits per raw sample value.
	ValidBits() int
	// State of the session.
	State() State

	// SeekFrame positions the cursor at a frame index.
	SeekFrame(frame int64) error
	// CurrentFrame reports the cursor's frame index.
	CurrentFrame() (int64, error)

	// ReadFloat64 fills dst with interleaved normalized samples.
	// Returns frames moved; a short count signals exhaustion.
	ReadFloat64(dst []float64) (int, error)
	// WriteFloat64 emits interleaved normalized samples from src.
	WriteFloat64(src []float64) (int, error)

	// Close releases the underlying handle.
	Close() error
}

// Detect maps a path's extension to a Format, case-insensitively.
// It does not inspect content; backends keep their own stricter
// name checks.
func Detect(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return Wave
	case ".flac":
		return Flac
	case ".ape":
		return Ape
	case ".mp3":
		return Mp3
	}

	return Unknown
}
