// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/ik5/wavfile/audiofile"
)

// bufferSize is the capacity of the single byte window shared by the
// read and write paths.
const bufferSize = 4096

// File is a PCM WAV session. A session reads or writes one file,
// never both: Open yields a reading session, Create a writing one, and
// Close returns it to the closed state after flushing, padding, and
// patching the header as needed.
//
// Format parameters are fixed once Open or Create returns. The frame
// count is the one exception: a writing session that closes with fewer
// or more frames than declared gets its header rewritten with the
// actual count.
type File struct {
	path   string
	handle *os.File
	state  audiofile.State

	channels       int
	sampleRate     int
	validBits      int
	bytesPerSample int
	blockAlign     int

	numFrames    int64
	frameCounter int64

	// Normalized float conversion, derived once from validBits.
	floatScale  float64
	floatOffset float64

	// Data chunk layout.
	dataStart int64
	wordAlign bool // data chunk byte length is odd, one pad byte due

	buf       ioBuffer
	streamPos int64 // byte position of the underlying handle
}

var _ audiofile.File = (*File)(nil)

// Create opens path for writing and emits a header declaring frames
// frames of channels×validBits PCM at sampleRate Hz. The declared
// count is provisional: Close rewrites the header when the frames
// actually written differ.
func Create(path string, channels int, frames int64, validBits int, sampleRate int) (*File, error) {
	if channels < 1 || channels > 65535 {
		return nil, fmt.Errorf("%w: %d channels, valid range 1 to 65535", ErrInvalidFormat, channels)
	}
	if frames < 0 {
		return nil, fmt.Errorf("%w: frame count must not be negative", ErrInvalidFormat)
	}
	if validBits < 2 || validBits > 65535 {
		return nil, fmt.Errorf("%w: %d valid bits, valid range 2 to 65535", ErrInvalidFormat, validBits)
	}
	if sampleRate < 0 {
		return nil, fmt.Errorf("%w: sample rate must not be negative", ErrInvalidFormat)
	}

	handle, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	f := &File{
		path:           path,
		handle:         handle,
		channels:       channels,
		numFrames:      frames,
		sampleRate:     sampleRate,
		validBits:      validBits,
		bytesPerSample: (validBits + 7) / 8,
	}
	f.blockAlign = f.bytesPerSample * channels
	f.buf.data = make([]byte, bufferSize)

	if err := f.writeHeader(); err != nil {
		handle.Close()
		return nil, err
	}

	if validBits > 8 {
		// Signed data, scaled by the widest positive value the depth
		// can hold. Depths past 64 saturate the shift.
		shift := 64 - validBits
		if shift < 0 {
			shift = 0
		}
		f.floatOffset = 0
		f.floatScale = float64(int64(math.MaxInt64) >> shift)
	} else {
		// Unsigned data, offset up into the positive range.
		f.floatOffset = 1
		f.floatScale = 0.5 * float64((int64(1)<<validBits)-1)
	}

	f.state = audiofile.Writing
	return f, nil
}

// Open parses the header of an existing WAV file and positions the
// session at frame zero, ready for reading. A parse failure releases
// the handle; no partially initialized session escapes.
func Open(path string) (*File, error) {
	handle, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	f := &File{
		path:   path,
		handle: handle,
	}
	f.buf.data = make([]byte, bufferSize)

	if err := f.readHeader(); err != nil {
		handle.Close()
		return nil, err
	}

	if f.validBits > 8 {
		// Signed data, divided by the magnitude of the widest negative
		// value. Computed in float64: a 64-bit shift of int64(1) wraps
		// to the sign bit.
		f.floatOffset = 0
		f.floatScale = math.Ldexp(1, f.validBits-1)
	} else {
		// Unsigned data, offset down around zero.
		f.floatOffset = -1
		f.floatScale = 0.5 * float64((int64(1)<<f.validBits)-1)
	}

	f.buf.reset()
	f.frameCounter = 0
	f.state = audiofile.Reading

	return f, nil
}

// Close flushes pending writes, appends the word-alignment pad byte
// when the data chunk length is odd, rewrites the header when the
// written frame count differs from the declared one, and releases the
// handle. Calling Close again is a no-op.
func (f *File) Close() error {
	if f.handle == nil {
		f.state = audiofile.Closed
		return nil
	}

	var finishErr error
	if f.state == audiofile.Writing {
		finishErr = f.finishWrite()
	}

	// The handle is released and the session closed on every path,
	// even when finishing the write failed.
	closeErr := f.handle.Close()
	f.handle = nil
	f.state = audiofile.Closed

	if finishErr != nil {
		return finishErr
	}
	if closeErr != nil {
		return fmt.Errorf("%w", closeErr)
	}

	return nil
}

// finishWrite flushes the partial buffer, appends the alignment pad
// byte when the final data length is odd, and rewrites the header when
// the written frame count differs from the declared one.
func (f *File) finishWrite() error {
	if err := f.flushBuffer(); err != nil {
		return err
	}

	patch := f.frameCounter != f.numFrames
	if patch {
		f.numFrames = f.frameCounter
		f.wordAlign = (int64(f.blockAlign)*f.numFrames)%2 == 1
	}

	if f.wordAlign {
		if _, err := f.handle.Write([]byte{0}); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if patch {
		if _, err := f.handle.Seek(0, io.SeekStart); err != nil {
			return fmt.Errorf("%w", err)
		}
		f.streamPos = 0
		if err := f.writeHeader(); err != nil {
			return err
		}
	}

	return nil
}

// Path of the underlying file.
func (f *File) Path() string { return f.path }

// Format always reports audiofile.Wave.
func (f *File) Format() audiofile.Format { return audiofile.Wave }

// Channels count of the session.
func (f *File) Channels() int { return f.channels }

// Frames declared in the header (reading) or at creation (writing).
func (f *File) Frames() int64 { return f.numFrames }

// FramesRemaining until the declared frame count is exhausted.
func (f *File) FramesRemaining() int64 { return f.numFrames - f.frameCounter }

// SampleRate in Hz.
func (f *File) SampleRate() int { return f.sampleRate }

// ValidBits per raw sample value.
func (f *File) ValidBits() int { return f.validBits }

// BytesPerSample holding one raw sample value, ceil(ValidBits/8).
func (f *File) BytesPerSample() int { return f.bytesPerSample }

// BlockAlign is the byte span of one frame.
func (f *File) BlockAlign() int { return f.blockAlign }

// State of the session.
func (f *File) State() audiofile.State { return f.state }

// String returns a one-line session summary.
func (f *File) String() string {
	return fmt.Sprintf("wav %s: %d ch, %d frames @ %d Hz, %d bits, %s",
		f.path, f.channels, f.numFrames, f.sampleRate, f.validBits, f.state)
}

// Valid reports whether path names a WAV file. This is a name check
// only, accepting exactly the .wav and .WAV extensions; the content is
// not inspected.
func Valid(path string) bool {
	return strings.HasSuffix(path, ".wav") || strings.HasSuffix(path, ".WAV")
}
