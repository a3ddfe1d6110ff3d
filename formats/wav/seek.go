// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/ik5/wavfile/audiofile"
)

// SeekFrame positions the read cursor at frame. A target inside the
// currently buffered window moves only the buffer cursor, with no
// underlying I/O; seeking to the current position is a no-op.
// Anything else repositions the handle and resets the window.
func (f *File) SeekFrame(frame int64) error {
	if f.state != audiofile.Reading {
		return fmt.Errorf("%w: not reading", ErrIllegalState)
	}
	if f.dataStart <= 0 {
		return fmt.Errorf("%w: data start unknown", ErrInvalidSeek)
	}
	if frame < 0 {
		return fmt.Errorf("%w: frame %d", ErrInvalidSeek, frame)
	}

	target := f.dataStart + frame*int64(f.bytesPerSample)*int64(f.channels)
	current := f.streamPos - int64(f.buf.valid) + int64(f.buf.ptr)

	if target == current {
		return nil
	}

	if target >= f.streamPos-int64(f.buf.valid) && target <= f.streamPos {
		f.buf.ptr = int(target - f.streamPos + int64(f.buf.valid))
		return nil
	}

	if _, err := f.handle.Seek(target, io.SeekStart); err != nil {
		return fmt.Errorf("%w", err)
	}
	f.streamPos = target
	f.buf.reset()
	f.frameCounter = frame

	return nil
}

// CurrentFrame reports the frame index under the read cursor, derived
// from the underlying position minus whatever the window has buffered
// ahead.
func (f *File) CurrentFrame() (int64, error) {
	if f.state != audiofile.Reading {
		return 0, fmt.Errorf("%w: not reading", ErrIllegalState)
	}
	if f.dataStart <= 0 {
		return 0, fmt.Errorf("%w: data start unknown", ErrInvalidSeek)
	}

	pos := f.streamPos - int64(f.buf.valid) + int64(f.buf.ptr)
	if pos <= 0 {
		return 0, fmt.Errorf("%w: position not established", ErrInvalidSeek)
	}

	return (pos - f.dataStart) / int64(f.blockAlign), nil
}
