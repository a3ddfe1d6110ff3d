// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"
)

// ioBuffer owns the session's single byte window. The read path fills
// data up to valid and consumes through ptr; the write path accumulates
// through ptr until full. Nothing outside this file touches the raw
// bytes or the cursors.
type ioBuffer struct {
	data  []byte
	ptr   int // next byte to read or write
	valid int // bytes available on the read path
}

func (b *ioBuffer) reset() {
	b.ptr = 0
	b.valid = 0
}

// refill replaces the window contents from r. A refill that yields no
// bytes is a truncation: the header promised more data than the file
// holds.
func (b *ioBuffer) refill(r io.Reader) error {
	n, err := r.Read(b.data)
	if n <= 0 {
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w", err)
		}
		return ErrTruncatedData
	}

	b.valid = n
	b.ptr = 0

	return nil
}

// readByte consumes the next byte, refilling when the window is spent.
func (f *File) readByte() (byte, error) {
	if f.buf.ptr == f.buf.valid {
		if err := f.buf.refill(f.handle); err != nil {
			return 0, err
		}
		f.streamPos += int64(f.buf.valid)
	}

	c := f.buf.data[f.buf.ptr]
	f.buf.ptr++

	return c, nil
}

// writeByte appends one byte, flushing the window to the handle when
// it fills.
func (f *File) writeByte(c byte) error {
	if f.buf.ptr == len(f.buf.data) {
		if err := f.flushBuffer(); err != nil {
			return err
		}
	}

	f.buf.data[f.buf.ptr] = c
	f.buf.ptr++

	return nil
}

// flushBuffer writes out whatever the window has accumulated.
func (f *File) flushBuffer() error {
	if f.buf.ptr == 0 {
		return nil
	}

	n, err := f.handle.Write(f.buf.data[:f.buf.ptr])
	f.streamPos += int64(n)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	f.buf.ptr = 0

	return nil
}

// writeSample emits one little-endian byte group of BytesPerSample
// bytes.
func (f *File) writeSample(val int64) error {
	for b := 0; b < f.bytesPerSample; b++ {
		if err := f.writeByte(byte(val)); err != nil {
			return err
		}
		val >>= 8
	}

	return nil
}

// readSample assembles one little-endian byte group. Every byte is
// unsigned except the top byte of a multi-byte group, which carries
// the sign; a single-byte group is unsigned. This is the container's
// convention and the accumulation must stay 64-bit wide for depths up
// to 8 bytes.
func (f *File) readSample() (int64, error) {
	var val int64

	for b := 0; b < f.bytesPerSample; b++ {
		c, err := f.readByte()
		if err != nil {
			return 0, err
		}

		v := int64(int8(c))
		if b < f.bytesPerSample-1 || f.bytesPerSample == 1 {
			v = int64(c)
		}
		val += v << (b * 8)
	}

	return val, nil
}
