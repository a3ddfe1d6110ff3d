// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"math"

	"github.com/ik5/wavfile/audiofile"
)

// The frame transfer loops below are shared by every numeric surface.
// They iterate frame-major (all channels of a frame, then the next
// frame) and stop short, without error, when the declared frame count
// runs out. A transfer attempted past exhaustion moves zero frames.

func readFrames[T any](f *File, dst []T, conv func(int64) T) (int, error) {
	if f.state != audiofile.Reading {
		return 0, fmt.Errorf("%w: not reading", ErrIllegalState)
	}

	frames := len(dst) / f.channels
	idx := 0

	for n := 0; n < frames; n++ {
		if f.frameCounter == f.numFrames {
			return n, nil
		}

		for i := 0; i < f.channels; i++ {
			raw, err := f.readSample()
			if err != nil {
				return n, err
			}
			dst[idx] = conv(raw)
			idx++
		}

		f.frameCounter++
	}

	return frames, nil
}

func writeFrames[T any](f *File, src []T, conv func(T) int64) (int, error) {
	if f.state != audiofile.Writing {
		return 0, fmt.Errorf("%w: not writing", ErrIllegalState)
	}

	frames := len(src) / f.channels
	idx := 0

	for n := 0; n < frames; n++ {
		if f.frameCounter == f.numFrames {
			return n, nil
		}

		for i := 0; i < f.channels; i++ {
			if err := f.writeSample(conv(src[idx])); err != nil {
				return n, err
			}
			idx++
		}

		f.frameCounter++
	}

	return frames, nil
}

func readFramesPlanar[T any](f *File, dst [][]T, offset, frames int, conv func(int64) T) (int, error) {
	if f.state != audiofile.Reading {
		return 0, fmt.Errorf("%w: not reading", ErrIllegalState)
	}

	for n := 0; n < frames; n++ {
		if f.frameCounter == f.numFrames {
			return n, nil
		}

		for c := 0; c < f.channels; c++ {
			raw, err := f.readSample()
			if err != nil {
				return n, err
			}
			dst[c][offset] = conv(raw)
		}

		offset++
		f.frameCounter++
	}

	return frames, nil
}

func writeFramesPlanar[T any](f *File, src [][]T, offset, frames int, conv func(T) int64) (int, error) {
	if f.state != audiofile.Writing {
		return 0, fmt.Errorf("%w: not writing", ErrIllegalState)
	}

	for n := 0; n < frames; n++ {
		if f.frameCounter == f.numFrames {
			return n, nil
		}

		for c := 0; c < f.channels; c++ {
			if err := f.writeSample(conv(src[c][offset])); err != nil {
				return n, err
			}
		}

		offset++
		f.frameCounter++
	}

	return frames, nil
}

// toFloat64 applies the session's normalization to one raw sample.
func (f *File) toFloat64(raw int64) float64 {
	return f.floatOffset + float64(raw)/f.floatScale
}

// fromFloat64 quantizes one normalized sample to its raw value.
// Values outside [-1, 1] are not clamped.
func (f *File) fromFloat64(v float64) int64 {
	return int64(math.Round(f.floatScale * (f.floatOffset + v)))
}

// ReadInt16 fills dst with raw samples truncated to 16 bits,
// interleaved. The requested frame count is len(dst)/Channels();
// fewer frames are moved only at exhaustion. Offsets into larger
// buffers are expressed by slicing dst.
func (f *File) ReadInt16(dst []int16) (int, error) {
	return readFrames(f, dst, func(raw int64) int16 { return int16(raw) })
}

// ReadInt32 fills dst with raw samples truncated to 32 bits,
// interleaved.
func (f *File) ReadInt32(dst []int32) (int, error) {
	return readFrames(f, dst, func(raw int64) int32 { return int32(raw) })
}

// ReadInt64 fills dst with raw samples, interleaved.
func (f *File) ReadInt64(dst []int64) (int, error) {
	return readFrames(f, dst, func(raw int64) int64 { return raw })
}

// ReadFloat32 fills dst with normalized samples, interleaved.
func (f *File) ReadFloat32(dst []float32) (int, error) {
	return readFrames(f, dst, func(raw int64) float32 { return float32(f.toFloat64(raw)) })
}

// ReadFloat64 fills dst with normalized samples, interleaved.
func (f *File) ReadFloat64(dst []float64) (int, error) {
	return readFrames(f, dst, f.toFloat64)
}

// WriteInt16 emits interleaved raw samples from src. The requested
// frame count is len(src)/Channels(); fewer frames are moved only at
// exhaustion of the declared count.
func (f *File) WriteInt16(src []int16) (int, error) {
	return writeFrames(f, src, func(v int16) int64 { return int64(v) })
}

// WriteInt32 emits interleaved raw samples from src.
func (f *File) WriteInt32(src []int32) (int, error) {
	return writeFrames(f, src, func(v int32) int64 { return int64(v) })
}

// WriteInt64 emits interleaved raw samples from src.
func (f *File) WriteInt64(src []int64) (int, error) {
	return writeFrames(f, src, func(v int64) int64 { return v })
}

// WriteFloat32 is not supported and always fails with
// ErrUnsupportedOperation, regardless of session state. Use
// WriteFloat64.
func (f *File) WriteFloat32(src []float32) (int, error) {
	return 0, fmt.Errorf("%w: write float32", ErrUnsupportedOperation)
}

// WriteFloat64 emits interleaved normalized samples from src,
// quantized by the session's scaling. Values outside [-1, 1] are not
// clamped.
func (f *File) WriteFloat64(src []float64) (int, error) {
	return writeFrames(f, src, f.fromFloat64)
}

// ReadInt32Planar fills one slice per channel, frames samples starting
// at offset within each channel slice.
func (f *File) ReadInt32Planar(dst [][]int32, offset, frames int) (int, error) {
	return readFramesPlanar(f, dst, offset, frames, func(raw int64) int32 { return int32(raw) })
}

// ReadInt64Planar fills one slice per channel.
func (f *File) ReadInt64Planar(dst [][]int64, offset, frames int) (int, error) {
	return readFramesPlanar(f, dst, offset, frames, func(raw int64) int64 { return raw })
}

// ReadFloat64Planar fills one slice per channel with normalized
// samples.
func (f *File) ReadFloat64Planar(dst [][]float64, offset, frames int) (int, error) {
	return readFramesPlanar(f, dst, offset, frames, f.toFloat64)
}

// WriteInt32Planar emits frames samples per channel starting at offset
// within each channel slice.
func (f *File) WriteInt32Planar(src [][]int32, offset, frames int) (int, error) {
	return writeFramesPlanar(f, src, offset, frames, func(v int32) int64 { return int64(v) })
}

// WriteInt64Planar emits one slice per channel.
func (f *File) WriteInt64Planar(src [][]int64, offset, frames int) (int, error) {
	return writeFramesPlanar(f, src, offset, frames, func(v int64) int64 { return v })
}

// WriteFloat64Planar emits one slice per channel of normalized
// samples.
func (f *File) WriteFloat64Planar(src [][]float64, offset, frames int) (int, error) {
	return writeFramesPlanar(f, src, offset, frames, f.fromFloat64)
}
