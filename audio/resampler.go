// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/wavfile/utils"
)

// Resampler streams from src to a target sample rate using cubic
// interpolation. Works on interleaved samples; preserves channel count.
// Includes basic anti-aliasing filtering when downsampling.
type Resampler struct {
	src      Source
	srcRate  float64
	dstRate  float64
	ratio    float64 // srcRate / dstRate - source frames per output frame
	channels int

	// Sliding window of 4 frames for cubic interpolation.
	// window[0] = t-1, window[1] = t0, window[2] = t+1, window[3] = t+2
	window  [4][]float32
	present [4]bool
	primed  bool

	// Position between window[1] and window[2], in source frames.
	pos float64

	// Scratch holding one source frame.
	frame []float32
	eof   bool

	// One-pole low-pass state for anti-aliasing when downsampling.
	filterState []float32
	useFilter   bool
	filterAlpha float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	ratio := float64(src.SampleRate()) / float64(dstRate)

	// Downsampling folds frequencies above the destination Nyquist back
	// into the audible band, so smooth the input first.
	useFilter := ratio > 1.0
	var filterAlpha float32
	if useFilter {
		filterAlpha = 0.5
	}

	r := &Resampler{
		src:         src,
		srcRate:     float64(src.SampleRate()),
		dstRate:     float64(dstRate),
		ratio:       ratio,
		channels:    channels,
		frame:       make([]float32, channels),
		pos:         0,
		useFilter:   useFilter,
		filterAlpha: filterAlpha,
		filterState: make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return int(r.dstRate) }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// prime fills the interpolation window with the first source frames.
// When the source ends mid-fill, the last real frame is duplicated into
// the remaining slots so interpolation stays well defined.
func (r *Resampler) prime() error {
	last := -1

	for i := range r.window {
		n, err := r.src.ReadSamples(r.frame)
		if n > 0 {
			copy(r.window[i], r.frame[:n])
			r.present[i] = true
			last = i

			// Seed the filter with the first frame to avoid a warm-up
			// transient from a zero state.
			if i == 0 && r.useFilter {
				copy(r.filterState, r.frame[:n])
			}
		}

		if err == io.EOF {
			r.eof = true
			if last < 0 {
				return io.EOF
			}
			for j := last + 1; j < len(r.window); j++ {
				copy(r.window[j], r.window[last])
				r.present[j] = true
			}
			break
		} else if err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	r.primed = true
	return nil
}

// advance shifts the window one source frame forward and reads the next
// frame into the final slot.
func (r *Resampler) advance() error {
	if r.eof {
		return io.EOF
	}

	// Shift window: [0,1,2,3] -> [1,2,3,?]
	copy(r.window[0], r.window[1])
	copy(r.window[1], r.window[2])
	copy(r.window[2], r.window[3])
	r.present[0] = r.present[1]
	r.present[1] = r.present[2]
	r.present[2] = r.present[3]

	n, err := r.src.ReadSamples(r.frame)
	if n > 0 {
		copy(r.window[3], r.frame[:n])
		r.present[3] = true

		if r.useFilter {
			for c := 0; c < r.channels; c++ {
				// One-pole low-pass: y[n] = alpha * x[n] + (1-alpha) * y[n-1]
				r.window[3][c] = r.filterAlpha*r.window[3][c] + (1-r.filterAlpha)*r.filterState[c]
				r.filterState[c] = r.window[3][c]
			}
		}
	} else {
		r.present[3] = false
	}

	if err == io.EOF {
		r.eof = true
		if !r.present[3] {
			return io.EOF
		}
	} else if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples produces dst samples at the destination rate.
// dst length must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			if err == io.EOF {
				return 0, io.EOF
			}
			return 0, err
		}
	}

	written := 0
	framesNeeded := len(dst) / r.channels

	for written < framesNeeded {
		// pos must land in [0,1) between window[1] and window[2].
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				if err == io.EOF {
					if written == 0 {
						return 0, io.EOF
					}
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		if !r.present[1] || !r.present[2] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		t := float32(r.pos)

		for c := 0; c < r.channels; c++ {
			// Duplicate edge frames when the window is not fully filled.
			y0 := r.window[1][c]
			if r.present[0] {
				y0 = r.window[0][c]
			}

			y1 := r.window[1][c]
			y2 := r.window[2][c]

			y3 := r.window[2][c]
			if r.present[3] {
				y3 = r.window[3][c]
			}

			dst[written*r.channels+c] = utils.CubicInterpolate(y0, y1, y2, y3, t)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
