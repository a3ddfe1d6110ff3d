// SPDX-License-Identifier: EPL-2.0

package wav

import (
	goaudio "github.com/go-audio/audio"
)

// Bridging to the go-audio buffer types lets sessions feed code built
// on that ecosystem without an intermediate copy loop per caller.

// AudioFormat describes the session as a go-audio format.
func (f *File) AudioFormat() *goaudio.Format {
	return &goaudio.Format{
		NumChannels: f.channels,
		SampleRate:  f.sampleRate,
	}
}

// PCMBuffer fills buf.Data with interleaved raw samples and stamps the
// buffer's format and source bit depth. Returns frames moved; a short
// count signals exhaustion, matching the typed read surfaces.
func (f *File) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	buf.Format = f.AudioFormat()
	buf.SourceBitDepth = f.validBits

	frames, err := readFrames(f, buf.Data, func(raw int64) int { return int(raw) })
	if err != nil {
		return 0, err
	}

	return frames, nil
}

// FullPCMBuffer drains every remaining frame into a fresh go-audio
// buffer.
func (f *File) FullPCMBuffer() (*goaudio.IntBuffer, error) {
	buf := &goaudio.IntBuffer{
		Data:           make([]int, f.FramesRemaining()*int64(f.channels)),
		Format:         f.AudioFormat(),
		SourceBitDepth: f.validBits,
	}

	frames, err := f.PCMBuffer(buf)
	if err != nil {
		return nil, err
	}
	buf.Data = buf.Data[:frames*f.channels]

	return buf, nil
}

// WriteBuffer emits buf.Data through the session's write path.
// Returns frames moved.
func (f *File) WriteBuffer(buf *goaudio.IntBuffer) (int, error) {
	return writeFrames(f, buf.Data, func(v int) int64 { return int64(v) })
}
