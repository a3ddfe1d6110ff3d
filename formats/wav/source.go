// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	"github.com/ik5/wavfile/audio"
)

// fileSource adapts a reading session to the streaming audio.Source
// surface. The engine signals exhaustion with a short or zero frame
// count; pipelines expect io.EOF, so the adapter translates between
// the two worlds.
type fileSource struct {
	f *File
}

// Source returns a streaming view over the session's remaining frames.
// The view shares the session: reads advance the same cursor, and
// closing the Source closes the File.
func (f *File) Source() audio.Source {
	return &fileSource{f: f}
}

func (s *fileSource) SampleRate() int { return s.f.SampleRate() }
func (s *fileSource) Channels() int   { return s.f.Channels() }
func (s *fileSource) Close() error    { return s.f.Close() }

func (s *fileSource) ReadSamples(dst []float32) (int, error) {
	frames, err := s.f.ReadFloat32(dst)
	if err != nil {
		return 0, err
	}

	if frames == 0 {
		if s.f.FramesRemaining() == 0 {
			return 0, io.EOF
		}
		return 0, nil
	}

	n := frames * s.f.Channels()
	if s.f.FramesRemaining() == 0 {
		return n, io.EOF
	}

	return n, nil
}
