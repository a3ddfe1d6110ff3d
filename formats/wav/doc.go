// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes uncompressed PCM audio in the RIFF/WAVE
// container. It exposes frame-oriented sequential and random-access
// sample I/O across 16/32/64-bit integer and normalized 32/64-bit
// floating point representations, and enforces the container's
// structural invariants: tag signatures, little-endian field layout,
// word alignment, and block-align agreement.
//
// # Sessions
//
// A File is a single-purpose session over one file handle. Open yields
// a reading session positioned at frame zero; Create yields a writing
// session with the header already emitted. Frame reads are legal only
// while reading, writes only while writing, and Close returns the
// session to the closed state, flushing, padding, and patching the
// header as needed. Sessions are not safe for concurrent use.
//
//	f, err := wav.Open("speech.wav")
//	if err != nil {
//	    // Handle error
//	}
//	defer f.Close()
//
//	buf := make([]float64, 4096*f.Channels())
//	for {
//	    frames, err := f.ReadFloat64(buf)
//	    if err != nil {
//	        // Handle error
//	    }
//	    if frames == 0 {
//	        break // declared frame count exhausted
//	    }
//	    // process buf[:frames*f.Channels()]
//	}
//
// # Frame Transfers
//
// Every read and write surface is frame-major: samples are interleaved
// channel by channel within each frame. The requested frame count is
// len(buf)/Channels() for the flat surfaces; planar surfaces take the
// count explicitly. A transfer moves fewer frames than requested only
// when the declared frame count runs out, which is not an error, and a
// transfer attempted past exhaustion moves zero frames. Offsets into
// flat buffers are expressed by slicing; the planar surfaces carry an
// explicit per-channel offset instead.
//
// Integer surfaces move raw sample values with no scaling. Float
// surfaces normalize: values map into [-1, 1] using the session's
// scaling parameters, derived once from the bit depth. Writing
// float32 is not supported and fails with ErrUnsupportedOperation;
// write float64 instead.
//
// # Writing
//
//	f, err := wav.Create("tone.wav", 1, 8000, 16, 8000)
//	if err != nil {
//	    // Handle error
//	}
//
//	samples := make([]int16, 8000)
//	// fill samples...
//	if _, err := f.WriteInt16(samples); err != nil {
//	    // Handle error
//	}
//	if err := f.Close(); err != nil {
//	    // Handle error
//	}
//
// The frame count declared at Create is provisional. When a session
// closes with a different number of frames actually written, Close
// rewrites the header with the actual count and the matching sizes.
//
// # Seeking
//
// SeekFrame and CurrentFrame give frame-granular random access on the
// read path. Seeks that land inside the buffered window only move the
// buffer cursor; others reposition the handle directly.
//
// # Interoperability
//
// Source adapts a reading session to the streaming audio.Source
// interface. AudioFormat, PCMBuffer, FullPCMBuffer and WriteBuffer
// bridge sessions to github.com/go-audio buffer types.
//
// # Error Handling
//
// The package fails fast with sentinel errors, wrapped with context at
// the failure site:
//   - ErrMalformedHeader: bad tags, size mismatches, truncated header
//   - ErrUnsupportedCompression: compression code other than PCM
//   - ErrInvalidFormat: parameter or block-align violations
//   - ErrChunkOrder: data chunk before the format chunk
//   - ErrTruncatedData: the header promised more sample bytes than exist
//   - ErrIllegalState: operation in the wrong session state
//   - ErrInvalidSeek: negative frame or unknown data start
//   - ErrUnsupportedOperation: the float32 write path
//
// A failure while writing leaves the file partially written; callers
// that need atomicity write to a temporary path and rename on success.
package wav
