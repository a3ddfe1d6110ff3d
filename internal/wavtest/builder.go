// SPDX-License-Identifier: EPL-2.0

// Package wavtest builds byte-exact RIFF/WAVE fixtures and synthetic
// audio sources for tests. The builders assemble containers chunk by
// chunk so tests can construct both valid files and precisely broken
// ones (wrong tags, bad sizes, reordered or unknown chunks).
package wavtest

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// Chunk assembles one sub-chunk: 4-byte id, little-endian size, the
// payload, and a zero pad byte when the payload length is odd.
func Chunk(id string, payload []byte) []byte {
	out := make([]byte, 0, 8+len(payload)+1)
	out = append(out, id[:4]...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(payload)))
	out = append(out, payload...)
	if len(payload)%2 == 1 {
		out = append(out, 0)
	}

	return out
}

// Container wraps chunks in the outer RIFF/WAVE envelope with the
// outer size computed from the actual content, the way a well-formed
// writer produces it.
func Container(chunks ...[]byte) []byte {
	body := []byte("WAVE")
	for _, c := range chunks {
		body = append(body, c...)
	}

	out := make([]byte, 0, 8+len(body))
	out = append(out, "RIFF"...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(body)))
	out = append(out, body...)

	return out
}

// FmtPayload builds the 16 canonical format chunk bytes.
func FmtPayload(compression, channels int, sampleRate int, blockAlign, validBits int) []byte {
	p := make([]byte, 16)
	binary.LittleEndian.PutUint16(p[0:2], uint16(compression))
	binary.LittleEndian.PutUint16(p[2:4], uint16(channels))
	binary.LittleEndian.PutUint32(p[4:8], uint32(sampleRate))
	binary.LittleEndian.PutUint32(p[8:12], uint32(sampleRate*blockAlign))
	binary.LittleEndian.PutUint16(p[12:14], uint16(blockAlign))
	binary.LittleEndian.PutUint16(p[14:16], uint16(validBits))

	return p
}

// PCM16 builds a complete canonical mono-or-more 16-bit PCM file.
func PCM16(sampleRate, channels int, samples []int16) []byte {
	data := make([]byte, 0, len(samples)*2)
	for _, s := range samples {
		data = binary.LittleEndian.AppendUint16(data, uint16(s))
	}

	return Container(
		Chunk("fmt ", FmtPayload(1, channels, sampleRate, 2*channels, 16)),
		Chunk("data", data),
	)
}

// WriteFile drops raw bytes into a fresh file under t.TempDir and
// returns its path.
func WriteFile(t *testing.T, name string, raw []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}

	return path
}
