// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// headerSize covers the RIFF group (12), the canonical fmt chunk (24)
// and the data chunk header (8).
const headerSize = 44

// readHeader parses the container up to the first sample byte: RIFF
// signature, outer size against the file length, then the chunk walk
// until the data chunk. The fmt chunk must come first; unknown chunks
// are skipped over their word-aligned span.
func (f *File) readHeader() error {
	info, err := f.handle.Stat()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	fileLen := info.Size()

	var hdr [16]byte

	if _, err := io.ReadFull(f.handle, hdr[:12]); err != nil {
		return fmt.Errorf("%w: not enough bytes for riff header", ErrMalformedHeader)
	}
	f.streamPos = 12

	if string(hdr[0:4]) != "RIFF" {
		return fmt.Errorf("%w: bad riff chunk id", ErrMalformedHeader)
	}
	if string(hdr[8:12]) != "WAVE" {
		return fmt.Errorf("%w: bad riff type id", ErrMalformedHeader)
	}

	outerSize := int64(binary.LittleEndian.Uint32(hdr[4:8]))
	if fileLen != outerSize+8 {
		return fmt.Errorf("%w: header chunk size %d does not match file size %d",
			ErrMalformedHeader, outerSize, fileLen)
	}

	foundFormat := false

	for {
		if _, err := io.ReadFull(f.handle, hdr[:8]); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: no data chunk before end of file", ErrMalformedHeader)
			}
			return fmt.Errorf("%w: truncated chunk header", ErrMalformedHeader)
		}
		f.streamPos += 8

		chunkID := string(hdr[0:4])
		chunkSize := int64(binary.LittleEndian.Uint32(hdr[4:8]))

		// Chunks are word aligned: an odd payload occupies one byte
		// more on disk than its declared size.
		span := chunkSize
		if chunkSize%2 == 1 {
			span++
		}

		switch chunkID {
		case "fmt ":
			if _, err := io.ReadFull(f.handle, hdr[:16]); err != nil {
				return fmt.Errorf("%w: truncated format chunk", ErrMalformedHeader)
			}
			f.streamPos += 16

			compression := binary.LittleEndian.Uint16(hdr[0:2])
			if compression != 1 {
				return fmt.Errorf("%w: %d", ErrUnsupportedCompression, compression)
			}

			f.channels = int(binary.LittleEndian.Uint16(hdr[2:4]))
			f.sampleRate = int(binary.LittleEndian.Uint32(hdr[4:8]))
			f.blockAlign = int(binary.LittleEndian.Uint16(hdr[12:14]))
			f.validBits = int(binary.LittleEndian.Uint16(hdr[14:16]))

			if f.channels == 0 {
				return fmt.Errorf("%w: zero channels in header", ErrInvalidFormat)
			}
			if f.blockAlign == 0 {
				return fmt.Errorf("%w: zero block align in header", ErrInvalidFormat)
			}
			if f.validBits < 2 {
				return fmt.Errorf("%w: %d valid bits, minimum is 2", ErrInvalidFormat, f.validBits)
			}
			if f.validBits > 64 {
				return fmt.Errorf("%w: %d valid bits, maximum is 64", ErrInvalidFormat, f.validBits)
			}

			f.bytesPerSample = (f.validBits + 7) / 8
			if f.bytesPerSample*f.channels != f.blockAlign {
				return fmt.Errorf("%w: block align %d does not agree with %d channels of %d bytes",
					ErrInvalidFormat, f.blockAlign, f.channels, f.bytesPerSample)
			}

			foundFormat = true

			// Skip whatever the chunk carries past the 16 required
			// bytes, pad included.
			if extra := span - 16; extra > 0 {
				if err := f.skip(extra); err != nil {
					return err
				}
			}

		case "data":
			if !foundFormat {
				return fmt.Errorf("%w", ErrChunkOrder)
			}
			if chunkSize%int64(f.blockAlign) != 0 {
				return fmt.Errorf("%w: data chunk size %d is not a multiple of block align %d",
					ErrMalformedHeader, chunkSize, f.blockAlign)
			}

			f.numFrames = chunkSize / int64(f.blockAlign)
			f.dataStart = f.streamPos

			return nil

		default:
			if err := f.skip(span); err != nil {
				return err
			}
		}
	}
}

// skip advances the handle over n bytes of chunk payload.
func (f *File) skip(n int64) error {
	pos, err := f.handle.Seek(n, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	f.streamPos = pos

	return nil
}

// writeHeader synthesizes the 44 header bytes for the current format
// descriptor and frame count and writes them at the handle's position.
// Create calls it at offset zero; Close calls it again, after seeking
// back, when the frame count changed. No sample bytes are touched.
func (f *File) writeHeader() error {
	dataSize := int64(f.blockAlign) * f.numFrames

	outerSize := int64(4+8+16+8) + dataSize
	f.wordAlign = dataSize%2 == 1
	if f.wordAlign {
		outerSize++
	}

	var hdr [headerSize]byte

	copy(hdr[0:4], "RIFF")
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(outerSize))
	copy(hdr[8:12], "WAVE")

	copy(hdr[12:16], "fmt ")
	binary.LittleEndian.PutUint32(hdr[16:20], 16)
	binary.LittleEndian.PutUint16(hdr[20:22], 1)
	binary.LittleEndian.PutUint16(hdr[22:24], uint16(f.channels))
	binary.LittleEndian.PutUint32(hdr[24:28], uint32(f.sampleRate))
	binary.LittleEndian.PutUint32(hdr[28:32], uint32(int64(f.sampleRate)*int64(f.blockAlign)))
	binary.LittleEndian.PutUint16(hdr[32:34], uint16(f.blockAlign))
	binary.LittleEndian.PutUint16(hdr[34:36], uint16(f.validBits))

	copy(hdr[36:40], "data")
	binary.LittleEndian.PutUint32(hdr[40:44], uint32(dataSize))

	if _, err := f.handle.Write(hdr[:]); err != nil {
		return fmt.Errorf("%w", err)
	}
	f.streamPos += headerSize

	return nil
}
