// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ik5/wavfile/formats/wav"
)

func ExampleCreate() {
	dir, err := os.MkdirTemp("", "wav-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "tone.wav")

	f, err := wav.Create(path, 1, 4, 16, 8000)
	if err != nil {
		log.Fatal(err)
	}

	if _, err := f.WriteInt16([]int16{100, 200, 300, 400}); err != nil {
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}

	in, err := wav.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	fmt.Printf("channels: %d\n", in.Channels())
	fmt.Printf("sample rate: %d\n", in.SampleRate())
	fmt.Printf("bits: %d\n", in.ValidBits())
	fmt.Printf("frames: %d\n", in.Frames())

	// Output:
	// channels: 1
	// sample rate: 8000
	// bits: 16
	// frames: 4
}

func ExampleFile_SeekFrame() {
	dir, err := os.MkdirTemp("", "wav-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "seek.wav")

	f, err := wav.Create(path, 1, 5, 16, 8000)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := f.WriteInt16([]int16{0, 100, 200, 300, 400}); err != nil {
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}

	in, err := wav.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	if err := in.SeekFrame(3); err != nil {
		log.Fatal(err)
	}

	buf := make([]int16, 2)
	if _, err := in.ReadInt16(buf); err != nil {
		log.Fatal(err)
	}

	fmt.Println(buf[0], buf[1])

	// Output:
	// 300 400
}

func ExampleFile_WriteFloat64() {
	dir, err := os.MkdirTemp("", "wav-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "float.wav")

	// Floating-point samples in [-1, 1] quantize to the file's bit depth.
	f, err := wav.Create(path, 1, 4, 16, 8000)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := f.WriteFloat64([]float64{0, 0.5, -0.5, 1.0}); err != nil {
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}

	in, err := wav.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	buf := make([]int16, 4)
	if _, err := in.ReadInt16(buf); err != nil {
		log.Fatal(err)
	}

	fmt.Println(buf)

	// Output:
	// [0 16384 -16384 32767]
}

func ExampleValid() {
	fmt.Println(wav.Valid("song.wav"))
	fmt.Println(wav.Valid("song.mp3"))

	// Output:
	// true
	// false
}
