// SPDX-License-Identifier: EPL-2.0

package audiofile_test

import (
	"fmt"

	"github.com/ik5/wavfile/audiofile"
)

func ExampleDetect() {
	fmt.Println(audiofile.Detect("speech.wav"))
	fmt.Println(audiofile.Detect("ALBUM.FLAC"))
	fmt.Println(audiofile.Detect("notes.txt"))
	// Output:
	// WAVE
	// FLAC
	// unknown
}

func ExampleRegistry() {
	reg := audiofile.NewRegistry()

	reg.Register(audiofile.Wave, audiofile.OpenerFunc(func(path string) (audiofile.File, error) {
		return nil, fmt.Errorf("opener for %s not wired in this example", path)
	}))

	if _, ok := reg.Get(audiofile.Wave); ok {
		fmt.Println("wave opener registered")
	}

	if _, ok := reg.Get(audiofile.Mp3); !ok {
		fmt.Println("mp3 opener missing")
	}

	// Output:
	// wave opener registered
	// mp3 opener missing
}
