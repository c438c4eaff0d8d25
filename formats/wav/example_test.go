// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ik5/audfeed/formats/wav"
)

// Example_decoding decodes a short stereo file into a track.
func Example_decoding() {
	samples := []int16{100, -100, 200, -200, 300, -300}
	data := new(bytes.Buffer)
	_ = wav.WriteWAV16(data, 44100, 2, samples)

	track, err := wav.Decoder{}.Decode(data)
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", track.SampleRate)
	fmt.Printf("Frames: %d\n", track.Frames)
	fmt.Printf("First frame: L=%d R=%d\n", track.Samples[0], track.Samples[1])
	// Output:
	// Sample rate: 44100 Hz
	// Frames: 3
	// First frame: L=100 R=-100
}

// Example_encoding writes one second of stereo silence.
func Example_encoding() {
	samples := make([]int16, 8000*2)

	output := new(bytes.Buffer)
	if err := wav.WriteWAV16(output, 8000, 2, samples); err != nil {
		fmt.Printf("Write error: %v\n", err)
		return
	}

	fmt.Printf("Wrote %d bytes\n", output.Len())
	// Output: Wrote 32044 bytes
}

// Example_errorNotStereo shows that mono files are rejected.
func Example_errorNotStereo() {
	data := new(bytes.Buffer)
	_ = wav.WriteWAV16(data, 8000, 1, []int16{1, 2, 3})

	_, err := wav.DecodeBytes(data.Bytes())
	fmt.Println(err)
	// Output: only stereo tracks are supported: got 1 channels
}

// Example_errorNotWAV shows handling of non-WAV input.
func Example_errorNotWAV() {
	_, err := wav.DecodeBytes([]byte("This is not a WAV file"))

	if errors.Is(err, wav.ErrNotWavFile) {
		fmt.Println("Detected: Not a valid WAV file")
	}
	// Output: Detected: Not a valid WAV file
}

// Example_inspect reports the header of a file without decoding it.
func Example_inspect() {
	data := new(bytes.Buffer)
	_ = wav.WriteWAV16(data, 22050, 2, make([]int16, 22050*2))

	info, err := wav.Inspect(bytes.NewReader(data.Bytes()))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(info)
	fmt.Println("playable:", info.Playable)
	// Output:
	// PCM 16-bit, 2 ch, 22050 Hz, 1s
	// playable: true
}
