package main

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/sonicglyph/audiofp/pkg/audiofp"
)

// loadWAV decodes a PCM WAV file into a Sample. It is the capture-side
// adapter the core itself does not provide (containers are out of
// scope for the core; the CLI still needs one to have anything to feed
// the pipeline).
func loadWAV(path string) (audiofp.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return audiofp.Sample{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return audiofp.Sample{}, fmt.Errorf("%s is not a valid WAV file", path)
	}

	duration, err := decoder.Duration()
	if err != nil {
		return audiofp.Sample{}, fmt.Errorf("reading duration from %s: %w", path, err)
	}

	totalSamples := int(duration.Seconds() * float64(decoder.SampleRate) * float64(decoder.NumChans))
	if totalSamples == 0 {
		return audiofp.Sample{}, fmt.Errorf("%s contains no samples", path)
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: int(decoder.NumChans),
			SampleRate:  int(decoder.SampleRate),
		},
		Data:           make([]int, totalSamples),
		SourceBitDepth: int(decoder.BitDepth),
	}

	if _, err := decoder.PCMBuffer(buf); err != nil {
		return audiofp.Sample{}, fmt.Errorf("reading PCM samples from %s: %w", path, err)
	}

	maxVal := float64(int(1) << (uint(decoder.BitDepth) - 1))
	samples := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float64(v) / maxVal
	}

	return audiofp.Sample{
		Data:       samples,
		SampleRate: int(decoder.SampleRate),
		Channels:   int(decoder.NumChans),
	}, nil
}
