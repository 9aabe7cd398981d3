package main

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/eligwz/spectrogram"

	"github.com/sonicglyph/audiofp/pkg/audiofp"
)

// renderSpectrogram renders a PNG visualisation of s's magnitude
// spectrogram to outputPath, for eyeballing what the Peak Detector sees.
// This is a debug aid, not part of the fingerprinting contract.
func renderSpectrogram(s audiofp.Sample, outputPath string) error {
	const height = 512
	width := 2048
	if len(s.Data) < width {
		width = len(s.Data)
	}

	img := spectrogram.NewImage128(image.Rect(0, 0, width, height))
	black := spectrogram.ParseColor("000000")
	draw.Draw(img, img.Bounds(), image.NewUniform(black), image.Point{}, draw.Src)

	spectrogram.Drawfft(
		img,
		s.Data,
		uint32(s.SampleRate),
		uint32(height),
		false, // RECTANGLE: use Hamming window
		false, // DFT: use FFT
		true,  // MAG: magnitude
		false, // LOG10: linear scale
	)

	if err := spectrogram.SavePng(img, outputPath); err != nil {
		return fmt.Errorf("saving spectrogram PNG to %s: %w", outputPath, err)
	}
	return nil
}
