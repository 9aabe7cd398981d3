// Package spectral implements the short-time Fourier transform stage: it
// turns a canonical (mono, 11,025 Hz) buffer into a magnitude spectrogram.
package spectral

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/sonicglyph/audiofp/pkg/audiofp"
	"github.com/sonicglyph/audiofp/pkg/audiofp/preprocess"
)

// Engine owns no mutable state of its own — go-dsp/fft.FFTReal allocates
// its plan per call — but it is the single handle the pipeline threads a
// run's STFT calls through, matching the "per-engine handle" shape the
// core calls for even though this backend has no scratch buffers to
// serialise access to.
type Engine struct{}

// NewEngine returns a ready-to-use FFT engine.
func NewEngine() *Engine { return &Engine{} }

// STFT computes the magnitude spectrogram of buf using windowSize/hopSize
// framing and an fftSize-point FFT per frame. buf must already be
// canonical (produced by preprocess.Canonicalize).
func (e *Engine) STFT(buf []float64, fftSize, windowSize, hopSize int, win audiofp.WindowFunc) (*audiofp.Spectrogram, error) {
	if len(buf) == 0 {
		return nil, audiofp.New(audiofp.InvalidInput, "empty input buffer")
	}
	if fftSize <= 0 || fftSize&(fftSize-1) != 0 {
		return nil, audiofp.Newf(audiofp.InvalidInput, "fft size must be a positive power of two, got %d", fftSize)
	}
	if windowSize <= 0 || windowSize > fftSize {
		return nil, audiofp.Newf(audiofp.InvalidInput, "window size must be in (0, fft_size], got %d", windowSize)
	}
	if hopSize <= 0 || hopSize > windowSize {
		return nil, audiofp.Newf(audiofp.InvalidInput, "hop size must be in (0, window_size], got %d", hopSize)
	}

	timeFrames := (len(buf)-windowSize)/hopSize + 1
	if timeFrames < 1 {
		timeFrames = 1
	}
	freqBins := fftSize/2 + 1

	coeffs := preprocess.Coefficients(win, windowSize)
	frame := make([]float64, fftSize)
	data := make([]float64, timeFrames*freqBins)

	for t := 0; t < timeFrames; t++ {
		start := t * hopSize
		for i := range frame {
			frame[i] = 0
		}
		for i := 0; i < windowSize; i++ {
			idx := start + i
			if idx < len(buf) {
				frame[i] = buf[idx] * coeffs[i]
			}
		}

		spectrum := fft.FFTReal(frame)
		for f := 0; f < freqBins; f++ {
			data[t*freqBins+f] = cmplx.Abs(spectrum[f])
		}
	}

	return &audiofp.Spectrogram{
		Data:           data,
		TimeFrames:     timeFrames,
		FrequencyBins:  freqBins,
		TimeResolution: float64(hopSize) / float64(audiofp.CanonicalSampleRate),
		FreqResolution: float64(audiofp.CanonicalSampleRate) / float64(fftSize),
	}, nil
}
