// Package preprocess implements the audio fingerprinting pipeline's first
// stage: downmix to mono, resample to the canonical rate, and peak
// normalise. Window generation lives here too since §4.A defines it,
// even though the STFT stage (spectral) is what applies it.
package preprocess

import (
	"math"

	"github.com/mjibson/go-dsp/window"

	"github.com/sonicglyph/audiofp/pkg/audiofp"
)

// Downmix converts an interleaved multichannel Sample to mono.
//
// Two channels average L and R: m[i] = 0.5*(L[i]+R[i]). One channel
// passes through unchanged. Any other channel count is Unsupported. An
// odd-length stereo buffer (a malformed interleave) is InvalidInput.
func Downmix(s audiofp.Sample) (audiofp.Sample, error) {
	switch s.Channels {
	case 1:
		out := make([]float64, len(s.Data))
		copy(out, s.Data)
		return audiofp.Sample{Data: out, SampleRate: s.SampleRate, Channels: 1}, nil
	case 2:
		if len(s.Data)%2 != 0 {
			return audiofp.Sample{}, audiofp.New(audiofp.InvalidInput, "stereo buffer has odd length")
		}
		out := make([]float64, len(s.Data)/2)
		for i := range out {
			out[i] = 0.5 * (s.Data[2*i] + s.Data[2*i+1])
		}
		return audiofp.Sample{Data: out, SampleRate: s.SampleRate, Channels: 1}, nil
	default:
		return audiofp.Sample{}, audiofp.Newf(audiofp.Unsupported, "unsupported channel count: %d", s.Channels)
	}
}

// Resample linearly interpolates a mono buffer from s.SampleRate to
// targetRate. Output length is floor(input_len * target_rate / input_rate).
// If the rates already match, it returns a copy.
func Resample(s audiofp.Sample, targetRate int) (audiofp.Sample, error) {
	if s.SampleRate <= 0 || targetRate <= 0 {
		return audiofp.Sample{}, audiofp.New(audiofp.InvalidInput, "sample rates must be positive")
	}
	if len(s.Data) == 0 {
		return audiofp.Sample{}, audiofp.New(audiofp.InvalidInput, "empty input")
	}
	if s.SampleRate == targetRate {
		out := make([]float64, len(s.Data))
		copy(out, s.Data)
		return audiofp.Sample{Data: out, SampleRate: targetRate, Channels: s.Channels}, nil
	}

	inLen := len(s.Data)
	outLen := inLen * targetRate / s.SampleRate
	out := make([]float64, outLen)
	lastIdx := inLen - 1

	for i := 0; i < outLen; i++ {
		pos := float64(i) * float64(s.SampleRate) / float64(targetRate)
		k := int(math.Floor(pos))
		frac := pos - float64(k)
		k1 := k + 1
		if k1 > lastIdx {
			k1 = lastIdx
		}
		if k > lastIdx {
			k = lastIdx
		}
		out[i] = s.Data[k] + frac*(s.Data[k1]-s.Data[k])
	}

	return audiofp.Sample{Data: out, SampleRate: targetRate, Channels: s.Channels}, nil
}

// Normalize peak-normalises a buffer to max|x| == 1. Buffers whose peak
// magnitude is below 1e-10 (effective silence) are returned unchanged.
func Normalize(s audiofp.Sample) audiofp.Sample {
	peak := 0.0
	for _, v := range s.Data {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	out := make([]float64, len(s.Data))
	if peak < 1e-10 {
		copy(out, s.Data)
		return audiofp.Sample{Data: out, SampleRate: s.SampleRate, Channels: s.Channels}
	}
	scale := 1.0 / peak
	for i, v := range s.Data {
		out[i] = v * scale
	}
	return audiofp.Sample{Data: out, SampleRate: s.SampleRate, Channels: s.Channels}
}

// Canonicalize runs the full Preprocessor contract: downmix, resample to
// audiofp.CanonicalSampleRate, then normalise.
func Canonicalize(s audiofp.Sample) (audiofp.Sample, error) {
	if len(s.Data) == 0 {
		return audiofp.Sample{}, audiofp.New(audiofp.InvalidInput, "empty input")
	}
	if s.SampleRate <= 0 {
		return audiofp.Sample{}, audiofp.New(audiofp.InvalidInput, "sample rate must be positive")
	}

	mono, err := Downmix(s)
	if err != nil {
		return audiofp.Sample{}, err
	}
	resampled, err := Resample(mono, audiofp.CanonicalSampleRate)
	if err != nil {
		return audiofp.Sample{}, err
	}
	return Normalize(resampled), nil
}

// Coefficients returns the N window coefficients for the given selector.
// Hann delegates to go-dsp/window.Hann; Hamming is hand-rolled since
// go-dsp does not ship one.
func Coefficients(w audiofp.WindowFunc, n int) []float64 {
	if w == audiofp.Hamming {
		out := make([]float64, n)
		if n == 1 {
			out[0] = 1
			return out
		}
		for i := 0; i < n; i++ {
			out[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n-1))
		}
		return out
	}
	return window.Hann(n)
}

// Apply multiplies frame point-wise by coeffs in place. coeffs must have
// the same length as frame.
func Apply(frame, coeffs []float64) {
	for i := range frame {
		frame[i] *= coeffs[i]
	}
}
