// Package peaks implements constellation peak picking: local-maximum
// detection, an adaptive magnitude threshold, and Euclidean
// non-maximum suppression over a magnitude spectrogram.
package peaks

import (
	"sort"

	"github.com/sonicglyph/audiofp/pkg/audiofp"
)

// Detect extracts a ConstellationMap from spec using minPeakDistance,
// adaptiveFactor and minMagnitudeThreshold (see audiofp.Config for their
// defaults).
func Detect(spec *audiofp.Spectrogram, minPeakDistance int, adaptiveFactor, minMagnitudeThreshold float64) (*audiofp.ConstellationMap, error) {
	if spec == nil || len(spec.Data) == 0 {
		return nil, audiofp.New(audiofp.InvalidInput, "empty spectrogram")
	}

	T, F := spec.TimeFrames, spec.FrequencyBins
	var candidates []audiofp.SpectralPeak

	for t := 1; t < T-1; t++ {
		for f := 1; f < F-1; f++ {
			mag := spec.At(t, f)
			if mag < minMagnitudeThreshold {
				continue
			}
			if !isLocalMaximum(spec, t, f, mag) {
				continue
			}
			mean := regionMean(spec, t, f, 5)
			if mag < mean*(1+adaptiveFactor) || mag < minMagnitudeThreshold {
				continue
			}
			candidates = append(candidates, audiofp.SpectralPeak{
				TimeFrame:   t,
				FreqBin:     f,
				Magnitude:   mag,
				TimeSeconds: float64(t) * spec.TimeResolution,
				FreqHz:      float64(f) * spec.FreqResolution,
			})
		}
	}

	accepted := suppress(candidates, minPeakDistance)

	return &audiofp.ConstellationMap{
		Peaks:          accepted,
		TimeFrames:     T,
		FrequencyBins:  F,
		TimeResolution: spec.TimeResolution,
		FreqResolution: spec.FreqResolution,
	}, nil
}

// isLocalMaximum reports whether mag is strictly greater than every
// neighbour in the 3x3 window centred on (t, f). Ties fail.
func isLocalMaximum(spec *audiofp.Spectrogram, t, f int, mag float64) bool {
	for dt := -1; dt <= 1; dt++ {
		for df := -1; df <= 1; df++ {
			if dt == 0 && df == 0 {
				continue
			}
			if spec.At(t+dt, f+df) >= mag {
				return false
			}
		}
	}
	return true
}

// regionMean computes the arithmetic mean of spec over a (2*radius+1)^2
// region centred on (t, f), clipped to the spectrogram bounds. radius=5
// gives the 11x11 region the core specifies.
func regionMean(spec *audiofp.Spectrogram, t, f, radius int) float64 {
	t0, t1 := t-radius, t+radius
	if t0 < 0 {
		t0 = 0
	}
	if t1 > spec.TimeFrames-1 {
		t1 = spec.TimeFrames - 1
	}
	f0, f1 := f-radius, f+radius
	if f0 < 0 {
		f0 = 0
	}
	if f1 > spec.FrequencyBins-1 {
		f1 = spec.FrequencyBins - 1
	}

	var sum float64
	count := 0
	for tt := t0; tt <= t1; tt++ {
		for ff := f0; ff <= f1; ff++ {
			sum += spec.At(tt, ff)
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// suppress sorts candidates by magnitude descending (ties broken by scan
// order via a stable sort) and greedily accepts a peak only if its
// Euclidean distance to every previously accepted peak is >= minDistance.
func suppress(candidates []audiofp.SpectralPeak, minDistance int) []audiofp.SpectralPeak {
	if len(candidates) == 0 {
		return nil
	}

	ordered := make([]audiofp.SpectralPeak, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Magnitude > ordered[j].Magnitude
	})

	minDistSq := float64(minDistance) * float64(minDistance)
	var accepted []audiofp.SpectralPeak
	for _, c := range ordered {
		ok := true
		for _, a := range accepted {
			dt := float64(c.TimeFrame - a.TimeFrame)
			df := float64(c.FreqBin - a.FreqBin)
			if dt*dt+df*df < minDistSq {
				ok = false
				break
			}
		}
		if ok {
			accepted = append(accepted, c)
		}
	}
	return accepted
}
