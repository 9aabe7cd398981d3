package audiofp

import "fmt"

// Stats is a diagnostic summary over a fingerprint set: count, time span,
// frequency range, and density. It mirrors the original engine's
// get_fingerprint_statistics report, split into fields so callers format
// it however they like; String() reproduces the original text report.
type Stats struct {
	Count        int
	MinTimeMs    int32
	MaxTimeMs    int32
	MinFreqHz    float32
	MaxFreqHz    float32
	DensityPerS  float64
}

// Statistics computes a Stats summary over fps. Count is zero for an
// empty set and every other field is zero-valued.
func Statistics(fps []Fingerprint) Stats {
	if len(fps) == 0 {
		return Stats{}
	}

	s := Stats{
		Count:     len(fps),
		MinTimeMs: fps[0].TimeOffsetMs,
		MaxTimeMs: fps[0].TimeOffsetMs,
		MinFreqHz: fps[0].AnchorFreqHz,
		MaxFreqHz: fps[0].AnchorFreqHz,
	}

	for _, fp := range fps {
		if fp.TimeOffsetMs < s.MinTimeMs {
			s.MinTimeMs = fp.TimeOffsetMs
		}
		if fp.TimeOffsetMs > s.MaxTimeMs {
			s.MaxTimeMs = fp.TimeOffsetMs
		}
		for _, freq := range [2]float32{fp.AnchorFreqHz, fp.TargetFreqHz} {
			if freq < s.MinFreqHz {
				s.MinFreqHz = freq
			}
			if freq > s.MaxFreqHz {
				s.MaxFreqHz = freq
			}
		}
	}

	if span := s.MaxTimeMs - s.MinTimeMs; span > 0 {
		s.DensityPerS = float64(s.Count) / float64(span) * 1000
	}

	return s
}

func (s Stats) String() string {
	if s.Count == 0 {
		return "fingerprints: 0"
	}
	return fmt.Sprintf(
		"fingerprints: %d, time span: [%d, %d] ms, freq range: [%.1f, %.1f] Hz, density: %.2f/s",
		s.Count, s.MinTimeMs, s.MaxTimeMs, s.MinFreqHz, s.MaxFreqHz, s.DensityPerS,
	)
}
