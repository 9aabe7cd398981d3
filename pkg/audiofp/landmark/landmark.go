// Package landmark pairs constellation peaks into anchor->target
// landmarks under configured time and frequency gates.
package landmark

import (
	"math"
	"sort"

	"github.com/sonicglyph/audiofp/pkg/audiofp"
)

// Pair forms every ordered (anchor, target) pair from cm's peaks with
// anchor strictly earlier in time, 0 <= time_delta_ms <= maxTimeDeltaMs,
// and |freq_delta_hz| <= maxFreqDeltaHz.
//
// Peaks are sorted by time_seconds ascending (stable) first; for each
// anchor i, j walks forward from i+1 until the time gate is exceeded.
func Pair(cm *audiofp.ConstellationMap, maxTimeDeltaMs int, maxFreqDeltaHz float64) []audiofp.LandmarkPair {
	if cm == nil || len(cm.Peaks) == 0 {
		return nil
	}

	sorted := make([]audiofp.SpectralPeak, len(cm.Peaks))
	copy(sorted, cm.Peaks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TimeSeconds < sorted[j].TimeSeconds
	})

	maxTimeDeltaS := float64(maxTimeDeltaMs) / 1000.0
	var pairs []audiofp.LandmarkPair

	for i := 0; i < len(sorted); i++ {
		anchor := sorted[i]
		for j := i + 1; j < len(sorted); j++ {
			target := sorted[j]
			dtS := target.TimeSeconds - anchor.TimeSeconds
			if dtS > maxTimeDeltaS {
				break
			}
			if dtS <= 0 {
				// Equal-time peaks are skipped; sort is stable so later
				// j at the same timestamp never precedes anchor in time.
				continue
			}
			dfHz := target.FreqHz - anchor.FreqHz
			if math.Abs(dfHz) > maxFreqDeltaHz {
				continue
			}
			pairs = append(pairs, audiofp.LandmarkPair{
				Anchor:      anchor,
				Target:      target,
				TimeDeltaMs: int(math.Round(dtS * 1000)),
				FreqDeltaHz: dfHz,
			})
		}
	}

	return pairs
}
