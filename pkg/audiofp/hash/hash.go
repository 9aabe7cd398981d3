// Package hash derives the 32-bit wire-contract hash for a landmark pair
// and emits the resulting Fingerprint. The mix constants and quantisation
// rules here must stay bit-exact with every other implementation of this
// fingerprint format.
package hash

import (
	"math"

	"github.com/sonicglyph/audiofp/pkg/audiofp"
)

// mix applies the Jenkins-style integer hash mix. All arithmetic is
// mod 2^32 (Go's uint32 overflow semantics); shifts are logical.
func mix(v uint32) uint32 {
	v = (v + 0x7ed55d16) + (v << 12)
	v = (v ^ 0xc761c23c) ^ (v >> 19)
	v = (v + 0x165667b1) + (v << 5)
	v = (v + 0xd3a2646c) ^ (v << 9)
	v = (v + 0xfd7046c5) + (v << 3)
	v = (v ^ 0xb55a4f09) ^ (v >> 16)
	return v
}

// quantizeFreq implements qf(x) = clamp(floor(max(x,0)/freqQuantizationHz), 0, 65535).
func quantizeFreq(x, freqQuantizationHz float64) uint32 {
	if x < 0 {
		x = 0
	}
	q := math.Floor(x / freqQuantizationHz)
	return clamp16(q)
}

// quantizeTime implements qt(t) = clamp(floor(max(t,0)/timeQuantizationMs), 0, 65535).
func quantizeTime(t float64, timeQuantizationMs int) uint32 {
	if t < 0 {
		t = 0
	}
	q := math.Floor(t / float64(timeQuantizationMs))
	return clamp16(q)
}

func clamp16(q float64) uint32 {
	if q < 0 {
		return 0
	}
	if q > 65535 {
		return 65535
	}
	return uint32(q)
}

// Hash computes the 32-bit wire-contract hash for a landmark pair's
// (anchor_freq, target_freq, time_delta) coordinates.
func Hash(anchorFreqHz, targetFreqHz, timeDeltaMs float64, freqQuantizationHz float64, timeQuantizationMs int) uint32 {
	qAnchor := quantizeFreq(anchorFreqHz, freqQuantizationHz)
	qTarget := quantizeFreq(targetFreqHz, freqQuantizationHz)
	qDelta := quantizeTime(timeDeltaMs, timeQuantizationMs)
	return mix(qAnchor) ^ mix(qTarget) ^ mix(qDelta)
}

// Generate emits one Fingerprint per landmark pair.
func Generate(pairs []audiofp.LandmarkPair, freqQuantizationHz float64, timeQuantizationMs int) []audiofp.Fingerprint {
	if len(pairs) == 0 {
		return nil
	}
	out := make([]audiofp.Fingerprint, len(pairs))
	for i, p := range pairs {
		h := Hash(p.Anchor.FreqHz, p.Target.FreqHz, float64(p.TimeDeltaMs), freqQuantizationHz, timeQuantizationMs)
		out[i] = audiofp.Fingerprint{
			HashValue:    h,
			TimeOffsetMs: int32(math.Round(p.Anchor.TimeSeconds * 1000)),
			AnchorFreqHz: float32(p.Anchor.FreqHz),
			TargetFreqHz: float32(p.Target.FreqHz),
			TimeDeltaMs:  int32(p.TimeDeltaMs),
		}
	}
	return out
}
