package hash

import (
	"testing"

	"github.com/sonicglyph/audiofp/pkg/audiofp"
)

// TestHashLiteral checks in the wire-contract literal for the core's
// seed scenario: anchor=1000Hz, target=1500Hz, time_delta=500ms, with
// the default quantisation factors (freq_q=10, time_q=50). This value
// must never change; it is the interoperability anchor for the format.
func TestHashLiteral(t *testing.T) {
	const want uint32 = 0x43e4a915
	got := Hash(1000, 1500, 500, 10.0, 50)
	if got != want {
		t.Fatalf("Hash(1000,1500,500) = 0x%08x, want 0x%08x", got, want)
	}
}

func TestHashDeterministic(t *testing.T) {
	a := Hash(1000, 1500, 500, 10.0, 50)
	b := Hash(1000, 1500, 500, 10.0, 50)
	if a != b {
		t.Fatalf("hash not deterministic: %d != %d", a, b)
	}
}

func TestQuantizeClampsNegative(t *testing.T) {
	if q := quantizeFreq(-100, 10.0); q != 0 {
		t.Errorf("quantizeFreq(-100) = %d, want 0", q)
	}
	if q := quantizeTime(-50, 50); q != 0 {
		t.Errorf("quantizeTime(-50) = %d, want 0", q)
	}
}

func TestQuantizeSaturates(t *testing.T) {
	if q := quantizeFreq(1_000_000, 10.0); q != 65535 {
		t.Errorf("quantizeFreq(1e6) = %d, want 65535", q)
	}
}

func TestGenerateFields(t *testing.T) {
	pairs := []audiofp.LandmarkPair{
		{
			Anchor:      audiofp.SpectralPeak{TimeSeconds: 1.0, FreqHz: 1000},
			Target:      audiofp.SpectralPeak{TimeSeconds: 1.5, FreqHz: 1500},
			TimeDeltaMs: 500,
			FreqDeltaHz: 500,
		},
	}
	fps := Generate(pairs, 10.0, 50)
	if len(fps) != 1 {
		t.Fatalf("got %d fingerprints, want 1", len(fps))
	}
	fp := fps[0]
	if fp.TimeOffsetMs != 1000 {
		t.Errorf("TimeOffsetMs = %d, want 1000", fp.TimeOffsetMs)
	}
	if fp.AnchorFreqHz != 1000 || fp.TargetFreqHz != 1500 {
		t.Errorf("freqs = (%v, %v), want (1000, 1500)", fp.AnchorFreqHz, fp.TargetFreqHz)
	}
	if fp.TimeDeltaMs != 500 {
		t.Errorf("TimeDeltaMs = %d, want 500", fp.TimeDeltaMs)
	}
	if fp.HashValue != Hash(1000, 1500, 500, 10.0, 50) {
		t.Errorf("HashValue mismatch")
	}
}

func TestGenerateEmpty(t *testing.T) {
	if fps := Generate(nil, 10.0, 50); fps != nil {
		t.Errorf("got %v, want nil", fps)
	}
}
