package audiofp

import "testing"

func TestStatisticsEmpty(t *testing.T) {
	s := Statistics(nil)
	if s.Count != 0 {
		t.Errorf("Count = %d, want 0", s.Count)
	}
}

func TestStatisticsBasic(t *testing.T) {
	fps := []Fingerprint{
		{TimeOffsetMs: 100, AnchorFreqHz: 200, TargetFreqHz: 400},
		{TimeOffsetMs: 2100, AnchorFreqHz: 150, TargetFreqHz: 600},
	}
	s := Statistics(fps)
	if s.Count != 2 {
		t.Errorf("Count = %d, want 2", s.Count)
	}
	if s.MinTimeMs != 100 || s.MaxTimeMs != 2100 {
		t.Errorf("time span = [%d, %d], want [100, 2100]", s.MinTimeMs, s.MaxTimeMs)
	}
	if s.MinFreqHz != 150 || s.MaxFreqHz != 600 {
		t.Errorf("freq range = [%v, %v], want [150, 600]", s.MinFreqHz, s.MaxFreqHz)
	}
	wantDensity := 2.0 / 2000.0 * 1000
	if s.DensityPerS != wantDensity {
		t.Errorf("DensityPerS = %v, want %v", s.DensityPerS, wantDensity)
	}
}

func TestStatsString(t *testing.T) {
	if Statistics(nil).String() != "fingerprints: 0" {
		t.Errorf("String() = %q, want %q", Statistics(nil).String(), "fingerprints: 0")
	}
	s := Statistics([]Fingerprint{{TimeOffsetMs: 0, AnchorFreqHz: 1, TargetFreqHz: 2}, {TimeOffsetMs: 1000, AnchorFreqHz: 1, TargetFreqHz: 2}})
	if s.String() == "" {
		t.Errorf("String() is empty")
	}
}
