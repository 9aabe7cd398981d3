package audiofp

import "testing"

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestNewConfigAppliesOptions(t *testing.T) {
	cfg := NewConfig(WithFFTSize(4096), WithHopSize(512), WithWindowSize(2048))
	if cfg.FFTSize != 4096 {
		t.Errorf("FFTSize = %d, want 4096", cfg.FFTSize)
	}
	if cfg.HopSize != 512 {
		t.Errorf("HopSize = %d, want 512", cfg.HopSize)
	}
}

func TestValidateRejectsNonPowerOfTwoFFT(t *testing.T) {
	cfg := NewConfig(WithFFTSize(100))
	if err := cfg.Validate(); !Is(err, InvalidInput) {
		t.Fatalf("expected InvalidInput, got %v", err)
	}
}

func TestValidateRejectsHopGreaterThanWindow(t *testing.T) {
	cfg := NewConfig(WithWindowSize(1024), WithHopSize(2048))
	if err := cfg.Validate(); !Is(err, InvalidInput) {
		t.Fatalf("expected InvalidInput, got %v", err)
	}
}

func TestValidateRejectsOutOfRangeAdaptiveFactor(t *testing.T) {
	cfg := NewConfig(WithAdaptiveFactor(1.5))
	if err := cfg.Validate(); !Is(err, InvalidInput) {
		t.Fatalf("expected InvalidInput, got %v", err)
	}
}
