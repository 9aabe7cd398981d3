package pipeline

import (
	"math"
	"testing"

	"github.com/sonicglyph/audiofp/pkg/audiofp"
)

func TestProcessSampleSilence(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s := audiofp.Sample{Data: make([]float64, 11025), SampleRate: 11025, Channels: 1}

	fps, err := p.ProcessSample(s)
	if err != nil {
		t.Fatalf("ProcessSample: %v", err)
	}
	if len(fps) != 0 {
		t.Errorf("got %d fingerprints for silence, want 0", len(fps))
	}
}

func TestProcessSamplePureTone(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	n := 11025 * 2 // 2 seconds, long enough for landmark pairs to form
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 1000 * float64(i) / audiofp.CanonicalSampleRate)
	}
	s := audiofp.Sample{Data: data, SampleRate: audiofp.CanonicalSampleRate, Channels: 1}

	fps, err := p.ProcessSample(s)
	if err != nil {
		t.Fatalf("ProcessSample: %v", err)
	}
	if len(fps) == 0 {
		t.Error("expected at least one fingerprint for a sustained pure tone")
	}
}

func TestProcessSampleStereoSilence(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	data := make([]float64, 22050*2)
	for i := 0; i < len(data); i += 2 {
		data[i] = 1
		data[i+1] = -1
	}
	s := audiofp.Sample{Data: data, SampleRate: 22050, Channels: 2}

	fps, err := p.ProcessSample(s)
	if err != nil {
		t.Fatalf("ProcessSample: %v", err)
	}
	if len(fps) != 0 {
		t.Errorf("got %d fingerprints for a downmixed-to-silence stereo buffer, want 0", len(fps))
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fps := []audiofp.Fingerprint{{HashValue: 1, TimeOffsetMs: 10, AnchorFreqHz: 100, TargetFreqHz: 200, TimeDeltaMs: 30}}

	decoded, err := p.Decode(p.Encode(fps))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(decoded) != 1 || decoded[0] != fps[0] {
		t.Errorf("round-trip mismatch: %+v", decoded)
	}
}

func TestNewInvalidConfig(t *testing.T) {
	_, err := New(audiofp.WithFFTSize(3))
	if !audiofp.Is(err, audiofp.InvalidInput) {
		t.Fatalf("expected InvalidInput, got %v", err)
	}
}
