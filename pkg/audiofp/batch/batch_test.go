package batch

import (
	"testing"

	"github.com/sonicglyph/audiofp/pkg/audiofp"
	"github.com/sonicglyph/audiofp/pkg/audiofp/pipeline"
)

func TestProcessLengthMismatch(t *testing.T) {
	p, err := pipeline.New()
	if err != nil {
		t.Fatalf("pipeline.New: %v", err)
	}
	samples := []audiofp.Sample{{Data: make([]float64, 100), SampleRate: 11025, Channels: 1}}
	ids := []string{"a", "b"}

	if _, err := Process(p, samples, ids); !audiofp.Is(err, audiofp.InvalidInput) {
		t.Fatalf("expected InvalidInput, got %v", err)
	}
}

func TestProcessOneBadInput(t *testing.T) {
	p, err := pipeline.New()
	if err != nil {
		t.Fatalf("pipeline.New: %v", err)
	}
	samples := []audiofp.Sample{
		{Data: make([]float64, 11025), SampleRate: 11025, Channels: 1},
		{Data: nil, SampleRate: 11025, Channels: 1},
	}
	ids := []string{"good", "bad"}

	run, err := Process(p, samples, ids)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(run.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(run.Results))
	}
	if !run.Results[0].Success {
		t.Errorf("results[0].Success = false, want true")
	}
	if run.Results[1].Success {
		t.Errorf("results[1].Success = true, want false")
	}
	if run.Results[1].ErrorMessage == "" {
		t.Errorf("results[1].ErrorMessage is empty, want non-empty")
	}
	if run.ID == "" {
		t.Errorf("run.ID is empty")
	}
}

func TestProcessPreservesOrderAndIDs(t *testing.T) {
	p, err := pipeline.New()
	if err != nil {
		t.Fatalf("pipeline.New: %v", err)
	}
	samples := make([]audiofp.Sample, 5)
	ids := make([]string, 5)
	for i := range samples {
		samples[i] = audiofp.Sample{Data: make([]float64, 11025), SampleRate: 11025, Channels: 1}
		ids[i] = string(rune('a' + i))
	}

	run, err := Process(p, samples, ids)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(run.Results) != len(samples) {
		t.Fatalf("len(Results) = %d, want %d", len(run.Results), len(samples))
	}
	for i, id := range ids {
		if run.Results[i].SongID != id {
			t.Errorf("Results[%d].SongID = %q, want %q", i, run.Results[i].SongID, id)
		}
	}
}
