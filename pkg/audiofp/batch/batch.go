// Package batch implements the Batch Driver: running the A->E pipeline
// over many tracks and collecting per-track results without letting one
// failure halt the run.
package batch

import (
	"time"

	"github.com/google/uuid"

	"github.com/sonicglyph/audiofp/pkg/audiofp"
	"github.com/sonicglyph/audiofp/pkg/audiofp/pipeline"
)

// nowFunc is an indirection over time.Now so tests can stub wall-clock
// timing deterministically.
var nowFunc = time.Now

// Run is one invocation of Process: a correlation ID plus the per-item
// results, in input order.
type Run struct {
	ID      string
	Results []audiofp.BatchResult
}

// Process runs p.ProcessSample over each sample, pairing it with its
// song ID. samples and ids must be the same length; a mismatch fails
// fast before any item is processed. A per-item failure is captured in
// that item's BatchResult with Success=false and does not stop the run.
func Process(p *pipeline.Pipeline, samples []audiofp.Sample, ids []string) (Run, error) {
	if len(samples) != len(ids) {
		return Run{}, audiofp.Newf(audiofp.InvalidInput, "samples (%d) and ids (%d) must have equal length", len(samples), len(ids))
	}

	run := Run{
		ID:      uuid.NewString(),
		Results: make([]audiofp.BatchResult, len(samples)),
	}

	for i, s := range samples {
		start := nowFunc()
		fps, err := p.ProcessSample(s)
		elapsedMs := nowFunc().Sub(start).Milliseconds()

		result := audiofp.BatchResult{
			SongID:           ids[i],
			TotalDurationMs:  s.DurationMs(),
			ProcessingTimeMs: elapsedMs,
		}
		if err != nil {
			result.Success = false
			result.ErrorMessage = err.Error()
		} else {
			result.Success = true
			result.Fingerprints = fps
		}
		run.Results[i] = result
	}

	return run, nil
}
