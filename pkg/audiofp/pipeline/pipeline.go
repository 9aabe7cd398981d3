// Package pipeline composes the Preprocessor, FFT Engine, Peak Detector,
// Landmark Pairer and Hash Generator into the single process_sample
// operation the core library surface exposes.
package pipeline

import (
	"github.com/sonicglyph/audiofp/pkg/audiofp"
	"github.com/sonicglyph/audiofp/pkg/audiofp/codec"
	"github.com/sonicglyph/audiofp/pkg/audiofp/hash"
	"github.com/sonicglyph/audiofp/pkg/audiofp/landmark"
	"github.com/sonicglyph/audiofp/pkg/audiofp/peaks"
	"github.com/sonicglyph/audiofp/pkg/audiofp/preprocess"
	"github.com/sonicglyph/audiofp/pkg/audiofp/spectral"
)

// Pipeline owns an immutable Config and the FFT engine instance used
// across every run. A Pipeline is not safe for concurrent use by
// multiple goroutines against the same run; callers needing concurrency
// should hold one Pipeline per goroutine (§5).
type Pipeline struct {
	cfg    *audiofp.Config
	engine *spectral.Engine
}

// New builds a Pipeline from DefaultConfig with opts applied, validating
// the resulting configuration.
func New(opts ...audiofp.Option) (*Pipeline, error) {
	cfg := audiofp.NewConfig(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Pipeline{cfg: cfg, engine: spectral.NewEngine()}, nil
}

// Config returns the pipeline's immutable configuration.
func (p *Pipeline) Config() *audiofp.Config { return p.cfg }

// ProcessSample runs the full A->E chain over s and returns its
// fingerprints.
func (p *Pipeline) ProcessSample(s audiofp.Sample) ([]audiofp.Fingerprint, error) {
	canonical, err := preprocess.Canonicalize(s)
	if err != nil {
		return nil, err
	}

	spec, err := p.engine.STFT(canonical.Data, p.cfg.FFTSize, p.cfg.WindowSize, p.cfg.HopSize, p.cfg.Window)
	if err != nil {
		return nil, err
	}

	cm, err := peaks.Detect(spec, p.cfg.MinPeakDistance, p.cfg.AdaptiveFactor, p.cfg.MinMagnitudeThreshold)
	if err != nil {
		return nil, err
	}

	pairs := landmark.Pair(cm, p.cfg.MaxTimeDeltaMs, p.cfg.MaxFreqDeltaHz)
	fps := hash.Generate(pairs, p.cfg.FreqQuantizationHz, p.cfg.TimeQuantizationMs)

	if p.cfg.Logger != nil {
		p.cfg.Logger.Debugf("process_sample: %d peaks, %d pairs, %d fingerprints", len(cm.Peaks), len(pairs), len(fps))
	}

	return fps, nil
}

// Encode serialises fps using the Codec stage.
func (p *Pipeline) Encode(fps []audiofp.Fingerprint) []byte {
	return codec.Encode(fps)
}

// Decode deserialises a byte blob produced by Encode.
func (p *Pipeline) Decode(buf []byte) ([]audiofp.Fingerprint, error) {
	return codec.Decode(buf)
}
