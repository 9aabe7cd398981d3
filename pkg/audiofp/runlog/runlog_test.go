package runlog

import (
	"path/filepath"
	"testing"

	"github.com/sonicglyph/audiofp/pkg/audiofp"
	"github.com/sonicglyph/audiofp/pkg/audiofp/batch"
)

func TestRecordAndQuery(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.sqlite3")

	c, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Close()

	run := batch.Run{
		ID: "test-run-1",
		Results: []audiofp.BatchResult{
			{SongID: "a", Success: true, Fingerprints: []audiofp.Fingerprint{{HashValue: 1}}, TotalDurationMs: 1000, ProcessingTimeMs: 5},
			{SongID: "b", Success: false, ErrorMessage: "boom"},
		},
	}

	if err := c.Record(run); err != nil {
		t.Fatalf("Record: %v", err)
	}

	items, err := c.ItemsForRun(run.ID)
	if err != nil {
		t.Fatalf("ItemsForRun: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}

	var sawGood, sawBad bool
	for _, it := range items {
		switch it.SongID {
		case "a":
			sawGood = true
			if !it.Success || it.FingerprintCount != 1 {
				t.Errorf("item a: success=%v count=%d", it.Success, it.FingerprintCount)
			}
		case "b":
			sawBad = true
			if it.Success || it.ErrorMessage != "boom" {
				t.Errorf("item b: success=%v message=%q", it.Success, it.ErrorMessage)
			}
		}
	}
	if !sawGood || !sawBad {
		t.Fatalf("missing expected items: good=%v bad=%v", sawGood, sawBad)
	}
}

func TestOpenCreatesParentDir(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "sub", "nested.sqlite3")
	c, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	c.Close()
}
