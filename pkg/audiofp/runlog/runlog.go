// Package runlog persists Batch Driver run summaries to a local SQLite
// audit log: one row per batch run, one row per item in that run. This
// replaces the teacher's song/fingerprint reference index (the
// identification server's concern, out of scope here) with an
// operational record of what the driver actually did.
package runlog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sonicglyph/audiofp/pkg/audiofp/batch"
)

// DefaultDBFile is used when no path is given to Open.
const DefaultDBFile = "audiofp_runs.sqlite3"

const errClientNil = "runlog client is nil"

// Client wraps the gorm handle used to record batch runs.
type Client struct {
	DB *gorm.DB
}

// BatchRun is one invocation of batch.Process.
type BatchRun struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	ItemCount int
	CreatedAt time.Time
}

// BatchItem is one per-track result within a BatchRun.
type BatchItem struct {
	ID               uint   `gorm:"primaryKey;autoIncrement"`
	RunID            string `gorm:"type:varchar(36);index:idx_run"`
	SongID           string `json:"song_id"`
	FingerprintCount int    `json:"fingerprint_count"`
	TotalDurationMs  int64  `json:"total_duration_ms"`
	ProcessingTimeMs int64  `json:"processing_time_ms"`
	Success          bool   `json:"success"`
	ErrorMessage     string `json:"error_message"`
}

// Open opens (creating if needed) a SQLite database at dbPath and
// migrates the schema. An empty dbPath uses DefaultDBFile.
func Open(dbPath string) (*Client, error) {
	if dbPath == "" {
		dbPath = DefaultDBFile
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating runlog dir: %w", err)
		}
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("opening runlog sqlite db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql.DB from gorm: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&BatchRun{}, &BatchItem{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return &Client{DB: db}, nil
}

// Close releases the underlying database connection.
func (c *Client) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Record writes a completed batch.Run and its per-item results as one
// BatchRun row plus one BatchItem row per result.
func (c *Client) Record(run batch.Run) error {
	if c == nil || c.DB == nil {
		return errors.New(errClientNil)
	}

	return c.DB.Transaction(func(tx *gorm.DB) error {
		row := BatchRun{ID: run.ID, ItemCount: len(run.Results), CreatedAt: time.Now()}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("creating batch run row: %w", err)
		}

		items := make([]BatchItem, 0, len(run.Results))
		for _, r := range run.Results {
			items = append(items, BatchItem{
				RunID:            run.ID,
				SongID:           r.SongID,
				FingerprintCount: len(r.Fingerprints),
				TotalDurationMs:  r.TotalDurationMs,
				ProcessingTimeMs: r.ProcessingTimeMs,
				Success:          r.Success,
				ErrorMessage:     r.ErrorMessage,
			})
		}
		if len(items) > 0 {
			if err := tx.CreateInBatches(items, 500).Error; err != nil {
				return fmt.Errorf("creating batch item rows: %w", err)
			}
		}
		return nil
	})
}

// ItemsForRun returns the recorded per-item results for a run ID.
func (c *Client) ItemsForRun(runID string) ([]BatchItem, error) {
	if c == nil || c.DB == nil {
		return nil, errors.New(errClientNil)
	}
	var items []BatchItem
	if err := c.DB.Where("run_id = ?", runID).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("querying batch items: %w", err)
	}
	return items, nil
}
