package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmoretti/wordflow/internal/srs"
)

// progressKey is the single fixed key the whole progress mapping is stored
// under. The schema carries no version field; identity changes are handled
// by the legacy-id fallback at load time, not by migration tooling.
const progressKey = "vocabulary.progress"

// progressRecord is the persisted form of srs.Progress.
type progressRecord struct {
	Ease            float64 `json:"ease"`
	IntervalSeconds float64 `json:"intervalSeconds"`
	DueAt           string  `json:"dueAt"`
	RepetitionCount int     `json:"repetitionCount"`
	LastReviewedAt  string  `json:"lastReviewedAt"`
}

// ProgressRepo persists the card-id to Progress mapping as one JSON
// document under a fixed key. Writes replace the whole document
// (write-through, human-paced review rate makes batching unnecessary).
type ProgressRepo struct {
	db *sql.DB
}

// Load returns the stored mapping. An absent or corrupt payload yields an
// empty mapping, never an error — losing progress is recoverable, crashing
// the study flow is not. Only genuine database failures are reported.
func (r *ProgressRepo) Load(ctx context.Context) (map[string]srs.Progress, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM progress WHERE key = ?`, progressKey,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return map[string]srs.Progress{}, nil
	}
	if err != nil {
		return map[string]srs.Progress{}, fmt.Errorf("load progress: %w", err)
	}

	var records map[string]progressRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		// Corrupt payload is treated as "no progress".
		return map[string]srs.Progress{}, nil
	}

	progress := make(map[string]srs.Progress, len(records))
	for id, rec := range records {
		p, ok := recordToProgress(rec)
		if !ok {
			continue
		}
		progress[id] = p
	}
	return progress, nil
}

// Save replaces the stored mapping with the given one.
func (r *ProgressRepo) Save(ctx context.Context, progress map[string]srs.Progress) error {
	records := make(map[string]progressRecord, len(progress))
	for id, p := range progress {
		records[id] = progressToRecord(p)
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO progress (key, data) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET data = excluded.data`,
		progressKey, string(data),
	)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// Reset removes the stored mapping entirely. Deleting the row rather than
// writing an empty document avoids stale keys if the record shape evolves.
func (r *ProgressRepo) Reset(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM progress WHERE key = ?`, progressKey,
	)
	if err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}

func progressToRecord(p srs.Progress) progressRecord {
	return progressRecord{
		Ease:            p.Ease,
		IntervalSeconds: p.Interval.Seconds(),
		DueAt:           p.Due.UTC().Format(time.RFC3339),
		RepetitionCount: p.Repetitions,
		LastReviewedAt:  p.LastReviewed.UTC().Format(time.RFC3339),
	}
}

func recordToProgress(rec progressRecord) (srs.Progress, bool) {
	due, err := time.Parse(time.RFC3339, rec.DueAt)
	if err != nil {
		return srs.Progress{}, false
	}
	last, err := time.Parse(time.RFC3339, rec.LastReviewedAt)
	if err != nil {
		return srs.Progress{}, false
	}
	return srs.Progress{
		Ease:         rec.Ease,
		Interval:     time.Duration(rec.IntervalSeconds * float64(time.Second)),
		Due:          due,
		Repetitions:  rec.RepetitionCount,
		LastReviewed: last,
	}, true
}
