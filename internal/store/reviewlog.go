package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmoretti/wordflow/internal/srs"
)

// ReviewEvent records one committed review and the scheduling state that
// resulted from it.
type ReviewEvent struct {
	ID         string
	Sequence   int64
	CardID     string
	Outcome    srs.Outcome
	Ease       float64
	Interval   time.Duration
	Due        time.Time
	ReviewedAt time.Time
}

// ReviewStats aggregates the review log for the stats command.
type ReviewStats struct {
	Total       int
	ByOutcome   map[srs.Outcome]int
	CardsSeen   int
	FirstReview time.Time
	LastReview  time.Time
}

// ReviewLogRepo provides append and read access to the review history.
// The log is informational: appends are best-effort and failures never
// interrupt the study flow.
type ReviewLogRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

// Append records a review event. The event's ID and Sequence are assigned
// here.
func (r *ReviewLogRepo) Append(ctx context.Context, ev ReviewEvent) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO review_log (id, sequence, card_id, outcome, ease, interval_secs, due_at, reviewed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.New().String(),
		seqNum,
		ev.CardID,
		string(ev.Outcome),
		ev.Ease,
		ev.Interval.Seconds(),
		ev.Due.UTC().Format(time.RFC3339),
		ev.ReviewedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("append review event: %w", err)
	}
	return nil
}

// Recent returns the most recent events, newest first.
func (r *ReviewLogRepo) Recent(ctx context.Context, limit int) ([]ReviewEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, sequence, card_id, outcome, ease, interval_secs, due_at, reviewed_at
		 FROM review_log ORDER BY sequence DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent reviews: %w", err)
	}
	defer rows.Close()

	var events []ReviewEvent
	for rows.Next() {
		ev, err := scanReviewEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// Stats aggregates the full review log.
func (r *ReviewLogRepo) Stats(ctx context.Context) (ReviewStats, error) {
	stats := ReviewStats{ByOutcome: make(map[srs.Outcome]int)}

	rows, err := r.db.QueryContext(ctx,
		`SELECT outcome, COUNT(*) FROM review_log GROUP BY outcome`,
	)
	if err != nil {
		return stats, fmt.Errorf("query outcome counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var outcome string
		var count int
		if err := rows.Scan(&outcome, &count); err != nil {
			return stats, fmt.Errorf("scan outcome count: %w", err)
		}
		o, err := srs.ParseOutcome(outcome)
		if err != nil {
			continue
		}
		stats.ByOutcome[o] = count
		stats.Total += count
	}
	if err := rows.Err(); err != nil {
		return stats, err
	}

	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT card_id) FROM review_log`,
	).Scan(&stats.CardsSeen)
	if err != nil {
		return stats, fmt.Errorf("query cards seen: %w", err)
	}

	if stats.Total > 0 {
		var first, last string
		err = r.db.QueryRowContext(ctx,
			`SELECT MIN(reviewed_at), MAX(reviewed_at) FROM review_log`,
		).Scan(&first, &last)
		if err != nil {
			return stats, fmt.Errorf("query review range: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, first); err == nil {
			stats.FirstReview = t
		}
		if t, err := time.Parse(time.RFC3339, last); err == nil {
			stats.LastReview = t
		}
	}

	return stats, nil
}

// Reset deletes the full review history.
func (r *ReviewLogRepo) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM review_log`); err != nil {
		return fmt.Errorf("reset review log: %w", err)
	}
	return nil
}

func scanReviewEvent(rows *sql.Rows) (ReviewEvent, error) {
	var ev ReviewEvent
	var outcome, dueAt, reviewedAt string
	var intervalSecs float64
	err := rows.Scan(&ev.ID, &ev.Sequence, &ev.CardID, &outcome, &ev.Ease, &intervalSecs, &dueAt, &reviewedAt)
	if err != nil {
		return ev, fmt.Errorf("scan review event: %w", err)
	}
	ev.Outcome = srs.Outcome(outcome)
	ev.Interval = time.Duration(intervalSecs * float64(time.Second))
	if t, err := time.Parse(time.RFC3339, dueAt); err == nil {
		ev.Due = t
	}
	if t, err := time.Parse(time.RFC3339, reviewedAt); err == nil {
		ev.ReviewedAt = t
	}
	return ev, nil
}
