package models

import "time"

// Score bounds for a single recorded score, inclusive.
const (
	MinScore = 0
	MaxScore = 100
)

// ScoreRecord represents one score a student earned for a sport on a
// date. Records accumulate as history; the same (student, sport) on
// different sessions are distinct rows.
type ScoreRecord struct {
	ID         int64
	StudentID  int64
	SportID    int64
	SessionID  *int64
	Score      int
	Note       string
	RecordDate time.Time
	CreatedAt  time.Time
}

// BatchScoreResult summarises a batch score call. Failed entries did
// not abort the rest of the batch.
type BatchScoreResult struct {
	Saved  []ScoreRecord
	Failed []RejectedEntry
}
