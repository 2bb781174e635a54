package models

import "time"

// AttendanceRecord represents one student's presence for one session.
// At most one record exists per (session, student); re-recording
// overwrites the presence flag rather than appending.
type AttendanceRecord struct {
	ID         int64
	SessionID  int64
	StudentID  int64
	Present    bool
	Note       string
	RecordDate time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BatchAttendanceEntry is one roster entry in a batch attendance call
type BatchAttendanceEntry struct {
	StudentID int64
	Present   bool
	Note      string
}

// RejectedEntry reports a single entry that failed inside a batch call
type RejectedEntry struct {
	StudentID int64
	Reason    string
}

// BatchAttendanceSummary summarises a batch attendance call. Rejected
// entries did not abort the rest of the batch.
type BatchAttendanceSummary struct {
	PresentCount int
	AbsentCount  int
	Rejected     []RejectedEntry
}
