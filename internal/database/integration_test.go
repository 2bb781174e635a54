package database

import (
	"os"
	"testing"
	"time"
)

func newTestDB(t *testing.T, path string) *DB {
	t.Helper()

	db, err := Initialize(path)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
		os.Remove(path)
	})

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

// TestDatabaseIntegration tests the complete database lifecycle
func TestDatabaseIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := newTestDB(t, "test_integration.db")

	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping database: %v", err)
	}

	tables := []string{
		"users", "classes", "students", "enrollments", "sports",
		"class_sessions", "attendance_records", "score_records",
		"achievement_defs", "medal_defs", "cosmetic_defs",
	}

	for _, table := range tables {
		query := "SELECT name FROM sqlite_master WHERE type='table' AND name=?"
		var name string
		if err := db.QueryRow(query, table).Scan(&name); err != nil {
			t.Errorf("Table %s not found: %v", table, err)
		}
	}
}

// TestSeedCatalog tests that seeding is populated once and idempotent
func TestSeedCatalog(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := newTestDB(t, "test_seed.db")

	if err := db.SeedCatalog(); err != nil {
		t.Fatalf("Failed to seed catalog: %v", err)
	}

	var sports int
	if err := db.QueryRow("SELECT COUNT(*) FROM sports").Scan(&sports); err != nil {
		t.Fatalf("Failed to count sports: %v", err)
	}
	if sports == 0 {
		t.Error("Expected seeded sports")
	}

	// Second run must not duplicate rows
	if err := db.SeedCatalog(); err != nil {
		t.Fatalf("Failed to re-seed catalog: %v", err)
	}

	var sportsAfter int
	if err := db.QueryRow("SELECT COUNT(*) FROM sports").Scan(&sportsAfter); err != nil {
		t.Fatalf("Failed to count sports: %v", err)
	}
	if sportsAfter != sports {
		t.Errorf("Re-seed changed sport count: %d -> %d", sports, sportsAfter)
	}

	// Every threshold predicate must require some history; a zero XP
	// threshold would hand the cosmetic to brand-new students.
	var freebies int
	err := db.QueryRow("SELECT COUNT(*) FROM cosmetic_defs WHERE unlock_kind = 'xp' AND unlock_threshold <= 0").Scan(&freebies)
	if err != nil {
		t.Fatalf("Failed to count cosmetics: %v", err)
	}
	if freebies != 0 {
		t.Errorf("Found %d xp cosmetics with threshold <= 0", freebies)
	}
}

// TestAttendanceUpsert tests that the dialect upsert converges on one
// row per (session, student)
func TestAttendanceUpsert(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := newTestDB(t, "test_upsert.db")

	_, err := db.Exec("INSERT INTO users (email, password_hash, name) VALUES (?, ?, ?)",
		"teacher@example.com", "hash", "Teacher")
	if err != nil {
		t.Fatalf("Failed to insert user: %v", err)
	}
	if _, err := db.Exec("INSERT INTO classes (teacher_id, name) VALUES (1, '5A')"); err != nil {
		t.Fatalf("Failed to insert class: %v", err)
	}
	if _, err := db.Exec("INSERT INTO students (name) VALUES ('Ada')"); err != nil {
		t.Fatalf("Failed to insert student: %v", err)
	}
	if _, err := db.Exec("INSERT INTO class_sessions (class_id, session_date) VALUES (1, ?)",
		time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Failed to insert session: %v", err)
	}

	upsert := db.Dialect.UpsertAttendanceQuery()
	date := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)

	if _, err := db.Exec(upsert, 1, 1, true, "", date); err != nil {
		t.Fatalf("First upsert failed: %v", err)
	}
	if _, err := db.Exec(upsert, 1, 1, false, "left early", date); err != nil {
		t.Fatalf("Second upsert failed: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM attendance_records WHERE session_id = 1 AND student_id = 1").Scan(&count); err != nil {
		t.Fatalf("Failed to count records: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 attendance row after re-record, got %d", count)
	}

	var present bool
	if err := db.QueryRow("SELECT present FROM attendance_records WHERE session_id = 1 AND student_id = 1").Scan(&present); err != nil {
		t.Fatalf("Failed to read record: %v", err)
	}
	if present {
		t.Error("Expected last write to win: present should be false")
	}
}
