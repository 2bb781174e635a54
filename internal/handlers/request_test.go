package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sportclash/internal/models"
)

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid request",
			body:    `{"studentId": 5, "sportId": 2, "score": 80}`,
			wantErr: false,
		},
		{
			name:    "malformed JSON",
			body:    `{"studentId": `,
			wantErr: true,
		},
		{
			name:    "missing required field",
			body:    `{"sportId": 2, "score": 80}`,
			wantErr: true,
		},
		{
			name:    "score above maximum",
			body:    `{"studentId": 5, "sportId": 2, "score": 101}`,
			wantErr: true,
		},
		{
			name:    "score below minimum",
			body:    `{"studentId": 5, "sportId": 2, "score": -1}`,
			wantErr: true,
		},
		{
			name:    "bad date format",
			body:    `{"studentId": 5, "sportId": 2, "score": 80, "date": "02/03/2026"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/api/scores", strings.NewReader(tt.body))
			var req recordScoreRequest
			err := decodeAndValidate(r, &req)
			if tt.wantErr && !models.IsValidation(err) {
				t.Errorf("err = %v, want ValidationError", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	date, err := parseDate("2026-03-02")
	if err != nil {
		t.Fatalf("parseDate failed: %v", err)
	}
	want := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if !date.Equal(want) {
		t.Errorf("date = %v, want %v", date, want)
	}

	if _, err := parseDate("not-a-date"); !models.IsValidation(err) {
		t.Errorf("err = %v, want ValidationError", err)
	}

	today, err := parseDate("")
	if err != nil {
		t.Fatalf("parseDate empty failed: %v", err)
	}
	if today.Hour() != 0 || today.Location() != time.UTC {
		t.Errorf("empty date should be UTC midnight, got %v", today)
	}
}
