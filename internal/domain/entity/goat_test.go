// Package entity contains domain entities.
package entity

import (
	"testing"
	"time"
)

func TestGoat_AgeInMonths(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		birthDate *time.Time
		want      *int
	}{
		{
			name:      "no birth date",
			birthDate: nil,
			want:      nil,
		},
		{
			name:      "exactly one year old",
			birthDate: datePtr(2025, time.August, 15),
			want:      intPtr(12),
		},
		{
			name:      "day of month not yet reached",
			birthDate: datePtr(2026, time.February, 20),
			want:      intPtr(5),
		},
		{
			name:      "day of month already passed",
			birthDate: datePtr(2026, time.February, 10),
			want:      intPtr(6),
		},
		{
			name:      "born today",
			birthDate: datePtr(2026, time.August, 15),
			want:      intPtr(0),
		},
		{
			name:      "future birth date clamps to zero",
			birthDate: datePtr(2026, time.December, 1),
			want:      intPtr(0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goat := &Goat{BirthDate: tt.birthDate}
			got := goat.AgeInMonths(now)

			if tt.want == nil {
				if got != nil {
					t.Errorf("expected nil age, got %d", *got)
				}
				return
			}

			if got == nil {
				t.Fatalf("expected age %d, got nil", *tt.want)
			}
			if *got != *tt.want {
				t.Errorf("expected age %d, got %d", *tt.want, *got)
			}
		})
	}
}

func TestGoatStatus_IsValid(t *testing.T) {
	valid := []GoatStatus{GoatStatusHealthy, GoatStatusSick, GoatStatusSold, GoatStatusDeceased}
	for _, status := range valid {
		if !status.IsValid() {
			t.Errorf("expected status %q to be valid", status)
		}
	}

	if GoatStatus("retired").IsValid() {
		t.Error("expected unknown status to be invalid")
	}
	if GoatStatus("").IsValid() {
		t.Error("expected empty status to be invalid")
	}
}

func TestAliveStatuses(t *testing.T) {
	statuses := AliveStatuses()

	if len(statuses) != 2 {
		t.Fatalf("expected 2 alive statuses, got %d", len(statuses))
	}
	for _, status := range statuses {
		if status == GoatStatusSold || status == GoatStatusDeceased {
			t.Errorf("status %q should not count as alive", status)
		}
	}
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func intPtr(v int) *int {
	return &v
}
