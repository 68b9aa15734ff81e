package timeutil

import (
	"errors"
	"testing"
	"time"
)

func TestZonedPartsDSTSpringForward(t *testing.T) {
	// 2024-03-10 is the US spring-forward day: 02:00 EST jumps to 03:00 EDT.
	cases := []struct {
		instant string
		ymd     string
		hour    int
		minute  int
	}{
		{"2024-03-10T06:59:00Z", "2024-03-10", 1, 59},  // 01:59 EST
		{"2024-03-10T07:00:00Z", "2024-03-10", 3, 0},   // 03:00 EDT, skipped hour
		{"2024-03-11T00:02:00Z", "2024-03-10", 20, 2},  // 20:02 EDT, reminder window
		{"2024-03-11T04:00:00Z", "2024-03-11", 0, 0},   // local midnight rollover
	}

	for _, tc := range cases {
		instant, err := time.Parse(time.RFC3339, tc.instant)
		if err != nil {
			t.Fatalf("bad test instant %q: %v", tc.instant, err)
		}
		parts, err := ZonedParts(instant, "America/New_York")
		if err != nil {
			t.Fatalf("ZonedParts(%s) returned error: %v", tc.instant, err)
		}
		if parts.YMD != tc.ymd || parts.Hour != tc.hour || parts.Minute != tc.minute {
			t.Errorf("ZonedParts(%s) = %+v, want %s %02d:%02d", tc.instant, parts, tc.ymd, tc.hour, tc.minute)
		}
	}
}

func TestZonedPartsDateChangesOncePerDay(t *testing.T) {
	// Across the 23-hour DST day the date must advance exactly once.
	start, _ := time.Parse(time.RFC3339, "2024-03-10T05:00:00Z") // local midnight EST
	prev := ""
	changes := 0
	for i := 0; i <= 24; i++ {
		parts, err := ZonedParts(start.Add(time.Duration(i)*time.Hour), "America/New_York")
		if err != nil {
			t.Fatalf("ZonedParts returned error: %v", err)
		}
		if prev != "" && parts.YMD != prev {
			if parts.YMD < prev {
				t.Fatalf("date went backwards: %s after %s", parts.YMD, prev)
			}
			changes++
		}
		prev = parts.YMD
	}
	if changes != 1 {
		t.Errorf("expected exactly 1 date change across the DST day, got %d", changes)
	}
}

func TestZonedPartsDateRollover(t *testing.T) {
	instant, _ := time.Parse(time.RFC3339, "2026-01-04T15:00:00Z")
	parts, err := ZonedParts(instant, "Asia/Tokyo")
	if err != nil {
		t.Fatalf("ZonedParts returned error: %v", err)
	}
	if parts.YMD != "2026-01-05" || parts.Hour != 0 || parts.Minute != 0 {
		t.Errorf("unexpected parts: %+v", parts)
	}
}

func TestZonedPartsEmptyTimezoneFallsBackToUTC(t *testing.T) {
	instant, _ := time.Parse(time.RFC3339, "2026-01-05T23:30:00Z")
	parts, err := ZonedParts(instant, "")
	if err != nil {
		t.Fatalf("ZonedParts returned error: %v", err)
	}
	if parts.YMD != "2026-01-05" || parts.Hour != 23 || parts.Minute != 30 {
		t.Errorf("unexpected parts: %+v", parts)
	}
}

func TestZonedPartsInvalidTimezone(t *testing.T) {
	_, err := ZonedParts(time.Now(), "Not/AZone")
	if !errors.Is(err, ErrInvalidTimezone) {
		t.Fatalf("expected ErrInvalidTimezone, got %v", err)
	}
}

func TestNextDate(t *testing.T) {
	cases := []struct{ in, want string }{
		{"2024-02-28", "2024-02-29"}, // leap year
		{"2023-02-28", "2023-03-01"},
		{"2024-12-31", "2025-01-01"},
		{"2024-03-10", "2024-03-11"}, // DST day, pure calendar arithmetic
	}
	for _, tc := range cases {
		got, err := NextDate(tc.in)
		if err != nil {
			t.Fatalf("NextDate(%s) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("NextDate(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}

	if _, err := NextDate("not-a-date"); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestIsValidYMD(t *testing.T) {
	if !IsValidYMD("2024-03-10") {
		t.Error("expected 2024-03-10 to be valid")
	}
	for _, s := range []string{"2024-3-10", "20240310", "2024-13-01", ""} {
		if IsValidYMD(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}
