package timeutil

import (
	"testing"
	"time"
)

func TestClock(t *testing.T) {
	cases := []struct {
		want string
		secs int
	}{
		{"0:00", 0},
		{"0:00", -5},
		{"0:59", 59},
		{"4:05", 245},
		{"59:59", 3599},
		{"1:00:00", 3600},
		{"1:02:09", 3729},
	}

	for _, tc := range cases {
		if got := Clock(tc.secs); got != tc.want {
			t.Errorf("Clock(%d): expected %s, but got %s", tc.secs, tc.want, got)
		}
	}
}

func TestHumanMinutes(t *testing.T) {
	cases := map[int]string{
		0:   "0m",
		45:  "45m",
		60:  "1h",
		80:  "1h 20m",
		135: "2h 15m",
	}

	for mins, want := range cases {
		if got := HumanMinutes(mins); got != want {
			t.Errorf("HumanMinutes(%d): expected %s, but got %s", mins, want, got)
		}
	}
}

func TestFromStr(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	got, err := FromStr("2024-06-01", now)
	if err != nil {
		t.Fatal(err)
	}

	if got.Year() != 2024 || got.Month() != time.June || got.Day() != 1 {
		t.Errorf("expected 2024-06-01, but got %s", got)
	}

	_, err = FromStr("not a date at all", now)
	if err == nil {
		t.Error("expected an error for an unparseable date")
	}
}
