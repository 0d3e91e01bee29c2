package reporting

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestPeriodStart(t *testing.T) {
	cases := []struct {
		name   string
		period PeriodType
		in     time.Time
		want   time.Time
	}{
		{"day is identity", PeriodDay, date(2026, time.February, 10), date(2026, time.February, 10)},
		{"week snaps to monday", PeriodWeek, date(2026, time.February, 12), date(2026, time.February, 9)},
		{"monday stays monday", PeriodWeek, date(2026, time.February, 9), date(2026, time.February, 9)},
		{"sunday belongs to preceding monday", PeriodWeek, date(2026, time.February, 15), date(2026, time.February, 9)},
		{"week crosses year boundary", PeriodWeek, date(2026, time.January, 1), date(2025, time.December, 29)},
		{"month snaps to first", PeriodMonth, date(2026, time.February, 28), date(2026, time.February, 1)},
		{"q1 snaps to january", PeriodQuarter, date(2026, time.March, 31), date(2026, time.January, 1)},
		{"q2 snaps to april", PeriodQuarter, date(2026, time.May, 15), date(2026, time.April, 1)},
		{"q3 snaps to july", PeriodQuarter, date(2026, time.September, 30), date(2026, time.July, 1)},
		{"q4 snaps to october", PeriodQuarter, date(2026, time.December, 1), date(2026, time.October, 1)},
		{"year snaps to january first", PeriodYear, date(2026, time.August, 31), date(2026, time.January, 1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PeriodStart(tc.in, tc.period)
			if !got.Equal(tc.want) {
				t.Fatalf("PeriodStart(%s, %s) = %s, want %s", tc.in.Format("2006-01-02"), tc.period, got.Format("2006-01-02"), tc.want.Format("2006-01-02"))
			}
		})
	}
}

func TestPeriodStartIsIdempotent(t *testing.T) {
	periods := []PeriodType{PeriodDay, PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear}
	probe := date(2026, time.June, 17)
	for _, period := range periods {
		once := PeriodStart(probe, period)
		twice := PeriodStart(once, period)
		if !once.Equal(twice) {
			t.Fatalf("%s: PeriodStart not idempotent: %s then %s", period, once, twice)
		}
	}
}

func TestPeriodStartConstantWithinPeriod(t *testing.T) {
	// Every day of February 2026 maps to the same month and quarter start.
	for day := 1; day <= 28; day++ {
		probe := date(2026, time.February, day)
		if got := PeriodStart(probe, PeriodMonth); !got.Equal(date(2026, time.February, 1)) {
			t.Fatalf("day %d: month start %s", day, got)
		}
		if got := PeriodStart(probe, PeriodQuarter); !got.Equal(date(2026, time.January, 1)) {
			t.Fatalf("day %d: quarter start %s", day, got)
		}
	}
}

func TestPeriodStartIgnoresTimeOfDayAndZone(t *testing.T) {
	athens := time.FixedZone("EET", 2*60*60)
	lateEvening := time.Date(2026, time.March, 31, 23, 45, 0, 0, athens)
	if got := PeriodStart(lateEvening, PeriodDay); !got.Equal(date(2026, time.March, 31)) {
		t.Fatalf("expected calendar date to be preserved, got %s", got)
	}
}

func TestParsePeriodType(t *testing.T) {
	if got, err := ParsePeriodType(""); err != nil || got != PeriodQuarter {
		t.Fatalf("expected empty input to default to quarter, got %q err %v", got, err)
	}
	if got, err := ParsePeriodType("MONTH"); err != nil || got != PeriodMonth {
		t.Fatalf("expected case-insensitive parse, got %q err %v", got, err)
	}
	if _, err := ParsePeriodType("fortnight"); err == nil {
		t.Fatal("expected error for unknown period type")
	}
}
