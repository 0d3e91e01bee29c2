package reporting

import (
	"math"
	"testing"
	"time"
)

func sample(employeeID, skillID int64, skillName string, rating float64, day time.Time) RatingSample {
	return RatingSample{
		EmployeeID: employeeID,
		SkillID:    skillID,
		SkillName:  skillName,
		Rating:     rating,
		EntryDate:  day,
	}
}

func TestGroupBucketsMonthlyDescending(t *testing.T) {
	samples := []RatingSample{
		sample(1, 10, "Go", 4.5, date(2026, time.January, 5)),
		sample(1, 10, "Go", 3.5, date(2026, time.February, 10)),
	}

	summaries := groupBuckets(samples, PeriodMonth, false)
	if len(summaries) != 1 {
		t.Fatalf("expected one skill summary, got %d", len(summaries))
	}
	periods := summaries[0].Periods
	if len(periods) != 2 {
		t.Fatalf("expected two period buckets, got %d", len(periods))
	}
	if !periods[0].PeriodStart.Equal(date(2026, time.February, 1)) || periods[0].AvgRating != 3.5 {
		t.Fatalf("expected most recent period first, got %+v", periods[0])
	}
	if !periods[1].PeriodStart.Equal(date(2026, time.January, 1)) || periods[1].AvgRating != 4.5 {
		t.Fatalf("expected january bucket second, got %+v", periods[1])
	}
}

func TestGroupBucketsStatsAndEmployeeCount(t *testing.T) {
	day := date(2026, time.April, 14)
	samples := []RatingSample{
		sample(1, 10, "Go", 2, day),
		sample(2, 10, "Go", 4, day),
		sample(1, 10, "Go", 3, day.AddDate(0, 0, 1)),
	}

	summaries := groupBuckets(samples, PeriodQuarter, true)
	if len(summaries) != 1 || len(summaries[0].Periods) != 1 {
		t.Fatalf("expected one skill with one quarter bucket, got %+v", summaries)
	}
	bucket := summaries[0].Periods[0]
	if bucket.MinRating != 2 || bucket.MaxRating != 4 || bucket.AvgRating != 3 {
		t.Fatalf("unexpected stats: %+v", bucket)
	}
	if bucket.SampleCount != 3 {
		t.Fatalf("expected 3 samples counted, got %d", bucket.SampleCount)
	}
	if bucket.EmployeeCount != 2 {
		t.Fatalf("expected 2 distinct employees, got %d", bucket.EmployeeCount)
	}
	if bucket.MinRating > bucket.AvgRating || bucket.AvgRating > bucket.MaxRating {
		t.Fatalf("stat bounds violated: %+v", bucket)
	}
}

func TestGroupBucketsEverySampleLandsInExactlyOneBucket(t *testing.T) {
	samples := []RatingSample{
		sample(1, 10, "Go", 4, date(2026, time.January, 2)),
		sample(1, 10, "Go", 3, date(2026, time.January, 30)),
		sample(2, 10, "Go", 5, date(2026, time.March, 3)),
		sample(2, 20, "SQL", 2, date(2026, time.March, 3)),
		sample(3, 20, "SQL", 4, date(2025, time.December, 31)),
	}

	summaries := groupBuckets(samples, PeriodMonth, false)
	var total int64
	for _, skill := range summaries {
		for _, bucket := range skill.Periods {
			total += bucket.SampleCount
		}
	}
	if total != int64(len(samples)) {
		t.Fatalf("expected %d samples across buckets, got %d", len(samples), total)
	}
}

func TestGroupBucketsKeepsSkillInputOrder(t *testing.T) {
	samples := []RatingSample{
		sample(1, 10, "Go", 4, date(2026, time.January, 2)),
		sample(1, 20, "SQL", 3, date(2026, time.January, 3)),
	}
	summaries := groupBuckets(samples, PeriodYear, false)
	if len(summaries) != 2 || summaries[0].SkillName != "Go" || summaries[1].SkillName != "SQL" {
		t.Fatalf("expected skills in input order, got %+v", summaries)
	}
}

func TestGroupBucketsEmptyInput(t *testing.T) {
	summaries := groupBuckets(nil, PeriodQuarter, true)
	if summaries == nil {
		t.Fatal("expected empty slice, not nil")
	}
	if len(summaries) != 0 {
		t.Fatalf("expected no summaries, got %d", len(summaries))
	}
}

func TestSkillTimelinesChronologicalWithBroadcastStats(t *testing.T) {
	samples := []RatingSample{
		sample(1, 10, "Go", 4.5, date(2026, time.January, 5)),
		sample(1, 10, "Go", 3.5, date(2026, time.February, 10)),
	}

	timelines := skillTimelines(samples)
	if len(timelines) != 1 {
		t.Fatalf("expected one skill timeline, got %d", len(timelines))
	}
	timeline := timelines[0]
	if len(timeline.Points) != 2 {
		t.Fatalf("expected two points, got %d", len(timeline.Points))
	}
	if !timeline.Points[0].Date.Equal(date(2026, time.January, 5)) || !timeline.Points[1].Date.Equal(date(2026, time.February, 10)) {
		t.Fatalf("expected chronological ascending order, got %+v", timeline.Points)
	}
	if timeline.MinRating != 3.5 || timeline.MaxRating != 4.5 {
		t.Fatalf("expected group min/max broadcast, got %+v", timeline)
	}
	if math.Abs(timeline.AvgRating-4.0) > 1e-9 {
		t.Fatalf("expected group avg 4.0, got %v", timeline.AvgRating)
	}
}

func TestSkillTimelinesGroupStatsArePerSkill(t *testing.T) {
	samples := []RatingSample{
		sample(1, 10, "Go", 1, date(2026, time.January, 5)),
		sample(1, 10, "Go", 5, date(2026, time.January, 6)),
		sample(1, 20, "SQL", 3, date(2026, time.January, 5)),
	}

	timelines := skillTimelines(samples)
	if len(timelines) != 2 {
		t.Fatalf("expected two skills, got %d", len(timelines))
	}
	if timelines[0].MinRating != 1 || timelines[0].MaxRating != 5 {
		t.Fatalf("go stats wrong: %+v", timelines[0])
	}
	if timelines[1].MinRating != 3 || timelines[1].MaxRating != 3 || timelines[1].AvgRating != 3 {
		t.Fatalf("sql stats leaked across groups: %+v", timelines[1])
	}
}

func TestDailySkillTimelinesCollapsesSameDay(t *testing.T) {
	day := date(2026, time.May, 11)
	samples := []RatingSample{
		sample(1, 10, "Go", 2, day),
		sample(2, 10, "Go", 4, day),
		sample(1, 10, "Go", 5, day.AddDate(0, 0, 2)),
	}

	timelines := dailySkillTimelines(samples)
	if len(timelines) != 1 {
		t.Fatalf("expected one skill, got %d", len(timelines))
	}
	points := timelines[0].Points
	if len(points) != 2 {
		t.Fatalf("expected two day points, got %d", len(points))
	}
	first := points[0]
	if !first.Date.Equal(day) || first.MinRating != 2 || first.MaxRating != 4 || first.AvgRating != 3 {
		t.Fatalf("expected same-day samples collapsed with spanning stats, got %+v", first)
	}
	if !points[1].Date.Equal(day.AddDate(0, 0, 2)) {
		t.Fatalf("expected chronological day order, got %+v", points)
	}
}

func TestOverallSeriesAscendingByPeriod(t *testing.T) {
	samples := []OverallSample{
		{ReviewDate: date(2026, time.July, 9), Rating: 4},
		{ReviewDate: date(2026, time.January, 15), Rating: 2},
		{ReviewDate: date(2026, time.February, 20), Rating: 4},
	}

	series := overallSeries(samples, PeriodQuarter)
	if len(series) != 2 {
		t.Fatalf("expected two quarter buckets, got %d", len(series))
	}
	if !series[0].PeriodStart.Equal(date(2026, time.January, 1)) || series[0].AvgRating != 3 {
		t.Fatalf("unexpected first bucket: %+v", series[0])
	}
	if !series[1].PeriodStart.Equal(date(2026, time.July, 1)) || series[1].AvgRating != 4 {
		t.Fatalf("unexpected second bucket: %+v", series[1])
	}
}
