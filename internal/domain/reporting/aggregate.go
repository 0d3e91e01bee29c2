package reporting

import (
	"sort"
	"time"
)

type bucketAcc struct {
	sum       float64
	count     int64
	min       float64
	max       float64
	employees map[int64]struct{}
}

func (b *bucketAcc) observe(rating float64, employeeID int64) {
	if b.count == 0 || rating < b.min {
		b.min = rating
	}
	if b.count == 0 || rating > b.max {
		b.max = rating
	}
	b.sum += rating
	b.count++
	if b.employees != nil {
		b.employees[employeeID] = struct{}{}
	}
}

// groupBuckets is the grouped-period strategy: one PeriodBucket per
// (skill, period start) pair that has at least one sample. Skills keep the
// input's first-seen order (skill name ascending from the store); periods
// within a skill are most recent first. countEmployees adds the distinct
// contributing employee count, used for organization/department scope only.
func groupBuckets(samples []RatingSample, period PeriodType, countEmployees bool) []SkillSummary {
	var skillOrder []string
	perSkill := map[string]map[time.Time]*bucketAcc{}

	for _, sample := range samples {
		buckets, ok := perSkill[sample.SkillName]
		if !ok {
			buckets = map[time.Time]*bucketAcc{}
			perSkill[sample.SkillName] = buckets
			skillOrder = append(skillOrder, sample.SkillName)
		}
		start := PeriodStart(sample.EntryDate, period)
		acc, ok := buckets[start]
		if !ok {
			acc = &bucketAcc{}
			if countEmployees {
				acc.employees = map[int64]struct{}{}
			}
			buckets[start] = acc
		}
		acc.observe(sample.Rating, sample.EmployeeID)
	}

	summaries := make([]SkillSummary, 0, len(skillOrder))
	for _, skillName := range skillOrder {
		buckets := perSkill[skillName]

		starts := make([]time.Time, 0, len(buckets))
		for start := range buckets {
			starts = append(starts, start)
		}
		sort.Slice(starts, func(i, j int) bool { return starts[j].Before(starts[i]) })

		periods := make([]PeriodBucket, 0, len(starts))
		for _, start := range starts {
			acc := buckets[start]
			bucket := PeriodBucket{
				PeriodStart: start,
				AvgRating:   acc.sum / float64(acc.count),
				MinRating:   acc.min,
				MaxRating:   acc.max,
				SampleCount: acc.count,
			}
			if countEmployees {
				bucket.EmployeeCount = int64(len(acc.employees))
			}
			periods = append(periods, bucket)
		}
		summaries = append(summaries, SkillSummary{SkillName: skillName, Periods: periods})
	}
	return summaries
}

// skillTimelines is the windowed strategy for a single employee: every
// sample becomes a chronological point, and each skill group carries the
// min/max/avg over the whole group, computed once and attached to the
// group rather than accumulated point by point.
func skillTimelines(samples []RatingSample) []SkillTimeline {
	var order []int64
	grouped := map[int64][]RatingSample{}
	for _, sample := range samples {
		if _, ok := grouped[sample.SkillID]; !ok {
			order = append(order, sample.SkillID)
		}
		grouped[sample.SkillID] = append(grouped[sample.SkillID], sample)
	}

	timelines := make([]SkillTimeline, 0, len(order))
	for _, skillID := range order {
		group := grouped[skillID]

		acc := bucketAcc{}
		points := make([]TimelinePoint, 0, len(group))
		for _, sample := range group {
			acc.observe(sample.Rating, sample.EmployeeID)
			points = append(points, TimelinePoint{Date: sample.EntryDate, Rating: sample.Rating})
		}

		timelines = append(timelines, SkillTimeline{
			SkillID:   skillID,
			SkillName: group[0].SkillName,
			Points:    points,
			MinRating: acc.min,
			MaxRating: acc.max,
			AvgRating: acc.sum / float64(acc.count),
		})
	}
	return timelines
}

// dailySkillTimelines is the windowed strategy for organization/department
// scope: same-day samples of a skill collapse into one point carrying the
// day's min/max/avg across every contributing employee. Relies on the
// store's entry-date-ascending order, so days appear chronologically.
func dailySkillTimelines(samples []RatingSample) []DaySkillTimeline {
	type skillDays struct {
		skillName string
		dayOrder  []time.Time
		days      map[time.Time]*bucketAcc
	}

	var order []int64
	grouped := map[int64]*skillDays{}
	for _, sample := range samples {
		group, ok := grouped[sample.SkillID]
		if !ok {
			group = &skillDays{skillName: sample.SkillName, days: map[time.Time]*bucketAcc{}}
			grouped[sample.SkillID] = group
			order = append(order, sample.SkillID)
		}
		day := PeriodStart(sample.EntryDate, PeriodDay)
		acc, ok := group.days[day]
		if !ok {
			acc = &bucketAcc{}
			group.days[day] = acc
			group.dayOrder = append(group.dayOrder, day)
		}
		acc.observe(sample.Rating, sample.EmployeeID)
	}

	timelines := make([]DaySkillTimeline, 0, len(order))
	for _, skillID := range order {
		group := grouped[skillID]
		points := make([]DayPoint, 0, len(group.dayOrder))
		for _, day := range group.dayOrder {
			acc := group.days[day]
			points = append(points, DayPoint{
				Date:      day,
				MinRating: acc.min,
				MaxRating: acc.max,
				AvgRating: acc.sum / float64(acc.count),
			})
		}
		timelines = append(timelines, DaySkillTimeline{SkillID: skillID, SkillName: group.skillName, Points: points})
	}
	return timelines
}

// overallSeries buckets review-level overall scores with the same period
// semantics as the skill summaries, oldest period first.
func overallSeries(samples []OverallSample, period PeriodType) []OverallRatingPeriod {
	var order []time.Time
	buckets := map[time.Time]*bucketAcc{}
	for _, sample := range samples {
		start := PeriodStart(sample.ReviewDate, period)
		acc, ok := buckets[start]
		if !ok {
			acc = &bucketAcc{}
			buckets[start] = acc
			order = append(order, start)
		}
		acc.observe(sample.Rating, 0)
	}
	sort.Slice(order, func(i, j int) bool { return order[i].Before(order[j]) })

	series := make([]OverallRatingPeriod, 0, len(order))
	for _, start := range order {
		acc := buckets[start]
		series = append(series, OverallRatingPeriod{PeriodStart: start, AvgRating: acc.sum / float64(acc.count)})
	}
	return series
}
