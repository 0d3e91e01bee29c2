package employee

import (
	"testing"
	"time"
)

func entry(id, skillID int64, skillName string, rating float64, day time.Time) SkillEntry {
	return SkillEntry{ID: id, SkillID: skillID, SkillName: skillName, Rating: rating, EntryDate: day}
}

func TestLatestPerSkillKeepsNewestEntry(t *testing.T) {
	base := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	// Newest first, as the store returns them.
	entries := []SkillEntry{
		entry(3, 10, "Go", 4.5, base),
		entry(2, 20, "SQL", 3.0, base.AddDate(0, 0, -1)),
		entry(1, 10, "Go", 2.0, base.AddDate(0, 0, -5)),
	}

	ratings := latestPerSkill(entries)
	if len(ratings) != 2 {
		t.Fatalf("expected 2 skills, got %d", len(ratings))
	}
	if ratings[0].SkillID != 10 || ratings[0].Rating != 4.5 || ratings[0].EntryID != 3 {
		t.Fatalf("expected newest Go entry to win, got %+v", ratings[0])
	}
	if ratings[1].SkillID != 20 || ratings[1].Rating != 3.0 {
		t.Fatalf("unexpected second rating: %+v", ratings[1])
	}
}

func TestLatestPerSkillEmpty(t *testing.T) {
	ratings := latestPerSkill(nil)
	if len(ratings) != 0 {
		t.Fatalf("expected no ratings, got %+v", ratings)
	}
}

func TestLatestPerSkillSingleSkillManyEntries(t *testing.T) {
	base := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	entries := []SkillEntry{
		entry(5, 10, "Go", 5, base),
		entry(4, 10, "Go", 4, base.AddDate(0, 0, -1)),
		entry(3, 10, "Go", 3, base.AddDate(0, 0, -2)),
	}

	ratings := latestPerSkill(entries)
	if len(ratings) != 1 || ratings[0].EntryID != 5 || ratings[0].Rating != 5 {
		t.Fatalf("expected single newest rating, got %+v", ratings)
	}
}
