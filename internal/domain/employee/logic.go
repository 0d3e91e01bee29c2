package employee

// latestPerSkill reduces a newest-first entry list to the most recent entry
// of each skill, keeping the order in which skills first appear.
func latestPerSkill(entries []SkillEntry) []SkillRating {
	seen := map[int64]struct{}{}
	ratings := make([]SkillRating, 0, len(entries))
	for _, entry := range entries {
		if _, ok := seen[entry.SkillID]; ok {
			continue
		}
		seen[entry.SkillID] = struct{}{}
		ratings = append(ratings, SkillRating{
			EntryID:   entry.ID,
			SkillID:   entry.SkillID,
			SkillName: entry.SkillName,
			Rating:    entry.Rating,
		})
	}
	return ratings
}
