package employee

import "time"

type Employee struct {
	ID             int64  `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	OrganizationID int64  `json:"organizationId"`
	DepartmentID   int64  `json:"departmentId"`
	OccupationID   int64  `json:"occupationId"`
}

// SkillEntry is one dated rating of one skill for one employee.
type SkillEntry struct {
	ID            int64     `json:"id"`
	EmployeeID    int64     `json:"employeeId"`
	SkillID       int64     `json:"skillId"`
	SkillName     string    `json:"skillName"`
	Rating        float64   `json:"rating"`
	EntryDate     time.Time `json:"entryDate"`
	EntryDateTime time.Time `json:"entryDateTime"`
}

// SkillRating is the latest known rating of one skill.
type SkillRating struct {
	EntryID   int64   `json:"entryId"`
	SkillID   int64   `json:"skillId"`
	SkillName string  `json:"skillName"`
	Rating    float64 `json:"rating"`
}
