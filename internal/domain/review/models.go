package review

import "time"

// Review is a periodic performance review with an overall score; skill-level
// detail lives in skill_entries.
type Review struct {
	ID            int64     `json:"id"`
	EmployeeID    int64     `json:"employeeId"`
	ReviewDate    time.Time `json:"reviewDate"`
	OverallRating float64   `json:"overallRating"`
	Reviewer      string    `json:"reviewer"`
	Notes         string    `json:"notes"`
}

// ListFilter narrows the review list; zero values mean no constraint.
type ListFilter struct {
	EmployeeID int64
	From       *time.Time
	To         *time.Time
}
