package reporting

import (
	"strconv"
	"strings"
	"time"
)

// Filter is the optional-filter set for a report query. Exactly one of
// OrganizationID or EmployeeID is set and names the scope; every other
// field narrows it. Unset fields never reach the compiled predicate.
type Filter struct {
	OrganizationID int64
	EmployeeID     int64
	DepartmentID   *int64
	SkillID        *int64
	StartDate      *time.Time
	EndDate        *time.Time
}

// predicate accumulates parameterized WHERE fragments. Argument positions
// are assigned in insertion order, so fragments can be appended to a query
// without renumbering.
type predicate struct {
	clauses []string
	args    []any
}

func (p *predicate) compare(column, op string, value any) {
	p.args = append(p.args, value)
	p.clauses = append(p.clauses, column+" "+op+" $"+strconv.Itoa(len(p.args)))
}

func (p *predicate) eq(column string, value any) {
	p.compare(column, "=", value)
}

func (p *predicate) gte(column string, value any) {
	p.compare(column, ">=", value)
}

func (p *predicate) lte(column string, value any) {
	p.compare(column, "<=", value)
}

func (p *predicate) where() string {
	if len(p.clauses) == 0 {
		return "TRUE"
	}
	return strings.Join(p.clauses, " AND ")
}

func (p *predicate) arguments() []any {
	return p.args
}

// compileSamples builds the predicate for a skill-sample read. Both
// reporting views share the column names used here; the date bounds are
// inclusive on both ends.
func (f Filter) compileSamples(dateColumn string) *predicate {
	p := &predicate{}
	if f.OrganizationID != 0 {
		p.eq("organization_id", f.OrganizationID)
	}
	if f.EmployeeID != 0 {
		p.eq("employee_id", f.EmployeeID)
	}
	if f.DepartmentID != nil {
		p.eq("department_id", *f.DepartmentID)
	}
	if f.SkillID != nil {
		p.eq("skill_id", *f.SkillID)
	}
	if f.StartDate != nil {
		p.gte(dateColumn, *f.StartDate)
	}
	if f.EndDate != nil {
		p.lte(dateColumn, *f.EndDate)
	}
	return p
}

// withoutSkill strips the skill filter for the overall-ratings series,
// which is scoped to organization/department or employee but never to a
// skill.
func (f Filter) withoutSkill() Filter {
	f.SkillID = nil
	return f
}
