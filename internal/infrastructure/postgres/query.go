package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oksasatya/student-planner-api/internal/domain/entity"
)

var errNoAssignments = errors.New("no assignments")

const taskColumns = `id, user_id, subject, title, description, deadline, priority, status, is_recurring, recurrence_type, created_at, updated_at`

const entryColumns = `id, user_id, subject, day_of_week, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'), location, created_at, updated_at`

// priority is text in the table; rank it so "high" sorts above "medium" above "low".
const priorityRank = `CASE priority WHEN 'high' THEN 3 WHEN 'medium' THEN 2 WHEN 'low' THEN 1 ELSE 0 END`

const taskOrder = `ORDER BY deadline ASC, ` + priorityRank + ` DESC, created_at ASC`

var taskUpdatable = map[string]bool{
	entity.TaskColSubject:        true,
	entity.TaskColTitle:          true,
	entity.TaskColDescription:    true,
	entity.TaskColDeadline:       true,
	entity.TaskColPriority:       true,
	entity.TaskColStatus:         true,
	entity.TaskColIsRecurring:    true,
	entity.TaskColRecurrenceType: true,
}

var entryUpdatable = map[string]bool{
	entity.EntryColSubject:   true,
	entity.EntryColDayOfWeek: true,
	entity.EntryColStartTime: true,
	entity.EntryColEndTime:   true,
	entity.EntryColLocation:  true,
}

// predicates collects AND-ed conditions, numbering placeholders in append order.
type predicates struct {
	conds []string
	args  []any
}

// add appends a condition written with a single %d for its placeholder number.
func (p *predicates) add(cond string, arg any) {
	p.args = append(p.args, arg)
	p.conds = append(p.conds, fmt.Sprintf(cond, len(p.args)))
}

func (p *predicates) where() string {
	return "WHERE " + strings.Join(p.conds, " AND ")
}

func buildTaskListQuery(ownerID string, f entity.TaskFilter) (string, []any) {
	var p predicates
	p.add("user_id = $%d", ownerID)
	if f.Status != nil {
		p.add("status = $%d", string(*f.Status))
	}
	if f.Priority != nil {
		p.add("priority = $%d", string(*f.Priority))
	}
	if f.StartDate != nil {
		p.add("deadline >= $%d", *f.StartDate)
	}
	if f.EndDate != nil {
		p.add("deadline <= $%d", *f.EndDate)
	}
	return "SELECT " + taskColumns + " FROM tasks " + p.where() + " " + taskOrder, p.args
}

// buildUpdateQuery renders an owner-scoped UPDATE ... RETURNING. Columns outside allowed
// are skipped, so id and user_id can never be written.
func buildUpdateQuery(table, returning string, allowed map[string]bool, id, ownerID string, set []entity.Assignment) (string, []any, error) {
	clauses := make([]string, 0, len(set)+1)
	args := make([]any, 0, len(set)+2)
	for _, a := range set {
		if !allowed[a.Column] {
			continue
		}
		args = append(args, a.Value)
		clauses = append(clauses, fmt.Sprintf("%s = $%d", a.Column, len(args)))
	}
	if len(clauses) == 0 {
		return "", nil, errNoAssignments
	}
	clauses = append(clauses, "updated_at = now()")
	args = append(args, id, ownerID)
	q := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d AND user_id = $%d RETURNING %s",
		table, strings.Join(clauses, ", "), len(args)-1, len(args), returning)
	return q, args, nil
}
