package domain

import "time"

// Task is a bar on the project timeline. Start and End are inclusive
// calendar days; End before Start is tolerated (the layout engine
// floors such bars to one column). DependsOn holds task ids in the
// same project; the edges are stored and displayed, never interpreted
// for scheduling.
type Task struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	Name      string    `json:"name"`
	Assignee  string    `json:"assignee"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Percent   int       `json:"percent"`
	DependsOn []string  `json:"dependsOn"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DependsOnTask reports whether id appears in the task's dependency set.
func (t *Task) DependsOnTask(id string) bool {
	for _, dep := range t.DependsOn {
		if dep == id {
			return true
		}
	}
	return false
}

// TaskPatch is a partial update for a task. Nil fields are left
// untouched by the merge.
type TaskPatch struct {
	Name      *string
	Assignee  *string
	Start     *time.Time
	End       *time.Time
	Percent   *int
	DependsOn *[]string
}
