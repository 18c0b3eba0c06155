// Package taskgraph maintains the per-project task collection and each
// task's dependsOn identifier set. Edges are stored and exposed for
// display; they are never interpreted for scheduling, so no cycle
// detection or topological ordering exists here.
package taskgraph

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stonebridgedev/clearview/internal/domain"
)

var (
	// ErrSelfDependency is returned when a task's dependsOn set
	// contains the task's own id.
	ErrSelfDependency = errors.New("task cannot depend on itself")

	// ErrNotFound is returned by Update and Remove for unknown ids.
	ErrNotFound = errors.New("task not found")

	// ErrDuplicateID is returned when inserting a caller-supplied id
	// that already exists in the graph.
	ErrDuplicateID = errors.New("task id already exists")
)

// Graph holds the tasks of one open project in insertion order.
type Graph struct {
	projectID string
	tasks     []*domain.Task
	byID      map[string]*domain.Task
}

// New creates an empty graph scoped to projectID.
func New(projectID string) *Graph {
	return &Graph{
		projectID: projectID,
		byID:      make(map[string]*domain.Task),
	}
}

// Restore builds a graph from a previously saved snapshot, keeping the
// snapshot's order.
func Restore(projectID string, tasks []*domain.Task) *Graph {
	g := New(projectID)
	for _, t := range tasks {
		g.tasks = append(g.tasks, t)
		g.byID[t.ID] = t
	}
	return g
}

// ProjectID returns the owning project's id.
func (g *Graph) ProjectID() string {
	return g.projectID
}

// Insert adds a task, generating an id when none is supplied and
// normalizing a nil dependsOn to an empty set. A task whose dependsOn
// contains its own id is rejected. References to non-existent task ids
// are tolerated.
func (g *Graph) Insert(t *domain.Task) (*domain.Task, error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	} else if _, exists := g.byID[t.ID]; exists {
		return nil, fmt.Errorf("inserting task %s: %w", t.ID, ErrDuplicateID)
	}
	if t.DependsOn == nil {
		t.DependsOn = []string{}
	}
	if t.DependsOnTask(t.ID) {
		return nil, fmt.Errorf("inserting task %s: %w", t.ID, ErrSelfDependency)
	}
	now := time.Now()
	t.ProjectID = g.projectID
	t.CreatedAt = now
	t.UpdatedAt = now
	g.tasks = append(g.tasks, t)
	g.byID[t.ID] = t
	return t, nil
}

// Update merges the non-nil patch fields into the task with the given
// id and re-validates the self-dependency rule.
func (g *Graph) Update(id string, p domain.TaskPatch) (*domain.Task, error) {
	t, ok := g.byID[id]
	if !ok {
		return nil, fmt.Errorf("updating task %s: %w", id, ErrNotFound)
	}

	merged := *t
	merged.Name = domain.StrFromPtrWithDefault(t.Name, p.Name)
	merged.Assignee = domain.StrFromPtrWithDefault(t.Assignee, p.Assignee)
	merged.Start = domain.TimeFromPtrWithDefault(t.Start, p.Start)
	merged.End = domain.TimeFromPtrWithDefault(t.End, p.End)
	merged.Percent = domain.IntFromPtrWithDefault(t.Percent, p.Percent)
	merged.DependsOn = domain.StringsFromPtrWithDefault(t.DependsOn, p.DependsOn)
	if merged.DependsOn == nil {
		merged.DependsOn = []string{}
	}
	if merged.DependsOnTask(id) {
		return nil, fmt.Errorf("updating task %s: %w", id, ErrSelfDependency)
	}
	merged.UpdatedAt = time.Now()

	*t = merged
	return t, nil
}

// Remove deletes the task with the given id. Other tasks' dependsOn
// sets are left untouched; dangling references are the deliberate
// policy, not an error state.
func (g *Graph) Remove(id string) error {
	if _, ok := g.byID[id]; !ok {
		return fmt.Errorf("removing task %s: %w", id, ErrNotFound)
	}
	delete(g.byID, id)
	for i, t := range g.tasks {
		if t.ID == id {
			g.tasks = append(g.tasks[:i], g.tasks[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns the task with the given id, if present.
func (g *Graph) Get(id string) (*domain.Task, bool) {
	t, ok := g.byID[id]
	return t, ok
}

// Tasks returns the tasks in insertion order. The result is never nil.
func (g *Graph) Tasks() []*domain.Task {
	out := make([]*domain.Task, len(g.tasks))
	copy(out, g.tasks)
	return out
}

// Len returns the number of tasks in the graph.
func (g *Graph) Len() int {
	return len(g.tasks)
}

// Dangling returns, per task id, the dependency ids that no longer
// resolve to a task in the graph. The broken edges are reported for
// display only and never repaired.
func (g *Graph) Dangling() map[string][]string {
	out := make(map[string][]string)
	for _, t := range g.tasks {
		for _, dep := range t.DependsOn {
			if _, ok := g.byID[dep]; !ok {
				out[t.ID] = append(out[t.ID], dep)
			}
		}
	}
	return out
}
