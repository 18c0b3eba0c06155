package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/stonebridgedev/clearview/internal/domain"
)

var testProjectCounter atomic.Int64

// Project options
type ProjectOption func(*domain.Project)

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithProjectID(id string) ProjectOption {
	return func(p *domain.Project) {
		p.ID = id
	}
}

func WithDates(start, end time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.StartDate = start
		p.EndDate = end
	}
}

// NewTestProject builds a project with sensible defaults and a unique id.
func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        fmt.Sprintf("P-%04d", 1000+testProjectCounter.Add(1)),
		Name:      name,
		Address:   "1234 Stonebridge Way, Knoxville, TN",
		Client:    "Stonebridge Dev Co.",
		Owner:     domain.DefaultUser.Name,
		Status:    domain.ProjectActive,
		StartDate: now.AddDate(0, 0, -7),
		EndDate:   now.AddDate(0, 0, 23),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Task options
type TaskOption func(*domain.Task)

func WithDependsOn(ids ...string) TaskOption {
	return func(t *domain.Task) {
		t.DependsOn = ids
	}
}

func WithPercent(pct int) TaskOption {
	return func(t *domain.Task) {
		t.Percent = pct
	}
}

// NewTestTask builds a task spanning the given inclusive day range.
func NewTestTask(id, name string, start, end time.Time, opts ...TaskOption) *domain.Task {
	t := &domain.Task{
		ID:        id,
		Name:      name,
		Assignee:  "Field Ops",
		Start:     start,
		End:       end,
		DependsOn: []string{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
