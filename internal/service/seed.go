package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stonebridgedev/clearview/internal/calendar"
	"github.com/stonebridgedev/clearview/internal/domain"
)

// SeedIfEmpty provisions the demo project and its task chain when no
// projects exist yet, so a fresh install has something on the timeline.
func SeedIfEmpty(ctx context.Context, projects ProjectService, tasks TaskService, now time.Time) error {
	existing, err := projects.List(ctx)
	if err != nil {
		return fmt.Errorf("checking for existing projects: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	today := calendar.StartOfDay(now)
	seed := &domain.Project{
		ID:          "P-1001",
		Name:        "Sample Build – East Campus",
		Address:     "1234 Stonebridge Way, Knoxville, TN",
		Client:      "Stonebridge Dev Co.",
		Owner:       domain.DefaultUser.Name,
		Status:      domain.ProjectActive,
		Budget:      1250000,
		Description: "Site prep + foundations + shell",
		Tags:        []string{"Phase 1", "Concrete", "Scheduling"},
		StartDate:   calendar.AddDays(today, -7),
		EndDate:     calendar.AddDays(today, 23),
	}
	if err := projects.Create(ctx, seed); err != nil {
		return fmt.Errorf("creating seed project: %w", err)
	}

	seedTasks := []*domain.Task{
		{ID: "t1", Name: "Mobilize", Assignee: "Field Ops",
			Start: calendar.AddDays(today, -6), End: calendar.AddDays(today, -3),
			Percent: 100, DependsOn: []string{}},
		{ID: "t2", Name: "Site Prep", Assignee: "Grading",
			Start: calendar.AddDays(today, -2), End: calendar.AddDays(today, 5),
			Percent: 60, DependsOn: []string{"t1"}},
		{ID: "t3", Name: "Footings", Assignee: "Concrete",
			Start: calendar.AddDays(today, 3), End: calendar.AddDays(today, 12),
			Percent: 0, DependsOn: []string{"t2"}},
		{ID: "t4", Name: "Underground MEP", Assignee: "MEP",
			Start: calendar.AddDays(today, 8), End: calendar.AddDays(today, 18),
			Percent: 0, DependsOn: []string{"t3"}},
	}
	for _, t := range seedTasks {
		if _, err := tasks.Insert(ctx, seed.ID, t); err != nil {
			return fmt.Errorf("creating seed task %s: %w", t.Name, err)
		}
	}
	return nil
}
