package domain

import (
	"fmt"
	"time"
)

type Project struct {
	ID          string
	Name        string
	Address     string
	Client      string
	Owner       string
	Status      ProjectStatus
	Budget      float64
	Description string
	Tags        []string
	StartDate   time.Time
	EndDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the fields required at creation time. The ID is
// user-assigned and immutable afterwards; everything else is mutable
// display metadata.
func (p *Project) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("project ID is required (use --id flag)")
	}
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	return nil
}
