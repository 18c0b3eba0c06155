package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveProjectID maps user input to a project ID. An empty input
// falls back to the selected project; otherwise exact IDs win, then
// unique ID prefixes, then unique case-insensitive name prefixes.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		if selected := app.Projects.Selected(ctx); selected != "" {
			return selected, nil
		}
		return "", fmt.Errorf("no project selected; pass a project ID or run \"clearview project use\"")
	}

	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if strings.EqualFold(p.ID, input) {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(strings.ToLower(p.ID), strings.ToLower(input)) ||
			strings.HasPrefix(strings.ToLower(p.Name), strings.ToLower(input)) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project %q is ambiguous (%d matches)", input, len(matches))
	}
}
