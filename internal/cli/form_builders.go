package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/stonebridgedev/clearview/internal/cli/formatter"
	"github.com/stonebridgedev/clearview/internal/domain"
)

// clearviewHuhTheme returns a custom huh theme using the existing
// Gruvbox palette.
func clearviewHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// runDocForm collects the title and the kind's entry fields
// interactively. Pre-populated fields carry through as defaults.
func runDocForm(kind domain.DocKind, presets map[string]string) (string, map[string]string, error) {
	defs := domain.FieldDefs(kind)

	var title string
	values := make(map[string]*string, len(defs))

	inputs := []huh.Field{
		huh.NewInput().
			Title("Title").
			Placeholder(kind.Label() + " – ...").
			Value(&title),
	}

	for _, def := range defs {
		v := presets[def.Key]
		values[def.Key] = &v

		switch {
		case def.Multiline:
			inputs = append(inputs, huh.NewText().
				Title(def.Label).
				Value(values[def.Key]).
				Validate(requiredTextWhen(def.Required)))
		case def.Date:
			inputs = append(inputs, huh.NewInput().
				Title(def.Label+" (YYYY-MM-DD)").
				Placeholder("2025-06-30").
				Value(values[def.Key]).
				Validate(validateOptionalDate))
		default:
			input := huh.NewInput().
				Title(def.Label).
				Value(values[def.Key])
			if def.Required {
				input = input.Validate(requiredField("is required"))
			}
			inputs = append(inputs, input)
		}
	}

	form := huh.NewForm(huh.NewGroup(inputs...)).
		WithTheme(clearviewHuhTheme()).
		WithShowHelp(false)
	if err := form.Run(); err != nil {
		return "", nil, err
	}

	fields := make(map[string]string, len(values))
	for key, v := range values {
		if *v != "" {
			fields[key] = *v
		}
	}
	return title, fields, nil
}

func requiredField(msg string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s", msg)
		}
		return nil
	}
}

func requiredTextWhen(required bool) func(string) error {
	return func(s string) error {
		if required && s == "" {
			return fmt.Errorf("is required")
		}
		return nil
	}
}

// validateOptionalDate accepts an empty string or a YYYY-MM-DD date.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}
