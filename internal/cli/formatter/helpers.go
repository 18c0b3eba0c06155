package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		inner := StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content
		return boxStyle.Render(inner)
	}
	return boxStyle.Render(content)
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	if t.IsZero() {
		return "--"
	}
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	return t.Format("Jan 2, 2006")
}

// Money formats a dollar amount with thousands separators, "--" for zero.
func Money(amount float64) string {
	if amount == 0 {
		return "--"
	}
	whole := int64(amount)
	s := fmt.Sprintf("%d", whole)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return "$" + strings.Join(parts, ",")
}

// TruncID shortens a UUID for display.
func TruncID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
