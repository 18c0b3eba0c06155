package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stonebridgedev/clearview/internal/domain"
)

// FormatProjectList renders a styled project list inside a bordered box.
// The selected project is marked with an arrow.
func FormatProjectList(projects []*domain.Project, selectedID string) string {
	headers := []string{"", "ID", "NAME", "CLIENT", "STATUS", "START", "END"}
	rows := make([][]string, 0, len(projects))

	for _, p := range projects {
		marker := " "
		if p.ID == selectedID {
			marker = StyleHeader.Render("▸")
		}
		rows = append(rows, []string{
			marker,
			p.ID,
			Bold(p.Name),
			StyleFg.Render(p.Client),
			StatusPill(p.Status),
			StyleFg.Render(HumanDate(p.StartDate)),
			StyleFg.Render(HumanDate(p.EndDate)),
		})
	}

	return RenderBox("Projects", RenderTable(headers, rows))
}

// FormatProjectInspect renders a project card with its membership roster.
func FormatProjectInspect(p *domain.Project, members []*domain.Member) string {
	left := buildMetadataPanel(p)
	right := buildMemberPanel(members)

	spacing := "    "
	combined := lipgloss.JoinHorizontal(lipgloss.Top, left, spacing, right)
	return RenderBox("", combined)
}

func buildMetadataPanel(p *domain.Project) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(p.Name) + "\n")
	b.WriteString(Dim(p.ID) + "\n\n")

	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("STATUS"), StatusPill(p.Status)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("CLIENT"), StyleFg.Render(p.Client)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("OWNER "), StyleFg.Render(p.Owner)))
	if p.Address != "" {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("SITE  "), StyleFg.Render(p.Address)))
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("BUDGET"), StyleGreen.Render(Money(p.Budget))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("START "), StyleFg.Render(HumanDate(p.StartDate))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("END   "), StyleFg.Render(HumanDate(p.EndDate))))

	if len(p.Tags) > 0 {
		badges := make([]string, len(p.Tags))
		for i, tag := range p.Tags {
			badges[i] = StyleBlue.Render("[" + tag + "]")
		}
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("TAGS  "), strings.Join(badges, " ")))
	}

	if p.Description != "" {
		b.WriteString("\n" + StyleFg.Render(p.Description) + "\n")
	}

	return b.String()
}

func buildMemberPanel(members []*domain.Member) string {
	var b strings.Builder
	b.WriteString(Header("Team") + "\n")
	if len(members) == 0 {
		b.WriteString(Dim("No members invited.") + "\n")
		return b.String()
	}
	for _, m := range members {
		b.WriteString(fmt.Sprintf("%s %s\n", StyleFg.Render(m.Email), Dim("("+string(m.Role)+")")))
	}
	return b.String()
}
