package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stonebridgedev/clearview/internal/calendar"
	"github.com/stonebridgedev/clearview/internal/domain"
)

// FormatDayDocuments renders every document filed on a single day.
func FormatDayDocuments(dayKey string, docs []*domain.Document) string {
	title := dayKey
	if day, err := calendar.ParseDay(dayKey); err == nil {
		title = fmt.Sprintf("%s (%s)", calendar.FormatShort(day), dayKey)
	}

	if len(docs) == 0 {
		return RenderBox(title, Dim("No documents."))
	}

	var b strings.Builder
	for i, d := range docs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(formatDocument(d))
	}
	return RenderBox(title, b.String())
}

// FormatRangeDocuments renders a multi-day window, skipping empty days.
func FormatRangeDocuments(byDay map[string][]*domain.Document) string {
	keys := make([]string, 0, len(byDay))
	for k := range byDay {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	total := 0
	for _, k := range keys {
		docs := byDay[k]
		if len(docs) == 0 {
			continue
		}
		total += len(docs)
		b.WriteString(Header(k) + "\n")
		for _, d := range docs {
			b.WriteString(formatDocument(d))
		}
		b.WriteString("\n")
	}

	if total == 0 {
		return Dim("No documents in range.")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func formatDocument(d *domain.Document) string {
	var b strings.Builder
	title := d.Title
	if title == "" {
		title = "(untitled)"
	}
	b.WriteString(fmt.Sprintf("%s %s %s\n", KindBadge(d.Kind), Bold(title), Dim(TruncID(d.ID))))

	for _, def := range domain.FieldDefs(d.Kind) {
		if v := d.Fields[def.Key]; v != "" {
			b.WriteString(fmt.Sprintf("  %s %s\n", StyleDim.Render(def.Label+":"), StyleFg.Render(v)))
		}
	}
	if len(d.Images) > 0 {
		names := make([]string, len(d.Images))
		for i, img := range d.Images {
			names[i] = img.Name
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleDim.Render("Attachments:"), StyleBlue.Render(strings.Join(names, ", "))))
	}
	if d.CreatedBy != "" {
		b.WriteString("  " + Dim("by "+d.CreatedBy) + "\n")
	}
	return b.String()
}
