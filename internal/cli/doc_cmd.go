package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/stonebridgedev/clearview/internal/calendar"
	"github.com/stonebridgedev/clearview/internal/cli/formatter"
	"github.com/stonebridgedev/clearview/internal/domain"
)

func newDocCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doc",
		Short: "File and browse day-indexed documents",
	}

	cmd.AddCommand(
		newDocAddCmd(app),
		newDocListCmd(app),
	)

	return cmd
}

func newDocAddCmd(app *App) *cobra.Command {
	var project, day, kind, title string
	var fields, images []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "File a document under a calendar day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			if day == "" {
				day = calendar.DayKey(time.Now())
			}
			if dayKey := calendar.Key(day); dayKey != "" {
				day = dayKey
			} else {
				return fmt.Errorf("invalid day %q (expected YYYY-MM-DD)", day)
			}

			if !domain.ValidDocKinds[kind] {
				return fmt.Errorf("invalid kind %q (change_order|submittal|rfi|other)", kind)
			}
			docKind := domain.DocKind(kind)

			fieldMap, err := parseFieldFlags(fields)
			if err != nil {
				return err
			}

			// No title means interactive entry when a terminal is
			// attached; a title left blank either way defaults to
			// "<kind> – <day>" when the document is filed.
			if title == "" && app.IsInteractive != nil && app.IsInteractive() {
				title, fieldMap, err = runDocForm(docKind, fieldMap)
				if err != nil {
					return err
				}
			}

			attachments, err := readAttachments(images)
			if err != nil {
				return err
			}

			doc := &domain.Document{
				Kind:      docKind,
				Title:     title,
				Fields:    fieldMap,
				Images:    attachments,
				CreatedBy: domain.DefaultUser.Name,
			}
			stored, err := app.Documents.Append(ctx, projectID, day, doc)
			if err != nil {
				return err
			}

			fmt.Printf("Filed %s %q under %s\n", stored.Kind.Label(), stored.Title, stored.DayKey)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID (defaults to the selected project)")
	cmd.Flags().StringVar(&day, "day", "", "Calendar day (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&kind, "kind", "other", "Document kind (change_order|submittal|rfi|other)")
	cmd.Flags().StringVar(&title, "title", "", "Document title (blank defaults to \"<kind> – <day>\")")
	cmd.Flags().StringArrayVar(&fields, "field", nil, "Entry field as key=value (repeatable)")
	cmd.Flags().StringArrayVar(&images, "image", nil, "Attachment file path (repeatable)")

	return cmd
}

func newDocListCmd(app *App) *cobra.Command {
	var project, day, from string
	var days int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List documents for a day or a range of days",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			if from != "" {
				byDay, err := app.Documents.ListForRange(ctx, projectID, from, days)
				if err != nil {
					return err
				}
				fmt.Printf("%s", formatter.FormatRangeDocuments(byDay))
				return nil
			}

			if day == "" {
				day = calendar.DayKey(time.Now())
			}
			docs, err := app.Documents.ListForDay(ctx, projectID, day)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatDayDocuments(day, docs))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID (defaults to the selected project)")
	cmd.Flags().StringVar(&day, "day", "", "Calendar day (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&from, "from", "", "Range start day (YYYY-MM-DD)")
	cmd.Flags().IntVar(&days, "days", 7, "Number of days in the range")

	return cmd
}

// parseFieldFlags turns repeated key=value flags into a field map.
func parseFieldFlags(flags []string) (map[string]string, error) {
	if len(flags) == 0 {
		return map[string]string{}, nil
	}
	out := make(map[string]string, len(flags))
	for _, f := range flags {
		key, value, ok := strings.Cut(f, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid field %q (expected key=value)", f)
		}
		out[key] = value
	}
	return out, nil
}

// readAttachments reads each file completely and encodes it; a missing
// file fails the whole command so a document never carries a partial
// attachment set.
func readAttachments(paths []string) ([]domain.Image, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	images := make([]domain.Image, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading attachment %s: %w", p, err)
		}
		images = append(images, domain.Image{
			Name: filepath.Base(p),
			Data: base64.StdEncoding.EncodeToString(data),
		})
	}
	return images, nil
}
