package domain

import "time"

// Image is a fully resolved attachment: file name plus base64 payload.
// Attachments are read completely before a document is appended; the
// day-index never sees a partial record.
type Image struct {
	Name string `json:"name"`
	Data string `json:"data"`
}

// Document is a dated record filed under exactly one project and one
// calendar day. Its day key and project association never change after
// creation; there is no move or reschedule operation.
type Document struct {
	ID        string            `json:"id"`
	ProjectID string            `json:"projectId"`
	DayKey    string            `json:"dayKey"`
	Kind      DocKind           `json:"kind"`
	Title     string            `json:"title"`
	Fields    map[string]string `json:"fields,omitempty"`
	Images    []Image           `json:"images,omitempty"`
	CreatedBy string            `json:"createdBy"`
	CreatedAt time.Time         `json:"createdAt"`
}

// FieldDef describes one entry field of a document kind's schema.
// Required-field enforcement is the form layer's job, not the index's.
type FieldDef struct {
	Key       string
	Label     string
	Required  bool
	Multiline bool
	Date      bool
	Numeric   bool
}

var fieldDefs = map[DocKind][]FieldDef{
	KindChangeOrder: {
		{Key: "number", Label: "CO #", Required: true},
		{Key: "scope", Label: "Scope of Work", Required: true, Multiline: true},
		{Key: "amount", Label: "Amount ($)", Numeric: true},
		{Key: "requestedBy", Label: "Requested By"},
		{Key: "notes", Label: "Notes", Multiline: true},
	},
	KindSubmittal: {
		{Key: "spec", Label: "Spec Section", Required: true},
		{Key: "package", Label: "Package #"},
		{Key: "due", Label: "Due Date", Date: true},
		{Key: "notes", Label: "Notes", Multiline: true},
	},
	KindRFI: {
		{Key: "rfi", Label: "RFI #", Required: true},
		{Key: "question", Label: "Question", Required: true, Multiline: true},
		{Key: "neededBy", Label: "Needed By", Date: true},
	},
	KindOther: {
		{Key: "description", Label: "Description", Multiline: true},
	},
}

// FieldDefs returns the entry-field schema for a document kind. The
// title is common to every kind and is not part of the schema.
// Unknown kinds fall back to the Other schema.
func FieldDefs(kind DocKind) []FieldDef {
	if defs, ok := fieldDefs[kind]; ok {
		return defs
	}
	return fieldDefs[KindOther]
}
