package store

import (
	"fmt"

	"github.com/stonebridgedev/clearview/internal/domain"
)

// Key namespaces. Each project's documents and tasks live under their
// own key so a project snapshot is a single atomic write.
const (
	documentsPrefix = "documents/"
	tasksPrefix     = "tasks/"
	selectedKey     = "state/selected"
)

// DocumentsKey returns the store key of a project's day-index snapshot.
func DocumentsKey(projectID string) string {
	return documentsPrefix + projectID
}

// TasksKey returns the store key of a project's task-graph snapshot.
func TasksKey(projectID string) string {
	return tasksPrefix + projectID
}

// SaveDocuments writes a project's day-index snapshot.
func SaveDocuments(kv KV, projectID string, days map[string][]*domain.Document) error {
	return kv.Set(DocumentsKey(projectID), days)
}

// LoadDocuments reads a project's day-index snapshot. Absent or
// undecodable data yields the documented default: an empty map, never
// an error.
func LoadDocuments(kv KV, projectID string) map[string][]*domain.Document {
	var days map[string][]*domain.Document
	found, err := kv.Get(DocumentsKey(projectID), &days)
	if err != nil || !found || days == nil {
		return map[string][]*domain.Document{}
	}
	return days
}

// SaveTasks writes a project's task-graph snapshot.
func SaveTasks(kv KV, projectID string, tasks []*domain.Task) error {
	return kv.Set(TasksKey(projectID), tasks)
}

// LoadTasks reads a project's task-graph snapshot. Absent or
// undecodable data yields an empty list, never an error.
func LoadTasks(kv KV, projectID string) []*domain.Task {
	var tasks []*domain.Task
	found, err := kv.Get(TasksKey(projectID), &tasks)
	if err != nil || !found {
		return nil
	}
	return tasks
}

// DeleteProject removes a project's document and task snapshots.
func DeleteProject(kv KV, projectID string) error {
	if err := kv.Delete(DocumentsKey(projectID)); err != nil {
		return fmt.Errorf("deleting document snapshot: %w", err)
	}
	if err := kv.Delete(TasksKey(projectID)); err != nil {
		return fmt.Errorf("deleting task snapshot: %w", err)
	}
	return nil
}

// SaveSelected persists the currently selected project id.
func SaveSelected(kv KV, projectID string) error {
	return kv.Set(selectedKey, projectID)
}

// LoadSelected reads the selected project id, "" when none is set.
func LoadSelected(kv KV) string {
	var id string
	found, err := kv.Get(selectedKey, &id)
	if err != nil || !found {
		return ""
	}
	return id
}

// ClearSelected drops the selected project id.
func ClearSelected(kv KV) error {
	return kv.Delete(selectedKey)
}
