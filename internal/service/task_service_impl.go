package service

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/stonebridgedev/clearview/internal/domain"
	"github.com/stonebridgedev/clearview/internal/store"
	"github.com/stonebridgedev/clearview/internal/taskgraph"
)

type taskService struct {
	kv store.KV

	mu     sync.Mutex
	graphs map[string]*taskgraph.Graph
}

func NewTaskService(kv store.KV) TaskService {
	return &taskService{
		kv:     kv,
		graphs: make(map[string]*taskgraph.Graph),
	}
}

// graph returns the open task graph for projectID, hydrating it from
// the store on first touch. Absent snapshots hydrate to an empty graph.
func (s *taskService) graph(projectID string) *taskgraph.Graph {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.graphs[projectID]
	if !ok {
		g = taskgraph.Restore(projectID, store.LoadTasks(s.kv, projectID))
		s.graphs[projectID] = g
	}
	return g
}

func (s *taskService) flush(g *taskgraph.Graph) {
	if err := store.SaveTasks(s.kv, g.ProjectID(), g.Tasks()); err != nil {
		fmt.Fprintf(os.Stderr, "clearview: saving tasks for %s: %v\n", g.ProjectID(), err)
	}
}

func (s *taskService) Insert(ctx context.Context, projectID string, t *domain.Task) (*domain.Task, error) {
	g := s.graph(projectID)
	stored, err := g.Insert(t)
	if err != nil {
		return nil, err
	}
	s.flush(g)
	return stored, nil
}

func (s *taskService) Update(ctx context.Context, projectID, id string, patch domain.TaskPatch) (*domain.Task, error) {
	g := s.graph(projectID)
	updated, err := g.Update(id, patch)
	if err != nil {
		return nil, err
	}
	s.flush(g)
	return updated, nil
}

func (s *taskService) Remove(ctx context.Context, projectID, id string) error {
	g := s.graph(projectID)
	if err := g.Remove(id); err != nil {
		return err
	}
	s.flush(g)
	return nil
}

func (s *taskService) ListForProject(ctx context.Context, projectID string) ([]*domain.Task, error) {
	return s.graph(projectID).Tasks(), nil
}

func (s *taskService) Dangling(ctx context.Context, projectID string) (map[string][]string, error) {
	return s.graph(projectID).Dangling(), nil
}
