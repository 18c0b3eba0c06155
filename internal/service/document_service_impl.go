package service

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/stonebridgedev/clearview/internal/dayindex"
	"github.com/stonebridgedev/clearview/internal/domain"
	"github.com/stonebridgedev/clearview/internal/store"
)

type documentService struct {
	kv store.KV

	mu      sync.Mutex
	indexes map[string]*dayindex.Index
}

func NewDocumentService(kv store.KV) DocumentService {
	return &documentService{
		kv:      kv,
		indexes: make(map[string]*dayindex.Index),
	}
}

// index returns the open day-index for projectID, hydrating it from
// the store on first touch. Absent snapshots hydrate to an empty index.
func (s *documentService) index(projectID string) *dayindex.Index {
	s.mu.Lock()
	defer s.mu.Unlock()
	ix, ok := s.indexes[projectID]
	if !ok {
		ix = dayindex.Restore(projectID, store.LoadDocuments(s.kv, projectID))
		s.indexes[projectID] = ix
	}
	return ix
}

// flush persists the index snapshot fire-and-forget: a store failure
// loses this session's writes but never fails the append.
func (s *documentService) flush(ix *dayindex.Index) {
	if err := store.SaveDocuments(s.kv, ix.ProjectID(), ix.All()); err != nil {
		fmt.Fprintf(os.Stderr, "clearview: saving documents for %s: %v\n", ix.ProjectID(), err)
	}
}

func (s *documentService) Append(ctx context.Context, projectID, dayKey string, doc *domain.Document) (*domain.Document, error) {
	ix := s.index(projectID)
	stored, err := ix.Append(dayKey, doc)
	if err != nil {
		return nil, err
	}
	s.flush(ix)
	return stored, nil
}

func (s *documentService) ListForDay(ctx context.Context, projectID, dayKey string) ([]*domain.Document, error) {
	return s.index(projectID).ListForDay(dayKey), nil
}

func (s *documentService) ListForRange(ctx context.Context, projectID, startKey string, dayCount int) (map[string][]*domain.Document, error) {
	return s.index(projectID).ListForRange(startKey, dayCount)
}
