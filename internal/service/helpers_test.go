package service

import (
	"testing"

	"github.com/stonebridgedev/clearview/internal/repository"
	"github.com/stonebridgedev/clearview/internal/store"
	"github.com/stonebridgedev/clearview/internal/testutil"
)

// testEnv wires real repositories and a temp-dir store, mirroring the
// production wiring in cmd/clearview.
type testEnv struct {
	kv       *store.DiskStore
	projects ProjectService
	docs     DocumentService
	tasks    TaskService
	members  MemberService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	kv := testutil.NewTestStore(t)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	memberRepo := repository.NewSQLiteMemberRepo(database)

	return &testEnv{
		kv:       kv,
		projects: NewProjectService(projectRepo, memberRepo, kv),
		docs:     NewDocumentService(kv),
		tasks:    NewTaskService(kv),
		members:  NewMemberService(projectRepo, memberRepo),
	}
}
