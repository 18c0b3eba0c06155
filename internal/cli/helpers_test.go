package cli

import (
	"testing"

	"github.com/stonebridgedev/clearview/internal/repository"
	"github.com/stonebridgedev/clearview/internal/service"
	"github.com/stonebridgedev/clearview/internal/testutil"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	kv := testutil.NewTestStore(t)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	memberRepo := repository.NewSQLiteMemberRepo(database)

	return &App{
		Projects:      service.NewProjectService(projectRepo, memberRepo, kv),
		Documents:     service.NewDocumentService(kv),
		Tasks:         service.NewTaskService(kv),
		Members:       service.NewMemberService(projectRepo, memberRepo),
		IsInteractive: func() bool { return false },
	}
}
