package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stonebridgedev/clearview/internal/domain"
	"github.com/stonebridgedev/clearview/internal/testutil"
)

func TestProjectRepo_CreateAndGet(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestProject("East Campus")
	p.Tags = []string{"Phase 1", "Concrete"}
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)

	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, "East Campus", got.Name)
	assert.Equal(t, domain.ProjectActive, got.Status)
	assert.Equal(t, []string{"Phase 1", "Concrete"}, got.Tags)
	assert.Equal(t, p.StartDate.Format("2006-01-02"), got.StartDate.Format("2006-01-02"))
}

func TestProjectRepo_GetMissing(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "P-9999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectRepo_List(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("First")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("Second")))

	projects, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 2)
}

func TestProjectRepo_Update(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestProject("East Campus")
	require.NoError(t, repo.Create(ctx, p))

	p.Status = domain.ProjectOnHold
	p.Budget = 1250000
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectOnHold, got.Status)
	assert.Equal(t, 1250000.0, got.Budget)
}

func TestProjectRepo_UpdateMissing(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))

	p := testutil.NewTestProject("Ghost")
	p.ID = "P-9999"
	assert.ErrorIs(t, repo.Update(context.Background(), p), ErrNotFound)
}

func TestProjectRepo_Delete(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestProject("East Campus")
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.Delete(ctx, p.ID))

	_, err := repo.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, p.ID), ErrNotFound)
}
