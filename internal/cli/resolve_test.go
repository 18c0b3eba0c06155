package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stonebridgedev/clearview/internal/testutil"
)

func TestResolveProjectID(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	east := testutil.NewTestProject("East Campus", testutil.WithProjectID("P-2001"))
	west := testutil.NewTestProject("West Annex", testutil.WithProjectID("P-2002"))
	require.NoError(t, app.Projects.Create(ctx, east))
	require.NoError(t, app.Projects.Create(ctx, west))

	t.Run("exact id", func(t *testing.T) {
		got, err := resolveProjectID(ctx, app, "P-2001")
		require.NoError(t, err)
		assert.Equal(t, "P-2001", got)
	})

	t.Run("exact id is case-insensitive", func(t *testing.T) {
		got, err := resolveProjectID(ctx, app, "p-2001")
		require.NoError(t, err)
		assert.Equal(t, "P-2001", got)
	})

	t.Run("unique name prefix", func(t *testing.T) {
		got, err := resolveProjectID(ctx, app, "east")
		require.NoError(t, err)
		assert.Equal(t, "P-2001", got)
	})

	t.Run("ambiguous prefix", func(t *testing.T) {
		_, err := resolveProjectID(ctx, app, "P-20")
		assert.ErrorContains(t, err, "ambiguous")
	})

	t.Run("not found", func(t *testing.T) {
		_, err := resolveProjectID(ctx, app, "nothing-like-this")
		assert.ErrorContains(t, err, "not found")
	})

	t.Run("empty input falls back to selection", func(t *testing.T) {
		require.NoError(t, app.Projects.Select(ctx, "P-2002"))
		got, err := resolveProjectID(ctx, app, "")
		require.NoError(t, err)
		assert.Equal(t, "P-2002", got)
	})
}

func TestResolveProjectIDNoSelection(t *testing.T) {
	app := newTestApp(t)

	_, err := resolveProjectID(context.Background(), app, "")
	assert.ErrorContains(t, err, "no project selected")
}
