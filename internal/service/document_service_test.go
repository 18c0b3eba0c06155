package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stonebridgedev/clearview/internal/dayindex"
	"github.com/stonebridgedev/clearview/internal/domain"
	"github.com/stonebridgedev/clearview/internal/testutil"
)

func TestDocumentService_AppendSurvivesRestart(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	doc := &domain.Document{
		Kind:   domain.KindRFI,
		Title:  "Clarify rebar spacing",
		Fields: map[string]string{"rfi": "RFI-014", "question": "Spacing at grid C?"},
	}
	stored, err := env.docs.Append(ctx, "P-1001", "2025-03-10", doc)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)

	// A new service over the same store must see the persisted snapshot.
	reloaded := NewDocumentService(env.kv)
	docs, err := reloaded.ListForDay(ctx, "P-1001", "2025-03-10")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, stored.ID, docs[0].ID)
	assert.Equal(t, "Clarify rebar spacing", docs[0].Title)
	assert.Equal(t, "RFI-014", docs[0].Fields["rfi"])
}

func TestDocumentService_AppendDefaultsBlankTitle(t *testing.T) {
	env := newTestEnv(t)

	stored, err := env.docs.Append(context.Background(), "P-1001", "2025-03-10", &domain.Document{Kind: domain.KindSubmittal})
	require.NoError(t, err)
	assert.Equal(t, "Submittal – Mar 10", stored.Title)
}

func TestDocumentService_AppendRejectsBadDayKey(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.docs.Append(context.Background(), "P-1001", "not-a-day", &domain.Document{Kind: domain.KindOther})
	assert.ErrorIs(t, err, dayindex.ErrInvalidDayKey)
}

func TestDocumentService_ListForRange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.docs.Append(ctx, "P-1001", "2025-03-11", &domain.Document{Kind: domain.KindSubmittal, Title: "Rebar shop drawings"})
	require.NoError(t, err)

	byDay, err := env.docs.ListForRange(ctx, "P-1001", "2025-03-10", 3)
	require.NoError(t, err)
	require.Len(t, byDay, 3)
	assert.Empty(t, byDay["2025-03-10"])
	require.Len(t, byDay["2025-03-11"], 1)
	assert.Empty(t, byDay["2025-03-12"])
}

func TestDocumentService_AppendSucceedsWhenStoreDown(t *testing.T) {
	kv := &testutil.FailingKV{}
	svc := NewDocumentService(kv)

	stored, err := svc.Append(context.Background(), "P-1001", "2025-03-10", &domain.Document{Kind: domain.KindOther, Title: "note"})
	require.NoError(t, err, "persistence failures must not fail the append")
	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, 1, kv.Writes)

	docs, err := svc.ListForDay(context.Background(), "P-1001", "2025-03-10")
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}
