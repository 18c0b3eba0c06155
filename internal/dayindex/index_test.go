package dayindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stonebridgedev/clearview/internal/domain"
)

func newDoc(kind domain.DocKind, title string) *domain.Document {
	return &domain.Document{
		Kind:      kind,
		Title:     title,
		CreatedBy: "Demo Admin",
	}
}

func TestAppend_AssignsIDAndTimestamp(t *testing.T) {
	ix := New("P-1001")

	stored, err := ix.Append("2025-03-10", newDoc(domain.KindRFI, "Footing depth"))
	require.NoError(t, err)

	assert.NotEmpty(t, stored.ID)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.Equal(t, "P-1001", stored.ProjectID)
	assert.Equal(t, "2025-03-10", stored.DayKey)
}

func TestAppend_BlankTitleDefaults(t *testing.T) {
	ix := New("P-1001")

	stored, err := ix.Append("2025-03-10", newDoc(domain.KindRFI, ""))
	require.NoError(t, err)
	assert.Equal(t, "RFI – Mar 10", stored.Title)

	stored, err = ix.Append("2025-03-10", newDoc(domain.KindChangeOrder, ""))
	require.NoError(t, err)
	assert.Equal(t, "Change Order – Mar 10", stored.Title)

	// A supplied title is never overwritten.
	stored, err = ix.Append("2025-03-10", newDoc(domain.KindRFI, "Footing depth"))
	require.NoError(t, err)
	assert.Equal(t, "Footing depth", stored.Title)
}

func TestAppend_EmptyKeyRejected(t *testing.T) {
	ix := New("P-1001")

	_, err := ix.Append("", newDoc(domain.KindOther, "junk"))
	assert.ErrorIs(t, err, ErrInvalidDayKey)

	_, err = ix.Append("not-a-day", newDoc(domain.KindOther, "junk"))
	assert.ErrorIs(t, err, ErrInvalidDayKey)
	assert.Equal(t, 0, ix.Len())
}

func TestAppend_CanonicalizesKey(t *testing.T) {
	ix := New("P-1001")

	stored, err := ix.Append("2025-03-10T15:04:05", newDoc(domain.KindOther, "walkthrough notes"))
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", stored.DayKey)
	assert.Len(t, ix.ListForDay("2025-03-10"), 1)
}

func TestListForDay_ReturnsAppendedDocument(t *testing.T) {
	ix := New("P-1001")
	stored, err := ix.Append("2025-03-10", newDoc(domain.KindChangeOrder, "CO-7"))
	require.NoError(t, err)

	docs := ix.ListForDay("2025-03-10")
	require.Len(t, docs, 1)
	assert.Equal(t, stored, docs[0])
}

func TestListForDay_EmptyNeverNil(t *testing.T) {
	ix := New("P-1001")

	docs := ix.ListForDay("2025-03-10")
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestListForDay_PreservesAppendOrder(t *testing.T) {
	ix := New("P-1001")
	for _, title := range []string{"first", "second", "third"} {
		_, err := ix.Append("2025-03-10", newDoc(domain.KindOther, title))
		require.NoError(t, err)
	}

	docs := ix.ListForDay("2025-03-10")
	require.Len(t, docs, 3)
	assert.Equal(t, "first", docs[0].Title)
	assert.Equal(t, "second", docs[1].Title)
	assert.Equal(t, "third", docs[2].Title)
}

func TestListForRange_GeneratesAllKeys(t *testing.T) {
	ix := New("P-1001")
	_, err := ix.Append("2025-03-10", newDoc(domain.KindSubmittal, "Rebar package"))
	require.NoError(t, err)

	window, err := ix.ListForRange("2025-03-08", 5)
	require.NoError(t, err)

	require.Len(t, window, 5)
	for _, key := range []string{"2025-03-08", "2025-03-09", "2025-03-10", "2025-03-11", "2025-03-12"} {
		docs, ok := window[key]
		assert.True(t, ok, "missing key %s", key)
		assert.NotNil(t, docs)
	}
	assert.Len(t, window["2025-03-10"], 1)
	assert.Empty(t, window["2025-03-09"])
}

func TestListForRange_InvalidStartKey(t *testing.T) {
	ix := New("P-1001")

	_, err := ix.ListForRange("not-a-date", 5)
	assert.ErrorIs(t, err, ErrInvalidDayKey)
}

func TestRestore_RoundTrip(t *testing.T) {
	ix := New("P-1001")
	_, err := ix.Append("2025-03-10", newDoc(domain.KindRFI, "one"))
	require.NoError(t, err)
	_, err = ix.Append("2025-03-11", newDoc(domain.KindOther, "two"))
	require.NoError(t, err)

	restored := Restore("P-1001", ix.All())
	assert.Equal(t, 2, restored.Len())
	assert.Len(t, restored.ListForDay("2025-03-10"), 1)
	assert.Len(t, restored.ListForDay("2025-03-11"), 1)
}
