package cli

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFieldFlags(t *testing.T) {
	fields, err := parseFieldFlags([]string{"rfi=RFI-014", "question=Spacing at grid C?"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"rfi":      "RFI-014",
		"question": "Spacing at grid C?",
	}, fields)

	fields, err = parseFieldFlags(nil)
	require.NoError(t, err)
	assert.Empty(t, fields)

	_, err = parseFieldFlags([]string{"no-separator"})
	assert.ErrorContains(t, err, "expected key=value")

	_, err = parseFieldFlags([]string{"=value"})
	assert.Error(t, err)
}

func TestReadAttachments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpeg-bytes"), 0o644))

	images, err := readAttachments([]string{path})
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "site.jpg", images[0].Name)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("jpeg-bytes")), images[0].Data)

	// Missing file fails the whole set.
	_, err = readAttachments([]string{path, filepath.Join(dir, "missing.png")})
	assert.Error(t, err)

	images, err = readAttachments(nil)
	require.NoError(t, err)
	assert.Nil(t, images)
}

func TestSplitIDList(t *testing.T) {
	assert.Equal(t, []string{"t1", "t2"}, splitIDList("t1, t2"))
	assert.Equal(t, []string{}, splitIDList(""))
	assert.Equal(t, []string{"t1"}, splitIDList("t1,"))
}
