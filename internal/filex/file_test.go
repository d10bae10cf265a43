package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBase64(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rash.jpg")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))

	filename, data, err := ReadBase64(path)
	require.NoError(t, err)
	assert.Equal(t, "rash.jpg", filename)
	assert.Equal(t, "aGVsbG8=", data)
}

func TestReadBase64_MissingFile(t *testing.T) {
	_, _, err := ReadBase64(filepath.Join(t.TempDir(), "absent.jpg"))
	assert.Error(t, err)
}
