package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gramcare/caselink/internal/shared"
)

func TestMemory_MissingKey(t *testing.T) {
	m := NewMemory()

	value, revision, err := m.Get(context.Background(), CasesKey)
	require.NoError(t, err)
	assert.Equal(t, "", value)
	assert.Equal(t, int64(0), revision)
}

func TestMemory_CompareAndSwap(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	rev, err := m.Put(ctx, CasesKey, "v1", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rev)

	_, err = m.Put(ctx, CasesKey, "v2", 0)
	assert.ErrorIs(t, err, shared.ErrorStaleRevision)

	value, revision, err := m.Get(ctx, CasesKey)
	require.NoError(t, err)
	assert.Equal(t, "v1", value)
	assert.Equal(t, int64(1), revision)

	rev, err = m.Put(ctx, CasesKey, "v2", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), rev)
}
