package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildContainerWithDefaults(t *testing.T) {
	t.Setenv("N8N_READY_CONFIG", filepath.Join(t.TempDir(), "config.yaml"))

	c, err := BuildContainer(context.Background(), false)
	require.NoError(t, err)

	assert.NotNil(t, c.DoctorService)
	assert.NotNil(t, c.ComposeService)
	assert.NotNil(t, c.ScaffoldService)
	assert.NotEmpty(t, c.RunID)
	assert.Equal(t, []int{5678, 5432, 6379}, c.DoctorService.PortSets.Local)
}

func TestBuildContainerRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ports:\n  prod: [0]\n"), 0o600))
	t.Setenv("N8N_READY_CONFIG", path)

	_, err := BuildContainer(context.Background(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, errors.GetAllHints(err), "Fix or remove "+path)
}

func TestBuildContainerUsesFreshRunIDs(t *testing.T) {
	t.Setenv("N8N_READY_CONFIG", filepath.Join(t.TempDir(), "config.yaml"))

	a, err := BuildContainer(context.Background(), false)
	require.NoError(t, err)
	b, err := BuildContainer(context.Background(), false)
	require.NoError(t, err)
	assert.NotEqual(t, a.RunID, b.RunID)
}
