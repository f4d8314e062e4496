package envflag

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbacks(t *testing.T) {
	t.Setenv("ENVFLAG_TEST_STRING", "")
	t.Setenv("ENVFLAG_TEST_BOOL", "nope")
	t.Setenv("ENVFLAG_TEST_FLOAT", "x")

	assert.Equal(t, "default", String("ENVFLAG_TEST_STRING", "default"))
	assert.True(t, Bool("ENVFLAG_TEST_BOOL", true))
	assert.Equal(t, 1.5, Float("ENVFLAG_TEST_FLOAT", 1.5))
	assert.Equal(t, "unset", String("ENVFLAG_TEST_MISSING", "unset"))
}

func TestValues(t *testing.T) {
	t.Setenv("ENVFLAG_TEST_STRING", "value")
	t.Setenv("ENVFLAG_TEST_BOOL", " true ")
	t.Setenv("ENVFLAG_TEST_FLOAT", "120")

	assert.Equal(t, "value", String("ENVFLAG_TEST_STRING", "default"))
	assert.True(t, Bool("ENVFLAG_TEST_BOOL", false))
	assert.Equal(t, 120.0, Float("ENVFLAG_TEST_FLOAT", 0))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("ENVFLAG_TEST_LOADED=from-file\n"), 0644))
	t.Cleanup(func() { _ = os.Unsetenv("ENVFLAG_TEST_LOADED") })

	Load(path, filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "from-file", String("ENVFLAG_TEST_LOADED", ""))
}
