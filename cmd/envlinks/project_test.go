package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	cp "github.com/otiai10/copy"
	"github.com/stretchr/testify/require"

	"github.com/nestoca/envlinks/internal/config"
)

func TestTransformProject(t *testing.T) {
	t.Setenv("ENVIRONMENTS", "")
	t.Setenv("INPUT_ENVIRONMENTS", "")

	dir := t.TempDir()
	require.NoError(t, cp.Copy("testdata/project", dir))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, ".envlinksrc"), cfg.FilePath)
	require.Equal(t, []string{"Preview", "Staging", "Production"}, cfg.Environments.Names())

	cmd := NewRootCmd("v1.0.0")
	cmd.SetArgs([]string{"transform", "--number", "42", filepath.Join(dir, "body.md")})

	var buffer bytes.Buffer
	cmd.SetOut(&buffer)

	require.NoError(t, cmd.ExecuteContext(config.ToContext(context.Background(), cfg)))

	expected, err := os.ReadFile(filepath.Join(dir, "expected.md"))
	require.NoError(t, err)
	require.Equal(t, string(expected), buffer.String())
}

func TestTransformProjectRequiresMinVersion(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, cp.Copy("testdata/project", dir))

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	cmd := NewRootCmd("v0.0.9")
	cmd.SetArgs([]string{"transform", filepath.Join(dir, "body.md")})
	cmd.SetOut(&bytes.Buffer{})

	err = cmd.ExecuteContext(config.ToContext(context.Background(), cfg))
	require.EqualError(t, err, `current version "v0.0.9" is less than required minimum version "v0.1.0". Please update envlinks`)
}
