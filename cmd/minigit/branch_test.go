package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchCreateAndList(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, initCmd(bytes.NewBufferString(""), &globalFlags{C: dir}, ""))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "f.txt"), []byte("x"), 0o644))
	require.NoError(t, commitCmd(bytes.NewBufferString(""), &globalFlags{C: dir}, "initial"))

	require.NoError(t, branchCreateCmd(bytes.NewBufferString(""), &globalFlags{C: dir}, "feature", "HEAD"))

	out := bytes.NewBufferString("")
	require.NoError(t, branchListCmd(out, &globalFlags{C: dir}))
	assert.Contains(t, out.String(), "* master\n")
	assert.Contains(t, out.String(), "  feature\n")
}

func TestRevParseResolvesHead(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, initCmd(bytes.NewBufferString(""), &globalFlags{C: dir}, ""))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "f.txt"), []byte("x"), 0o644))
	require.NoError(t, commitCmd(bytes.NewBufferString(""), &globalFlags{C: dir}, "initial"))

	out := bytes.NewBufferString("")
	require.NoError(t, revParseCmd(out, &globalFlags{C: dir}, "HEAD"))
	assert.Len(t, out.String(), 41) // 40 hex chars + newline
}
