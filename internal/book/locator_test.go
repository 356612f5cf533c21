package book

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/deadpages/internal/errors"
)

func TestLocateAt_MissingRootDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "book", "src")

	_, err := LocateAt(missing)
	require.Error(t, err)

	var cerr *errors.CheckError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, errors.CategoryLocate, cerr.Category)
	assert.Contains(t, err.Error(), "Book source directory not found at")
	assert.Contains(t, err.Error(), Canonical(missing))
}

func TestLocateAt_MissingSummary(t *testing.T) {
	root := t.TempDir()

	_, err := LocateAt(root)
	require.Error(t, err)

	var cerr *errors.CheckError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, errors.CategorySummary, cerr.Category)
	assert.Contains(t, err.Error(), "SUMMARY.md not found at")
	assert.Contains(t, err.Error(), filepath.Join(Canonical(root), SummaryFileName))
}

func TestLocateAt_SummaryIsDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, SummaryFileName), 0o755))

	_, err := LocateAt(root)
	require.Error(t, err)

	var cerr *errors.CheckError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, errors.CategorySummary, cerr.Category)
}

func TestDefaultRootOffset_Composition(t *testing.T) {
	// The executable is assumed to live two levels below the project root,
	// e.g. <root>/qa/book/deadpages as a sibling tree of <root>/book/src.
	base := t.TempDir()
	src := filepath.Join(base, "book", "src")
	require.NoError(t, os.MkdirAll(src, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, SummaryFileName), []byte("# Summary\n"), 0o644))

	exeDir := filepath.Join(base, "qa", "book")
	require.NoError(t, os.MkdirAll(exeDir, 0o755))

	root, err := LocateAt(filepath.Join(exeDir, DefaultRootOffset))
	require.NoError(t, err)
	assert.Equal(t, Canonical(src), root)
}

func TestDefaultRootOffset_MissingBookTree(t *testing.T) {
	// Same layout but no book/src next to the tool's grandparent.
	exeDir := filepath.Join(t.TempDir(), "qa", "book")
	require.NoError(t, os.MkdirAll(exeDir, 0o755))

	_, err := LocateAt(filepath.Join(exeDir, DefaultRootOffset))
	require.Error(t, err)

	var cerr *errors.CheckError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, errors.CategoryLocate, cerr.Category)
	assert.Contains(t, err.Error(), filepath.Join("book", "src"))
}

func TestLocateAt_ValidBook(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SummaryFileName), []byte("# Summary\n"), 0o644))

	root, err := LocateAt(dir)
	require.NoError(t, err)
	assert.Equal(t, Canonical(dir), root)

	info, err := os.Stat(SummaryPath(root))
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}
