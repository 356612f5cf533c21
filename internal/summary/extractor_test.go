package summary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/deadpages/internal/book"
)

func writeSummary(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "SUMMARY.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExtract_CollectsDistinctLocalTargets(t *testing.T) {
	dir := t.TempDir()
	path := writeSummary(t, dir, `# Summary

- [Intro](intro.md)
- [Guide](guide/start.md)
- [Intro again](intro.md)
- [Section two](./intro.md#section-2)
- [External](https://example.com/x.md)
- [Plain http](http://example.com/y.md)
- [Mail](mailto:docs@example.com)
- [Anchor only](#top)
- [Draft]()
`)

	refs, err := Extract(path)
	require.NoError(t, err)

	// Duplicates and fragment variants collapse; external and empty targets
	// are dropped entirely.
	assert.Equal(t, 2, refs.Len())
	assert.True(t, refs.Has(book.Canonical(filepath.Join(dir, "intro.md"))))
	assert.True(t, refs.Has(book.Canonical(filepath.Join(dir, "guide", "start.md"))))
}

func TestExtract_ResolvesAgainstSummaryDirectory(t *testing.T) {
	base := t.TempDir()
	nested := filepath.Join(base, "book", "src")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	path := writeSummary(t, nested, "- [Up](../shared.md)\n- [Here](intro.md)\n")

	refs, err := Extract(path)
	require.NoError(t, err)

	assert.Equal(t, 2, refs.Len())
	assert.True(t, refs.Has(book.Canonical(filepath.Join(base, "book", "shared.md"))))
	assert.True(t, refs.Has(book.Canonical(filepath.Join(nested, "intro.md"))))
}

func TestExtract_NonexistentTargetsStillExtracted(t *testing.T) {
	dir := t.TempDir()
	path := writeSummary(t, dir, "- [Ghost](missing/ghost.md)\n")

	refs, err := Extract(path)
	require.NoError(t, err)

	// Extraction is purely textual; nobody checks the target exists.
	assert.Equal(t, 1, refs.Len())
	assert.True(t, refs.Has(book.Canonical(filepath.Join(dir, "missing", "ghost.md"))))
}

func TestExtract_WhitespaceDestinations(t *testing.T) {
	// CommonMark rejects destinations with raw spaces, but the link form
	// admits any characters up to the closing paren; pages with spaces in
	// their names must still count as referenced.
	dir := t.TempDir()
	path := writeSummary(t, dir, `# Summary

- [My Page](my page.md)
- [Intro](intro.md)
- [Deep](guide/getting started.md#setup)

[ref page]: ref page.md
`)

	refs, err := Extract(path)
	require.NoError(t, err)

	assert.Equal(t, 4, refs.Len())
	assert.True(t, refs.Has(book.Canonical(filepath.Join(dir, "my page.md"))))
	assert.True(t, refs.Has(book.Canonical(filepath.Join(dir, "intro.md"))))
	assert.True(t, refs.Has(book.Canonical(filepath.Join(dir, "guide", "getting started.md"))))
	assert.True(t, refs.Has(book.Canonical(filepath.Join(dir, "ref page.md"))))
}

func TestExtract_MissingFile(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "SUMMARY.md"))
	require.Error(t, err)
}

func TestTargets_FragmentStripping(t *testing.T) {
	targets := Targets([]byte("[A](foo.md#section) [B](foo.md) [C](#only)\n"))
	assert.Equal(t, []string{"foo.md", "foo.md"}, targets)
}

func TestTargets_ReferenceDefinitions(t *testing.T) {
	targets := Targets([]byte(`[Intro][intro]

[intro]: intro.md
[ext]: https://example.com/z.md
`))

	assert.Contains(t, targets, "intro.md")
	for _, target := range targets {
		assert.NotContains(t, target, "example.com")
	}
}

func TestTargets_WhitespaceDestinationSkipsCode(t *testing.T) {
	targets := Targets([]byte("[Real](my page.md)\n" +
		"`[Span](span page.md)` and more\n" +
		"```\n" +
		"[Fenced](fenced page.md)\n" +
		"```\n" +
		"    [Indented](indented page.md)\n"))

	assert.Equal(t, []string{"my page.md"}, targets)
}

func TestTargets_ImageDestinations(t *testing.T) {
	targets := Targets([]byte("![Logo](logo.md) ![Chart](my chart.md)\n"))
	assert.ElementsMatch(t, []string{"logo.md", "my chart.md"}, targets)
}

func TestTargets_EmptyBody(t *testing.T) {
	assert.Empty(t, Targets(nil))
	assert.Empty(t, Targets([]byte("plain prose, no links\n")))
}
