// Package deadpages walks a book's source tree and reports Markdown files
// not referenced from its table of contents.
package deadpages

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/deadpages/internal/book"
	"git.home.luguber.info/inful/deadpages/internal/summary"
	"git.home.luguber.info/inful/deadpages/internal/util/sets"
)

// Result holds the outcome of a single dead-page check.
type Result struct {
	// Root is the canonical book source directory that was checked.
	Root string

	// Referenced is the number of distinct file targets extracted from the
	// table of contents.
	Referenced int

	// Dead lists the dead pages relative to Root, sorted.
	Dead []string
}

// HasDead returns true if any dead pages were found.
func (r *Result) HasDead() bool {
	return len(r.Dead) > 0
}

// ExitCode maps the result onto the process exit status: 0 when the book is
// clean, 1 when dead pages exist.
func (r *Result) ExitCode() int {
	if r.HasDead() {
		return 1
	}
	return 0
}

// Scanner subtracts a reference set from the Markdown files found on disk.
type Scanner struct {
	ignore []string
}

// NewScanner creates a scanner. Ignore patterns are glob patterns matched
// against paths relative to the book root.
func NewScanner(ignore []string) *Scanner {
	return &Scanner{ignore: ignore}
}

// Scan enumerates every .md file under root and returns those whose canonical
// path is absent from refs. Files named SUMMARY.md are excluded
// unconditionally, whether or not the table of contents references itself.
func (s *Scanner) Scan(root string, refs sets.Set[string]) (*Result, error) {
	// Root must be canonical so relative rendering is exact even when the
	// caller hands us a path through a symlinked ancestor.
	root = book.Canonical(root)
	dead := make([]string, 0)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		if d.Name() == book.SummaryFileName {
			return nil
		}

		canon := book.Canonical(path)
		if refs.Has(canon) {
			return nil
		}
		if s.ignored(root, canon) {
			return nil
		}
		dead = append(dead, canon)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(dead)

	result := &Result{
		Root:       root,
		Referenced: refs.Len(),
		Dead:       make([]string, 0, len(dead)),
	}
	for _, page := range dead {
		rel, err := filepath.Rel(root, page)
		if err != nil {
			rel = page
		}
		result.Dead = append(result.Dead, rel)
	}
	return result, nil
}

// ignored reports whether the page matches any ignore pattern. Patterns match
// the slash-normalized path relative to root; a trailing "/**" matches the
// whole subtree under the named directory.
func (s *Scanner) ignored(root, page string) bool {
	rel, err := filepath.Rel(root, page)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range s.ignore {
		pattern = filepath.ToSlash(pattern)
		if dir, ok := strings.CutSuffix(pattern, "/**"); ok {
			if rel == dir || strings.HasPrefix(rel, dir+"/") {
				return true
			}
			continue
		}
		if ok, err := filepath.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// Check runs the full pipeline against a located book root: extract the
// reference set from SUMMARY.md, then scan the tree for unreferenced pages.
func Check(root string, ignore []string) (*Result, error) {
	root = book.Canonical(root)
	refs, err := summary.Extract(book.SummaryPath(root))
	if err != nil {
		return nil, err
	}
	return NewScanner(ignore).Scan(root, refs)
}
