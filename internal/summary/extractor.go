// Package summary extracts local Markdown link targets from a book's
// table-of-contents file.
package summary

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"git.home.luguber.info/inful/deadpages/internal/book"
	"git.home.luguber.info/inful/deadpages/internal/util/sets"
)

// externalSchemes are link prefixes that never refer to files in the book.
var externalSchemes = []string{"http://", "https://", "mailto:"}

// Extract reads the table-of-contents file and returns the canonical paths of
// every local file it links. Relative targets resolve against the file's own
// directory, never the working directory. Targets are not checked for
// existence; extraction is purely textual.
func Extract(summaryPath string) (sets.Set[string], error) {
	content, err := os.ReadFile(summaryPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(summaryPath)
	refs := sets.New[string]()
	for _, target := range Targets(content) {
		refs.Add(book.Canonical(filepath.Join(dir, target)))
	}
	return refs, nil
}

// Targets returns the local link destinations in a Markdown body, in document
// order, with fragments stripped and external URLs dropped. Duplicates are
// preserved; Extract collapses them into a set.
func Targets(body []byte) []string {
	md := goldmark.New()
	ctx := parser.NewContext()
	root := md.Parser().Parse(text.NewReader(body), parser.WithContext(ctx))

	targets := make([]string, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.Link:
			if t, ok := localTarget(string(node.Destination)); ok {
				targets = append(targets, t)
			}
		case *gmast.Image:
			// The bracket-parenthesis form matches inside image syntax too,
			// so image destinations count as references.
			if t, ok := localTarget(string(node.Destination)); ok {
				targets = append(targets, t)
			}
		}
		return gmast.WalkContinue, nil
	})

	// Reference definitions are stored in the parse context (not represented
	// as AST nodes).
	for _, ref := range ctx.References() {
		if t, ok := localTarget(string(ref.Destination())); ok {
			targets = append(targets, t)
		}
	}

	// CommonMark rejects destinations containing raw whitespace, so the AST
	// walk drops them; recover those with a permissive line scan so pages
	// with spaces in their names still count as referenced.
	for _, dest := range permissiveTargets(body) {
		if t, ok := localTarget(dest); ok {
			targets = append(targets, t)
		}
	}

	return targets
}

// localTarget strips any #fragment suffix and reports whether the remaining
// destination names a local file. Anchor-only links reduce to the empty
// string and are dropped.
func localTarget(dest string) (string, bool) {
	if i := strings.Index(dest, "#"); i >= 0 {
		dest = dest[:i]
	}
	if dest == "" {
		return "", false
	}
	for _, scheme := range externalSchemes {
		if strings.HasPrefix(dest, scheme) {
			return "", false
		}
	}
	return dest, true
}
