// Package book locates a documentation book's source directory and its
// table-of-contents file.
package book

import (
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/deadpages/internal/errors"
)

const (
	// SummaryFileName is the table-of-contents file every book carries at the
	// top of its source tree.
	SummaryFileName = "SUMMARY.md"

	// DefaultRootOffset is where the book source is assumed to live relative
	// to the directory containing the deadpages executable. The tool expects
	// to be installed two levels below the project root, as a sibling of the
	// book/ directory. Use the --book flag or a config file when the project
	// layout differs.
	DefaultRootOffset = "../../book/src"
)

// Locate resolves the book source directory from the executable's own
// location using DefaultRootOffset.
func Locate() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryLocate, "cannot determine executable location")
	}
	return LocateAt(filepath.Join(filepath.Dir(exe), DefaultRootOffset))
}

// LocateAt verifies that root is an existing directory containing a
// SUMMARY.md file and returns its canonical path.
func LocateAt(root string) (string, error) {
	canon := Canonical(root)
	info, err := os.Stat(canon)
	if err != nil || !info.IsDir() {
		return "", errors.BookRootNotFound(canon)
	}
	summary := filepath.Join(canon, SummaryFileName)
	if info, err := os.Stat(summary); err != nil || info.IsDir() {
		return "", errors.SummaryNotFound(summary)
	}
	return canon, nil
}

// SummaryPath returns the table-of-contents path for a located book root.
func SummaryPath(root string) string {
	return filepath.Join(root, SummaryFileName)
}
