package book

import "path/filepath"

// Canonical resolves path to its absolute, cleaned form with symlinks
// resolved. Extracted link targets and walked files must canonicalize the
// same way or set membership comparisons silently miss.
//
// Paths that do not exist on disk still canonicalize: the deepest existing
// ancestor is resolved and the remainder re-attached, so purely textual
// targets compare consistently with real files under the same tree.
func Canonical(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return canonicalAbs(filepath.Clean(abs))
}

func canonicalAbs(abs string) string {
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	dir := filepath.Dir(abs)
	if dir == abs {
		return abs
	}
	return filepath.Join(canonicalAbs(dir), filepath.Base(abs))
}
