package git

import (
	"path/filepath"
	"strings"
)

// Commit represents minimal information about a Git commit.
type Commit struct {
	Hash    string
	Parents []string
	Author  AuthorInfo
	Message string
}

// IsMerge reports whether the commit has more than one parent.
func (c Commit) IsMerge() bool {
	return len(c.Parents) > 1
}

// IsRoot reports whether the commit has no parents.
func (c Commit) IsRoot() bool {
	return len(c.Parents) == 0
}

// AuthorInfo represents commit author information.
type AuthorInfo struct {
	Name  string
	Email string
}

// DiffLine is a single line of a file diff, tagged with its origin.
type DiffLine struct {
	Origin byte   // '+' addition, '-' deletion, ' ' context
	Text   string // line content without the trailing newline
}

// FileDiff holds the origin-tagged diff lines for one changed file.
type FileDiff struct {
	Path  string
	Lines []DiffLine
}

// ExtensionOf returns the file extension of path without the leading dot.
// Files with no extension return "", as do dotfiles like ".gitignore".
func ExtensionOf(path string) string {
	base := filepath.Base(path)
	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 {
		return ""
	}
	return base[idx+1:]
}
