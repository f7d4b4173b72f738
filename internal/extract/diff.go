package extract

import (
	"strings"

	"github.com/rmarchant/gitcorpus/internal/git"
)

// Changes concatenates the origin-tagged diff lines of files whose
// extension is in the allowed set, one "<origin><text>\n" per line.
//
// The purity rule: the result is only valid when the commit touches
// target-extension files and nothing else. A changed file with a
// disallowed or missing extension invalidates the whole commit, so
// mixed-extension commits are excluded rather than partially included.
func Changes(files []git.FileDiff, allowed map[string]struct{}) (string, bool) {
	var buf strings.Builder
	targetTouched := false
	foreignTouched := false

	for _, file := range files {
		ext := git.ExtensionOf(file.Path)
		if _, ok := allowed[ext]; ok {
			targetTouched = true
			for _, line := range file.Lines {
				buf.WriteByte(line.Origin)
				buf.WriteString(line.Text)
				buf.WriteByte('\n')
			}
		} else {
			foreignTouched = true
		}
	}

	if !targetTouched || foreignTouched {
		return "", false
	}

	return buf.String(), true
}
