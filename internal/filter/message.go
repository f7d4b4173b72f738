package filter

import "strings"

// Merge-commit subjects generated by Git and by forge UIs.
var mergePrefixes = []string{
	"Merge pull request",
	"Merge branch",
}

// MessageFilter validates commit message subjects against length bounds.
type MessageFilter struct {
	MinLen int
	MaxLen int
}

// Subject returns the first line of a commit message.
// The second return value is false if the message is empty.
func (f MessageFilter) Subject(message string) (string, bool) {
	if message == "" {
		return "", false
	}
	if idx := strings.IndexByte(message, '\n'); idx != -1 {
		message = message[:idx]
	}
	return message, true
}

// Accept reports whether the subject length falls within the bounds.
func (f MessageFilter) Accept(subject string) bool {
	return len(subject) >= f.MinLen && len(subject) <= f.MaxLen
}

// LooksLikeMerge reports whether the subject is a generated merge-commit
// subject. The match is a case-sensitive prefix match.
func LooksLikeMerge(subject string) bool {
	for _, prefix := range mergePrefixes {
		if strings.HasPrefix(subject, prefix) {
			return true
		}
	}
	return false
}

// IsBotAuthor reports whether the author display name indicates an
// automated committer, matching "bot" case-insensitively anywhere in it.
func IsBotAuthor(name string) bool {
	return strings.Contains(strings.ToLower(name), "bot")
}
