package git

// Reader defines read-only access to a repository's commit graph.
// This abstraction allows for easier testing and potential alternative implementations.
type Reader interface {
	// History returns a single-pass iterator over commit history,
	// rooted at the current HEAD, in reverse-topological order.
	History() (CommitIter, error)
	// Commit looks up a commit by its hash.
	Commit(hash string) (Commit, error)
	// TreeDiff computes the origin-tagged line diff from the parent
	// commit's tree to the commit's tree.
	TreeDiff(parentHash, commitHash string) ([]FileDiff, error)
}

// CommitIter iterates over commits. Next returns io.EOF when the
// history is exhausted.
type CommitIter interface {
	Next() (Commit, error)
	Close()
}

// Compile-time interface conformance check.
var _ Reader = (*Repository)(nil)
