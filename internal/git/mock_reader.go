package git

import "io"

// MockReader is a test double for Repository.
// It allows tests to provide predefined commit data without needing a real Git repository.
type MockReader struct {
	// Order lists commit hashes in the order History yields them.
	Order []string
	// Commits maps hashes to commit data.
	Commits map[string]Commit
	// Diffs maps a commit hash to its first-parent diff.
	Diffs map[string][]FileDiff
	// LookupErr forces Commit to fail for specific hashes.
	LookupErr map[string]error
	// DiffErr forces TreeDiff to fail for specific commit hashes.
	DiffErr map[string]error
	// HistoryErr forces History to fail.
	HistoryErr error
}

// History returns an iterator over the predefined commit order.
func (m *MockReader) History() (CommitIter, error) {
	if m.HistoryErr != nil {
		return nil, m.HistoryErr
	}
	return &mockIter{reader: m}, nil
}

// Commit returns the predefined commit or error for the hash.
func (m *MockReader) Commit(hash string) (Commit, error) {
	if err := m.LookupErr[hash]; err != nil {
		return Commit{}, err
	}
	c, ok := m.Commits[hash]
	if !ok {
		return Commit{}, ErrCommitLookup
	}
	return c, nil
}

// TreeDiff returns the predefined diff or error for the commit hash.
func (m *MockReader) TreeDiff(parentHash, commitHash string) ([]FileDiff, error) {
	if err := m.DiffErr[commitHash]; err != nil {
		return nil, err
	}
	return m.Diffs[commitHash], nil
}

type mockIter struct {
	reader *MockReader
	pos    int
}

func (it *mockIter) Next() (Commit, error) {
	if it.pos >= len(it.reader.Order) {
		return Commit{}, io.EOF
	}
	hash := it.reader.Order[it.pos]
	it.pos++
	return it.reader.Commit(hash)
}

func (it *mockIter) Close() {}

// Compile-time interface conformance check.
var _ Reader = (*MockReader)(nil)
