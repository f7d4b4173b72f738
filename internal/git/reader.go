package git

import (
	"errors"
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	fdiff "github.com/go-git/go-git/v5/plumbing/format/diff"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Sentinel errors for the failure classes callers distinguish.
var (
	ErrRepositoryOpen = errors.New("failed to open repository")
	ErrCommitLookup   = errors.New("failed to look up commit")
	ErrDiffCompute    = errors.New("failed to compute diff")
)

// Repository provides read-only access to a local Git repository.
type Repository struct {
	repo *gogit.Repository
}

// Open opens the repository at the given path.
func Open(path string) (*Repository, error) {
	repo, err := gogit.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRepositoryOpen, path, err)
	}
	return &Repository{repo: repo}, nil
}

// History returns a single-pass iterator over the commit history,
// starting from the current HEAD reference.
func (r *Repository) History() (CommitIter, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	cIter, err := r.repo.Log(&gogit.LogOptions{From: ref.Hash()})
	if err != nil {
		return nil, fmt.Errorf("failed to read log: %w", err)
	}

	return &historyIter{iter: cIter}, nil
}

type historyIter struct {
	iter object.CommitIter
}

func (it *historyIter) Next() (Commit, error) {
	c, err := it.iter.Next()
	if err != nil {
		// io.EOF passes through to signal exhaustion.
		return Commit{}, err
	}
	return toCommit(c), nil
}

func (it *historyIter) Close() {
	it.iter.Close()
}

// Commit looks up a commit by hash.
func (r *Repository) Commit(hash string) (Commit, error) {
	c, err := r.commitObject(hash)
	if err != nil {
		return Commit{}, err
	}
	return toCommit(c), nil
}

// TreeDiff computes the line-level diff from the parent commit's tree to
// the commit's tree. Each changed file carries its diff lines tagged with
// an origin marker ('+', '-' or ' ').
func (r *Repository) TreeDiff(parentHash, commitHash string) ([]FileDiff, error) {
	parent, err := r.commitObject(parentHash)
	if err != nil {
		return nil, err
	}
	commit, err := r.commitObject(commitHash)
	if err != nil {
		return nil, err
	}

	patch, err := parent.Patch(commit)
	if err != nil {
		return nil, fmt.Errorf("%w: %s..%s: %v", ErrDiffCompute, parentHash, commitHash, err)
	}

	var files []FileDiff

	for _, filePatch := range patch.FilePatches() {
		from, to := filePatch.Files()

		var path string
		switch {
		case to != nil:
			path = to.Path()
		case from != nil:
			path = from.Path()
		default:
			continue
		}

		var lines []DiffLine
		for _, chunk := range filePatch.Chunks() {
			origin := byte(' ')
			switch chunk.Type() {
			case fdiff.Add:
				origin = '+'
			case fdiff.Delete:
				origin = '-'
			}
			for _, text := range splitChunkLines(chunk.Content()) {
				lines = append(lines, DiffLine{Origin: origin, Text: text})
			}
		}

		files = append(files, FileDiff{Path: path, Lines: lines})
	}

	return files, nil
}

func (r *Repository) commitObject(hash string) (*object.Commit, error) {
	c, err := r.repo.CommitObject(plumbing.NewHash(hash))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCommitLookup, hash, err)
	}
	return c, nil
}

func toCommit(c *object.Commit) Commit {
	parents := make([]string, 0, len(c.ParentHashes))
	for _, h := range c.ParentHashes {
		parents = append(parents, h.String())
	}
	return Commit{
		Hash:    c.Hash.String(),
		Parents: parents,
		Author:  AuthorInfo{Name: c.Author.Name, Email: c.Author.Email},
		Message: c.Message,
	}
}

// splitChunkLines splits chunk content into lines, dropping the empty
// remainder after a trailing newline but keeping interior empty lines.
func splitChunkLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
