package survey

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/rmarchant/gitcorpus/internal/git"
)

// Options configures a census run.
type Options struct {
	RepoPath string
	Include  []string // Glob patterns to include
	Exclude  []string // Glob patterns to exclude
}

// ExtensionCount is the number of files carrying one extension.
type ExtensionCount struct {
	Extension string
	Files     int
}

// Census summarizes the files of the HEAD tree by extension. It helps
// choosing the target extensions for an extraction run.
type Census struct {
	TotalFiles  int
	NoExtension int
	Extensions  []ExtensionCount
}

// Run walks the HEAD tree of the repository and counts files per
// extension, honoring the include/exclude glob filters.
func Run(opts Options) (*Census, error) {
	repo, err := gogit.PlainOpen(opts.RepoPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", git.ErrRepositoryOpen, opts.RepoPath, err)
	}

	ref, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", git.ErrCommitLookup, ref.Hash(), err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to read HEAD tree: %w", err)
	}

	census := &Census{}
	counts := make(map[string]int)

	err = tree.Files().ForEach(func(f *object.File) error {
		if !matchesFilters(f.Name, opts.Include, opts.Exclude) {
			return nil
		}
		census.TotalFiles++
		ext := git.ExtensionOf(f.Name)
		if ext == "" {
			census.NoExtension++
			return nil
		}
		counts[ext]++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk HEAD tree: %w", err)
	}

	census.Extensions = make([]ExtensionCount, 0, len(counts))
	for ext, n := range counts {
		census.Extensions = append(census.Extensions, ExtensionCount{Extension: ext, Files: n})
	}
	sort.Slice(census.Extensions, func(i, j int) bool {
		if census.Extensions[i].Files != census.Extensions[j].Files {
			return census.Extensions[i].Files > census.Extensions[j].Files
		}
		return census.Extensions[i].Extension < census.Extensions[j].Extension
	})

	return census, nil
}

// matchesFilters checks if a path matches the include/exclude filters.
func matchesFilters(path string, include, exclude []string) bool {
	// Normalize path separators
	path = strings.ReplaceAll(path, "\\", "/")

	// Check exclude patterns first
	for _, pattern := range exclude {
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			return false
		}
	}

	// If no include patterns, accept all
	if len(include) == 0 {
		return true
	}

	// Check include patterns
	for _, pattern := range include {
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			return true
		}
	}

	return false
}
