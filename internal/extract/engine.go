package extract

import (
	"errors"
	"fmt"
	"io"

	"github.com/rmarchant/gitcorpus/config"
	"github.com/rmarchant/gitcorpus/internal/dataset"
	"github.com/rmarchant/gitcorpus/internal/git"
)

// Totals summarizes one extraction run.
type Totals struct {
	// Processed is the number of distinct commit ids evaluated.
	Processed int
	// Saved is the number of records accepted into the dataset.
	Saved int
}

// Engine drives a single forward pass over the commit history, routing
// candidates through the filter pipeline and accumulating accepted
// records until the target dataset size is reached or history runs out.
type Engine struct {
	reader   git.Reader
	pipeline *Pipeline
	size     int
	reporter Reporter
}

// NewEngine creates an engine for the given reader and run configuration.
// A nil reporter defaults to NopReporter.
func NewEngine(reader git.Reader, cfg config.ExtractConfig, reporter Reporter) *Engine {
	if reporter == nil {
		reporter = NopReporter{}
	}
	return &Engine{
		reader:   reader,
		pipeline: NewPipeline(reader, cfg),
		size:     cfg.Size,
		reporter: reporter,
	}
}

// runState threads the mutable run-wide state through each traversal
// step, keeping the pipeline itself free of side effects.
type runState struct {
	processed map[string]struct{}
	records   []dataset.Record
}

// Run walks the history from HEAD. Merge commits are never evaluated
// themselves: each of their parents is evaluated independently instead,
// in parent order. Every evaluated commit id is marked processed
// immediately after its evaluation, so no id reaches the pipeline twice
// even when merge expansion references the same parent from several
// merge points.
//
// An unreadable commit during iteration is fatal; per-commit lookup and
// diff failures surface as rejections and the run continues.
func (e *Engine) Run() ([]dataset.Record, Totals, error) {
	iter, err := e.reader.History()
	if err != nil {
		return nil, Totals{}, fmt.Errorf("failed to read history: %w", err)
	}
	defer iter.Close()

	state := &runState{processed: make(map[string]struct{})}

	for len(state.records) < e.size {
		c, err := iter.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, Totals{}, fmt.Errorf("history iteration failed: %w", err)
		}

		if c.IsMerge() {
			for _, parentHash := range c.Parents {
				if len(state.records) >= e.size {
					break
				}
				parent, err := e.reader.Commit(parentHash)
				if err != nil {
					e.reporter.Skipped(parentHash, ReasonParentFetch)
					continue
				}
				e.step(parent, state)
			}
		} else {
			e.step(c, state)
		}
	}

	totals := Totals{
		Processed: len(state.processed),
		Saved:     len(state.records),
	}
	return state.records, totals, nil
}

// step evaluates one commit and marks it processed regardless of the
// outcome.
func (e *Engine) step(c git.Commit, state *runState) {
	decision := e.pipeline.Evaluate(c, state.processed)
	state.processed[c.Hash] = struct{}{}

	if decision.Accepted() {
		state.records = append(state.records, *decision.Record)
		e.reporter.Saved(c.Hash, len(state.records), e.size)
	} else {
		e.reporter.Skipped(c.Hash, decision.Reason)
	}
}
