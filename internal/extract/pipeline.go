package extract

import (
	"github.com/rmarchant/gitcorpus/config"
	"github.com/rmarchant/gitcorpus/internal/dataset"
	"github.com/rmarchant/gitcorpus/internal/filter"
	"github.com/rmarchant/gitcorpus/internal/git"
)

// Reason explains why a commit was rejected by the pipeline.
type Reason string

const (
	ReasonAlreadyProcessed Reason = "already processed"
	ReasonNoParents        Reason = "no parents"
	ReasonParentFetch      Reason = "failed to fetch parent"
	ReasonBotAuthor        Reason = "commit author indicates a bot"
	ReasonMessageLength    Reason = "commit message out of required length"
	ReasonMergeMessage     Reason = "commit message indicates a merge"
	ReasonNoTargetChanges  Reason = "no changes in files with target extensions"
	ReasonDiffFailed       Reason = "failed to read commit changes"
	ReasonChangesLength    Reason = "commit changes out of required length"
)

// Decision is the outcome of evaluating one commit: an accepted record,
// or a rejection with its reason.
type Decision struct {
	Record *dataset.Record
	Reason Reason
}

// Accepted reports whether the decision carries a record.
func (d Decision) Accepted() bool {
	return d.Record != nil
}

func accept(record dataset.Record) Decision {
	return Decision{Record: &record}
}

func reject(reason Reason) Decision {
	return Decision{Reason: reason}
}

// Pipeline applies the ordered guard chain to candidate commits.
type Pipeline struct {
	reader   git.Reader
	cfg      config.ExtractConfig
	allowed  map[string]struct{}
	messages filter.MessageFilter
}

// NewPipeline creates a pipeline over the given reader and run configuration.
func NewPipeline(reader git.Reader, cfg config.ExtractConfig) *Pipeline {
	return &Pipeline{
		reader:  reader,
		cfg:     cfg,
		allowed: cfg.ExtensionSet(),
		messages: filter.MessageFilter{
			MinLen: cfg.MessageLenMin,
			MaxLen: cfg.MessageLenMax,
		},
	}
}

// Evaluate runs the guard chain against one commit, short-circuiting on
// the first failing guard. It reads the processed set but never writes
// it; marking commits processed is the traversal engine's job.
//
// The diff baseline is always the commit's own first parent, even when
// the commit was reached through merge expansion.
func (p *Pipeline) Evaluate(c git.Commit, processed map[string]struct{}) Decision {
	if _, ok := processed[c.Hash]; ok {
		return reject(ReasonAlreadyProcessed)
	}

	if c.IsRoot() {
		return reject(ReasonNoParents)
	}

	if _, err := p.reader.Commit(c.Parents[0]); err != nil {
		return reject(ReasonParentFetch)
	}

	if filter.IsBotAuthor(c.Author.Name) {
		return reject(ReasonBotAuthor)
	}

	subject, ok := p.messages.Subject(c.Message)
	if !ok || !p.messages.Accept(subject) {
		return reject(ReasonMessageLength)
	}

	if filter.LooksLikeMerge(subject) {
		return reject(ReasonMergeMessage)
	}

	files, err := p.reader.TreeDiff(c.Parents[0], c.Hash)
	if err != nil {
		return reject(ReasonDiffFailed)
	}

	changes, ok := Changes(files, p.allowed)
	if !ok {
		return reject(ReasonNoTargetChanges)
	}

	if len(changes) < p.cfg.ChangesLenMin || len(changes) > p.cfg.ChangesLenMax {
		return reject(ReasonChangesLength)
	}

	return accept(dataset.Record{
		CommitMessage: subject,
		CommitChanges: changes,
	})
}
