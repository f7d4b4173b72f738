package extract

import (
	"errors"
	"strings"
	"testing"

	"github.com/rmarchant/gitcorpus/config"
	"github.com/rmarchant/gitcorpus/internal/git"
)

func testConfig() config.ExtractConfig {
	return config.ExtractConfig{
		Extensions:    []string{"py"},
		Size:          10,
		MessageLenMin: 5,
		MessageLenMax: 20,
		ChangesLenMin: 1,
		ChangesLenMax: 100,
	}
}

// testReader builds a mock with a root commit "p0" and a candidate "c1"
// that passes every guard: human author, in-bounds subject, pure py diff.
func testReader() *git.MockReader {
	return &git.MockReader{
		Order: []string{"c1", "p0"},
		Commits: map[string]git.Commit{
			"p0": {
				Hash:    "p0",
				Author:  git.AuthorInfo{Name: "Alice"},
				Message: "initial commit\n",
			},
			"c1": {
				Hash:    "c1",
				Parents: []string{"p0"},
				Author:  git.AuthorInfo{Name: "Alice"},
				Message: "fix bug\n\nlong description\n",
			},
		},
		Diffs: map[string][]git.FileDiff{
			"c1": {addedFile("a.py", "line1", "line2", "line3")},
		},
	}
}

func noProcessed() map[string]struct{} {
	return make(map[string]struct{})
}

func TestEvaluate_Accept(t *testing.T) {
	p := NewPipeline(testReader(), testConfig())

	d := p.Evaluate(mustCommit(t, testReader(), "c1"), noProcessed())
	if !d.Accepted() {
		t.Fatalf("expected accept, got reject (%s)", d.Reason)
	}
	if d.Record.CommitMessage != "fix bug" {
		t.Errorf("CommitMessage = %q, want %q", d.Record.CommitMessage, "fix bug")
	}
	want := "+line1\n+line2\n+line3\n"
	if d.Record.CommitChanges != want {
		t.Errorf("CommitChanges = %q, want %q", d.Record.CommitChanges, want)
	}
}

func TestEvaluate_AlreadyProcessed(t *testing.T) {
	reader := testReader()
	p := NewPipeline(reader, testConfig())

	processed := map[string]struct{}{"c1": {}}
	d := p.Evaluate(mustCommit(t, reader, "c1"), processed)
	assertReject(t, d, ReasonAlreadyProcessed)
}

func TestEvaluate_RootCommit(t *testing.T) {
	reader := testReader()
	p := NewPipeline(reader, testConfig())

	d := p.Evaluate(mustCommit(t, reader, "p0"), noProcessed())
	assertReject(t, d, ReasonNoParents)
}

func TestEvaluate_ParentFetchFailure(t *testing.T) {
	reader := testReader()
	reader.LookupErr = map[string]error{"p0": errors.New("object not found")}
	p := NewPipeline(reader, testConfig())

	d := p.Evaluate(reader.Commits["c1"], noProcessed())
	assertReject(t, d, ReasonParentFetch)
}

func TestEvaluate_BotAuthor(t *testing.T) {
	reader := testReader()
	c := reader.Commits["c1"]
	c.Author.Name = "dependabot[bot]"
	reader.Commits["c1"] = c
	p := NewPipeline(reader, testConfig())

	d := p.Evaluate(c, noProcessed())
	assertReject(t, d, ReasonBotAuthor)
}

func TestEvaluate_MessageBounds(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{"empty message", ""},
		{"subject too short", "fix\n"},
		{"subject too long", strings.Repeat("x", 21) + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := testReader()
			c := reader.Commits["c1"]
			c.Message = tt.message
			reader.Commits["c1"] = c
			p := NewPipeline(reader, testConfig())

			d := p.Evaluate(c, noProcessed())
			assertReject(t, d, ReasonMessageLength)
		})
	}
}

func TestEvaluate_MergeSubject(t *testing.T) {
	reader := testReader()
	c := reader.Commits["c1"]
	c.Message = "Merge branch 'main'\n"
	reader.Commits["c1"] = c
	p := NewPipeline(reader, testConfig())

	d := p.Evaluate(c, noProcessed())
	assertReject(t, d, ReasonMergeMessage)
}

func TestEvaluate_ImpureDiff(t *testing.T) {
	reader := testReader()
	reader.Diffs["c1"] = []git.FileDiff{
		addedFile("a.py", "line1"),
		addedFile("b.txt", "other"),
	}
	p := NewPipeline(reader, testConfig())

	d := p.Evaluate(reader.Commits["c1"], noProcessed())
	assertReject(t, d, ReasonNoTargetChanges)
}

func TestEvaluate_DiffFailure(t *testing.T) {
	reader := testReader()
	reader.DiffErr = map[string]error{"c1": errors.New("diff failed")}
	p := NewPipeline(reader, testConfig())

	d := p.Evaluate(reader.Commits["c1"], noProcessed())
	assertReject(t, d, ReasonDiffFailed)
}

func TestEvaluate_ChangesBounds(t *testing.T) {
	reader := testReader()
	var lines []string
	for i := 0; i < 30; i++ {
		lines = append(lines, strings.Repeat("y", 10))
	}
	reader.Diffs["c1"] = []git.FileDiff{addedFile("a.py", lines...)}
	p := NewPipeline(reader, testConfig())

	d := p.Evaluate(reader.Commits["c1"], noProcessed())
	assertReject(t, d, ReasonChangesLength)
}

func TestEvaluate_DoesNotMutateProcessedSet(t *testing.T) {
	reader := testReader()
	p := NewPipeline(reader, testConfig())

	processed := noProcessed()
	p.Evaluate(reader.Commits["c1"], processed)
	if len(processed) != 0 {
		t.Errorf("Evaluate mutated the processed set: %v", processed)
	}
}

func assertReject(t *testing.T, d Decision, want Reason) {
	t.Helper()
	if d.Accepted() {
		t.Fatal("expected reject, got accept")
	}
	if d.Reason != want {
		t.Errorf("Reason = %q, want %q", d.Reason, want)
	}
}

func mustCommit(t *testing.T, reader *git.MockReader, hash string) git.Commit {
	t.Helper()
	c, err := reader.Commit(hash)
	if err != nil {
		t.Fatalf("unexpected lookup error for %s: %v", hash, err)
	}
	return c
}
