// Package kakari assigns dependency links between the morphemes of a
// tokenized Japanese sentence and extracts semantic-role elements
// (who, what, when, where, why, how) from it with heuristic confidences.
//
// Resolve and Extract are pure functions over a morpheme slice and are
// safe for concurrent use. An Analyzer adds a tokenizer in front of them.
package kakari

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrNotReady is returned when text is analyzed before a tokenizer is
	// available.
	ErrNotReady = errors.New("kakari: tokenizer not ready")
	// ErrEmptyText is returned for blank input text.
	ErrEmptyText = errors.New("kakari: empty text")
)

// Tokenizer segments raw text into tagged morphemes.
type Tokenizer interface {
	Tokenize(text string) []Morpheme
}

// Analyzer runs the tokenizer and both analysis stages.
type Analyzer struct {
	tok Tokenizer
}

// New returns an Analyzer backed by tok. A nil tokenizer is allowed; such an
// Analyzer only accepts pre-tokenized input.
func New(tok Tokenizer) *Analyzer {
	return &Analyzer{tok: tok}
}

// Ready reports whether the Analyzer can tokenize raw text.
func (a *Analyzer) Ready() bool {
	return a != nil && a.tok != nil
}

// AnalyzeText tokenizes text and analyzes the resulting sentence.
func (a *Analyzer) AnalyzeText(text string) (*Analysis, error) {
	if !a.Ready() {
		return nil, ErrNotReady
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	res := Analyze(a.tok.Tokenize(text))
	res.Text = text
	return res, nil
}

// AnalyzeBatch analyzes every sentence with up to workers goroutines.
// Results keep the input order. workers < 1 means one worker.
func AnalyzeBatch(ctx context.Context, sentences [][]Morpheme, workers int) ([]*Analysis, error) {
	if workers < 1 {
		workers = 1
	}
	out := make([]*Analysis, len(sentences))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, s := range sentences {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = Analyze(s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
