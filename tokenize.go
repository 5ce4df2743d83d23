package kakari

import (
	"fmt"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// IPATokenizer tokenizes text with kagome and the IPADIC dictionary.
type IPATokenizer struct {
	t *tokenizer.Tokenizer
}

// NewIPATokenizer loads the embedded IPADIC dictionary. Loading takes a
// noticeable amount of time and memory, so callers typically do it once.
func NewIPATokenizer() (*IPATokenizer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("load ipa dictionary: %w", err)
	}
	return &IPATokenizer{t: t}, nil
}

// Tokenize implements Tokenizer.
func (t *IPATokenizer) Tokenize(text string) []Morpheme {
	tokens := t.t.Tokenize(text)
	out := make([]Morpheme, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Class == tokenizer.DUMMY {
			continue
		}
		out = append(out, morphemeFromFeatures(tok.Surface, tok.Features()))
	}
	return out
}
