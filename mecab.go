package kakari

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// eosMarker terminates a sentence in MeCab output.
const eosMarker = "EOS"

// ReadMeCab reads MeCab/kagome IPADIC output, one morpheme per line in the
// form "surface\tpos,detail1,detail2,detail3,ctype,cform,base,reading,pron",
// and returns one morpheme slice per sentence. Sentences end at an EOS line;
// a final sentence without EOS is kept.
func ReadMeCab(r io.Reader) ([][]Morpheme, error) {
	var (
		sentences [][]Morpheme
		current   []Morpheme
		lineNo    int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if line == eosMarker {
			sentences = append(sentences, nonNil(current))
			current = nil
			continue
		}
		surface, feats, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("mecab line %d: missing tab separator", lineNo)
		}
		if surface == "" {
			return nil, fmt.Errorf("mecab line %d: empty surface", lineNo)
		}
		current = append(current, morphemeFromFeatures(surface, strings.Split(feats, ",")))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read mecab: %w", err)
	}
	if len(current) > 0 {
		sentences = append(sentences, current)
	}
	return sentences, nil
}

// WriteMeCab writes morphemes in the format read by ReadMeCab, followed by
// an EOS line.
func WriteMeCab(w io.Writer, morphemes []Morpheme) error {
	bw := bufio.NewWriter(w)
	for _, m := range morphemes {
		fmt.Fprintf(bw, "%s\t%s\n", m.Surface, strings.Join(m.features(), ","))
	}
	fmt.Fprintln(bw, eosMarker)
	return bw.Flush()
}

func nonNil(ms []Morpheme) []Morpheme {
	if ms == nil {
		return []Morpheme{}
	}
	return ms
}
