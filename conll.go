package kakari

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const conllEmpty = "_"

// universalPOS maps IPADIC coarse tags to Universal Dependencies UPOS.
var universalPOS = map[PartOfSpeech]string{
	POSNoun:          "NOUN",
	POSVerb:          "VERB",
	POSAdjective:     "ADJ",
	POSAdverb:        "ADV",
	POSParticle:      "ADP",
	POSAuxiliaryVerb: "AUX",
	POSSymbol:        "PUNCT",
	POSPronoun:       "PRON",
	POSNumeral:       "NUM",
	POSPrenominal:    "DET",
	POSConjunction:   "CCONJ",
	POSInterjection:  "INTJ",
	POSPrefix:        "NOUN",
}

// WriteCoNLL writes a in CoNLL-U: ten tab-separated columns per morpheme
// and a blank line after the sentence. HEAD is 1-based; the sentence-final
// morpheme is the root. Role elements are listed in MISC.
func WriteCoNLL(w io.Writer, a *Analysis) error {
	bw := bufio.NewWriter(w)
	if a.Text != "" {
		fmt.Fprintf(bw, "# text = %s\n", a.Text)
	}
	heads := a.Heads()
	labels := make([]Label, len(a.Morphemes))
	for _, e := range a.Edges {
		labels[e.FromIndex] = e.Label
	}
	for i, m := range a.Morphemes {
		head, rel := "0", "root"
		if heads[i] >= 0 {
			head, rel = strconv.Itoa(heads[i]+1), string(labels[i])
		}
		cols := []string{
			strconv.Itoa(i + 1),
			m.Surface,
			orEmpty(m.Lemma()),
			orEmpty(upos(m.POS)),
			orEmpty(xpos(m)),
			orEmpty(feats(m)),
			head,
			rel,
			conllEmpty,
			orEmpty(misc(m, a.RolesAt(i))),
		}
		fmt.Fprintln(bw, strings.Join(cols, "\t"))
	}
	fmt.Fprintln(bw)
	return bw.Flush()
}

func upos(p PartOfSpeech) string {
	if u, ok := universalPOS[p]; ok {
		return u
	}
	return "X"
}

func xpos(m Morpheme) string {
	parts := []string{string(m.POS)}
	for _, d := range []string{m.POSDetail1, m.POSDetail2, m.POSDetail3} {
		if d != "" {
			parts = append(parts, d)
		}
	}
	return strings.Join(parts, "-")
}

func feats(m Morpheme) string {
	var fs []string
	if m.ConjugatedForm != "" {
		fs = append(fs, "Form="+m.ConjugatedForm)
	}
	if m.ConjugatedType != "" {
		fs = append(fs, "Type="+m.ConjugatedType)
	}
	return strings.Join(fs, "|")
}

func misc(m Morpheme, roles []RoleElement) string {
	var fs []string
	if m.Reading != "" {
		fs = append(fs, "Reading="+m.Reading)
	}
	if len(roles) > 0 {
		rs := make([]string, 0, len(roles))
		for _, r := range roles {
			rs = append(rs, string(r.Category)+":"+strconv.FormatFloat(r.Confidence, 'g', -1, 64))
		}
		fs = append(fs, "Role="+strings.Join(rs, ","))
	}
	return strings.Join(fs, "|")
}

func orEmpty(s string) string {
	if s == "" {
		return conllEmpty
	}
	return s
}
