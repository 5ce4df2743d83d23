package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/kakari-nlp/kakari"
)

const (
	formatJSON  = "json"
	formatCoNLL = "conll"
	formatText  = "text"
)

func render(w io.Writer, format string, analyses []*kakari.Analysis) error {
	switch format {
	case formatCoNLL:
		for _, a := range analyses {
			if err := kakari.WriteCoNLL(w, a); err != nil {
				return err
			}
		}
		return nil
	case formatText:
		for i, a := range analyses {
			if i > 0 {
				fmt.Fprintln(w)
			}
			if err := writeText(w, a); err != nil {
				return err
			}
		}
		return nil
	default:
		if len(analyses) == 1 {
			return writeJSON(w, analyses[0])
		}
		return writeJSON(w, analyses)
	}
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// writeText prints a morpheme table followed by the role elements.
func writeText(w io.Writer, a *kakari.Analysis) error {
	if a.Text != "" {
		fmt.Fprintf(w, "%s\n", a.Text)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSURFACE\tPOS\tHEAD\tLABEL")
	heads := a.Heads()
	labels := make(map[int]kakari.Label, len(a.Edges))
	for _, e := range a.Edges {
		labels[e.FromIndex] = e.Label
	}
	for i, m := range a.Morphemes {
		head, label := "-", "-"
		if heads[i] >= 0 {
			head, label = strconv.Itoa(heads[i]), string(labels[i])
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i, m.Surface, m.POS, head, label)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	for _, c := range kakari.Categories {
		els := a.Roles[c]
		parts := make([]string, 0, len(els))
		for _, el := range els {
			parts = append(parts, fmt.Sprintf("%s(%.1f)", el.Text, el.Confidence))
		}
		fmt.Fprintf(w, "%-5s %s\n", c, strings.Join(parts, " "))
	}
	return nil
}
