package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kakari-nlp/kakari"
)

func newAnalyzeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Analyze sentences",
		Long: "Analyze sentences given as a positional arg, a file or stdin. Each non-empty line is one sentence.\n" +
			"With --mecab the input is pre-tokenized MeCab/IPADIC output and no dictionary is loaded.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, opts)
		},
	}

	cmd.Flags().Bool("mecab", false, "Input is MeCab IPADIC output (one morpheme per line, EOS between sentences)")
	cmd.Flags().StringP("input", "i", "", "Read input from this file instead of stdin")
	cmd.Flags().Bool("save", false, "Archive the analyses in the history database")
	cmd.Flags().IntP("workers", "w", 0, "Parallel workers for multi-sentence input (default: analyzer.workers)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, opts *options) error {
	mecab, _ := cmd.Flags().GetBool("mecab")
	input, _ := cmd.Flags().GetString("input")
	save, _ := cmd.Flags().GetBool("save")
	workers, _ := cmd.Flags().GetInt("workers")
	if workers <= 0 {
		workers = opts.cfg.Analyzer.Workers
	}

	r, err := inputReader(cmd, args, input)
	if err != nil {
		return err
	}
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}

	var analyses []*kakari.Analysis
	if mecab {
		sentences, err := kakari.ReadMeCab(r)
		if err != nil {
			return err
		}
		analyses, err = kakari.AnalyzeBatch(cmd.Context(), sentences, workers)
		if err != nil {
			return err
		}
	} else {
		analyses, err = analyzeLines(r, opts)
		if err != nil {
			return err
		}
	}
	if len(analyses) == 0 {
		return fmt.Errorf("analyze: no input (positional arg, --input or stdin)")
	}

	if save {
		s, err := opts.openStore()
		if err != nil {
			return err
		}
		defer s.Close()
		for _, a := range analyses {
			rec, err := s.Save(cmd.Context(), a)
			if err != nil {
				return err
			}
			opts.logger.Info("saved analysis", slog.String("id", rec.ID), slog.Int("morphemes", rec.Morphemes))
		}
	}

	return render(cmd.OutOrStdout(), opts.format, analyses)
}

func analyzeLines(r io.Reader, opts *options) ([]*kakari.Analysis, error) {
	b, err := io.ReadAll(io.LimitReader(r, int64(opts.cfg.Analyzer.MaxInputBytes)+1))
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if len(b) > opts.cfg.Analyzer.MaxInputBytes {
		return nil, fmt.Errorf("input exceeds %d bytes", opts.cfg.Analyzer.MaxInputBytes)
	}

	var lines []string
	for _, line := range strings.Split(string(b), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, nil
	}

	tok, err := newTokenizer()
	if err != nil {
		return nil, err
	}
	analyzer := kakari.New(tok)

	out := make([]*kakari.Analysis, 0, len(lines))
	for _, line := range lines {
		a, err := analyzer.AnalyzeText(line)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// inputReader picks positional args, then --input, then piped stdin.
func inputReader(cmd *cobra.Command, args []string, input string) (io.Reader, error) {
	if len(args) > 0 {
		return strings.NewReader(strings.Join(args, " ")), nil
	}
	if input != "" {
		f, err := os.Open(input)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		return f, nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
			return strings.NewReader(""), nil
		}
		return io.NopCloser(f), nil
	}
	return in, nil
}
