// Package cli implements the kakari CLI commands.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/kakari-nlp/kakari"
	"github.com/kakari-nlp/kakari/internal/config"
	"github.com/kakari-nlp/kakari/internal/logging"
	"github.com/kakari-nlp/kakari/internal/store"
)

// newTokenizer loads the tokenizer used for raw text input.
var newTokenizer = func() (kakari.Tokenizer, error) {
	return kakari.NewIPATokenizer()
}

type options struct {
	dbPath string
	format string

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd builds the top-level command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "kakari",
		Short:         "Dependency and semantic-role analysis for Japanese sentences",
		Long:          "Attach dependency links between the morphemes of a Japanese sentence and extract who/what/when/where/why/how elements.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			opts.cfg = cfg
			opts.logger = logging.New(cfg.Log, cmd.ErrOrStderr())
			switch opts.format {
			case formatJSON, formatCoNLL, formatText:
				return nil
			default:
				return fmt.Errorf("unknown format %q (want json, conll or text)", opts.format)
			}
		},
	}

	root.PersistentFlags().StringVarP(&opts.dbPath, "db", "d", "", "History database path (default: $KAKARI_DB or ~/.kakari/history.db)")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", formatJSON, "Output format: json, conll or text")

	root.AddCommand(newAnalyzeCmd(opts), newHistoryCmd(opts))
	return root
}

func (o *options) openStore() (*store.SQLiteStore, error) {
	path := o.dbPath
	if path == "" {
		path = o.cfg.Store.DBPath()
	}
	s, err := store.NewSQLiteStore(path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return s, nil
}
