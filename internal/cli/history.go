package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kakari-nlp/kakari"
	"github.com/kakari-nlp/kakari/internal/store"
)

func newHistoryCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect archived analyses",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List archived analyses, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryList(cmd, opts)
		},
	}
	list.Flags().IntP("limit", "l", store.DefaultListLimit, "Max results")
	list.Flags().StringP("query", "q", "", "Only analyses whose text contains this substring")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one archived analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryShow(cmd, args[0], opts)
		},
	}

	cmd.AddCommand(list, show)
	return cmd
}

func runHistoryList(cmd *cobra.Command, opts *options) error {
	limit, _ := cmd.Flags().GetInt("limit")
	query, _ := cmd.Flags().GetString("query")

	s, err := opts.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	recs, err := s.List(cmd.Context(), store.ListParams{Limit: limit, Contains: query, Summary: true})
	if err != nil {
		return err
	}

	if opts.format == formatJSON {
		if recs == nil {
			recs = []store.Record{}
		}
		return writeJSON(cmd.OutOrStdout(), recs)
	}
	for _, r := range recs {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %3d  %s\n",
			r.ID, r.CreatedAt.Local().Format(time.DateTime), r.Morphemes, r.Text)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, id string, opts *options) error {
	s, err := opts.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	rec, err := s.Get(cmd.Context(), id)
	if err != nil {
		return err
	}
	if opts.format == formatJSON {
		return writeJSON(cmd.OutOrStdout(), rec)
	}
	return render(cmd.OutOrStdout(), opts.format, []*kakari.Analysis{rec.Analysis})
}
