package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"storytutor/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show grading statistics per question",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfigAndLogger(cmd)
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd, cfg.DBPath)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if recent, _ := cmd.Flags().GetInt("recent"); recent > 0 {
			return printRecent(cmd, st, recent)
		}

		stats, err := st.EventRepo().StatsByQuestion(cmd.Context())
		if err != nil {
			return fmt.Errorf("read stats: %w", err)
		}
		if len(stats) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No answers graded yet.")
			return nil
		}

		tw := table.NewWriter()
		tw.SetOutputMirror(cmd.OutOrStdout())
		tw.SetStyle(table.StyleRounded)
		tw.AppendHeader(table.Row{"Question", "Graded", "Correct", "Fallback"})
		tw.SetColumnConfigs([]table.ColumnConfig{
			{Number: 2, Align: text.AlignRight},
			{Number: 3, Align: text.AlignRight},
			{Number: 4, Align: text.AlignRight},
		})

		for _, s := range stats {
			tw.AppendRow(table.Row{s.QuestionID, s.Total, s.Correct, s.FallbackCount})
		}
		tw.Render()
		return nil
	},
}

// printRecent lists individual graded answers, newest first.
func printRecent(cmd *cobra.Command, st *store.Store, limit int) error {
	events, err := st.EventRepo().RecentEvaluations(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("read evaluations: %w", err)
	}
	if len(events) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No answers graded yet.")
		return nil
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(cmd.OutOrStdout())
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Question", "Tier", "Correct", "Source", "Answer"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, WidthMax: 40},
	})

	for _, e := range events {
		tw.AppendRow(table.Row{e.QuestionID, e.Tier, e.IsCorrect, e.Source, e.AnswerText})
	}
	tw.Render()
	return nil
}

func init() {
	statsCmd.Flags().Int("recent", 0, "Show the N most recent graded answers instead of aggregates")
}
