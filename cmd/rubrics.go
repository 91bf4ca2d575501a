package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"storytutor/internal/rubric"
)

var rubricsCmd = &cobra.Command{
	Use:   "rubrics",
	Short: "List the registered question rubrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := rubric.Default()
		if err != nil {
			return fmt.Errorf("build rubric registry: %w", err)
		}

		story, _ := cmd.Flags().GetString("story")

		rubrics := registry.All()
		if story != "" {
			rubrics = registry.Story(story)
			if len(rubrics) == 0 {
				return fmt.Errorf("unknown story: %q", story)
			}
		}

		tw := table.NewWriter()
		tw.SetOutputMirror(cmd.OutOrStdout())
		tw.SetStyle(table.StyleRounded)
		tw.AppendHeader(table.Row{"ID", "Story", "Category", "Concepts", "Min len", "Prompt"})
		tw.SetColumnConfigs([]table.ColumnConfig{
			{Number: 4, Align: text.AlignRight},
			{Number: 5, Align: text.AlignRight},
			{Number: 6, WidthMax: 48},
		})

		for _, q := range rubrics {
			tw.AppendRow(table.Row{
				q.ID, q.Story, q.Category, len(q.ExpectedConcepts), q.MinAnswerLength, q.Prompt,
			})
		}
		tw.Render()
		return nil
	},
}

func init() {
	rubricsCmd.Flags().String("story", "", "Only show rubrics for one story")
}
