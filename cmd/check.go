package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"storytutor/internal/evaluate"
	"storytutor/internal/rubric"
	"storytutor/internal/store"
)

var checkCmd = &cobra.Command{
	Use:   "check <question-id> <answer>",
	Short: "Grade a single answer from the command line",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, args[0], args[1:])
	},
}

func init() {
	checkCmd.Flags().Bool("voice", false, "Treat the answer as a voice transcript")
	checkCmd.Flags().Bool("fallback", false, "Skip the LLM and grade with keyword matching only")
}

func runCheck(cmd *cobra.Command, questionID string, answerParts []string) error {
	ctx := cmd.Context()

	cfg, log, err := loadConfigAndLogger(cmd)
	if err != nil {
		return err
	}

	registry, err := rubric.Default()
	if err != nil {
		return fmt.Errorf("build rubric registry: %w", err)
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

	var grader *evaluate.Grader
	if fallbackOnly, _ := cmd.Flags().GetBool("fallback"); !fallbackOnly {
		grader = buildGrader(ctx, cfg, st.EventRepo(), log)
	}

	modality := evaluate.ModalityText
	if voice, _ := cmd.Flags().GetBool("voice"); voice {
		modality = evaluate.ModalityVoice
	}

	engine := evaluate.NewEngine(registry, grader, st.EventRepo(), log)
	verdict, err := engine.Evaluate(ctx, evaluate.NewSubmission(questionID, answerParts, modality))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(verdict)
}
