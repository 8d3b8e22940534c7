package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/skill-matcher/internal/extraction"
	"github.com/spigell/skill-matcher/internal/output"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score already extracted skills and embeddings without calling the AI provider",
	Long: "score reads a JSON document with the fields job, resumeSkills and optionally\n" +
		"weightedSkills, jobEmbedding, resumeEmbedding and aiSummary.",
	Run: func(cmd *cobra.Command, _ []string) {
		score(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringP("input", "i", stdinPath, "JSON file with the extracted match (\"-\" for stdin)")
	scoreCmd.Flags().StringP("output", "o", output.FormatTable, "report format: table or json")
}

func score(cmd *cobra.Command) {
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	format, _ := cmd.Flags().GetString("output")
	if !output.ValidFormat(format) {
		logger.Fatal("unknown output format", zap.String("output", format))
	}

	path, _ := cmd.Flags().GetString("input")
	data, err := readDocument(path, os.Stdin)
	if err != nil {
		logger.Fatal("reading the score input", zap.Error(err))
	}

	svc, builder, err := newService(cmd.Context(), config, false, logger)
	if err != nil {
		logger.Fatal("preparing the scoring", zap.Error(err))
	}

	input, err := extraction.ParseScoreInput([]byte(data), builder.Normalizer())
	if err != nil {
		logger.Fatal("parsing the score input", zap.String("input", path), zap.Error(err))
	}

	report, err := svc.Score(input)
	if err != nil {
		logger.Fatal("scoring failed", zap.Error(err))
	}

	if err := output.Render(cmd.OutOrStdout(), format, report); err != nil {
		logger.Fatal("rendering the report", zap.Error(err))
	}
}
