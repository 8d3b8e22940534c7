package cmd

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/skill-matcher/internal/analysis"
	"github.com/spigell/skill-matcher/internal/output"
	"github.com/spigell/skill-matcher/internal/scoring"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job description using the AI provider",
	Example: "  skill-matcher analyze --job job.txt --resume resume.txt\n" +
		"  cat resume.txt | skill-matcher analyze --job job.txt --resume - -o json",
	Run: func(cmd *cobra.Command, _ []string) {
		analyze(cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().String("job", "", "file with the job description (\"-\" for stdin)")
	analyzeCmd.Flags().StringP("resume", "r", "", "file with the resume text (\"-\" for stdin)")
	analyzeCmd.Flags().StringP("output", "o", output.FormatTable, "report format: table or json")
	analyzeCmd.Flags().Duration("timeout", 2*time.Minute, "time limit for the whole analysis")

	rootCmd.PersistentFlags().Float64("required-weight", scoring.DefaultRequiredWeight, "share of required coverage in the coverage score")
	viper.BindPFlag("matching.required-weight", rootCmd.PersistentFlags().Lookup("required-weight"))
}

func analyze(cmd *cobra.Command) {
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	format, _ := cmd.Flags().GetString("output")
	if !output.ValidFormat(format) {
		logger.Fatal("unknown output format", zap.String("output", format))
	}

	jobFlag, _ := cmd.Flags().GetString("job")
	resumeFlag, _ := cmd.Flags().GetString("resume")

	jobPath, err := resolvePath(jobFlag, "job", "Job description file")
	if err != nil {
		logger.Fatal("resolving the job description", zap.Error(err))
	}
	resumePath, err := resolvePath(resumeFlag, "resume", "Resume file")
	if err != nil {
		logger.Fatal("resolving the resume", zap.Error(err))
	}
	if jobPath == stdinPath && resumePath == stdinPath {
		logger.Fatal("only one of --job and --resume may read stdin")
	}

	jobText, err := readDocument(jobPath, os.Stdin)
	if err != nil {
		logger.Fatal("reading the job description", zap.Error(err))
	}
	resumeText, err := readDocument(resumePath, os.Stdin)
	if err != nil {
		logger.Fatal("reading the resume", zap.Error(err))
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	svc, _, err := newService(ctx, config, true, logger)
	if err != nil {
		logger.Fatal("preparing the analysis", zap.Error(err))
	}

	logger.Info("starting the analysis",
		zap.String("version", version),
		zap.String("job", jobPath),
		zap.String("resume", resumePath),
		zap.Float64("required_weight", svc.Weights().RequiredWeight),
	)

	report, err := svc.Analyze(ctx, analysis.Request{JobText: jobText, ResumeText: resumeText})
	if err != nil {
		logger.Fatal("analysis failed", zap.Error(err))
	}

	if err := output.Render(cmd.OutOrStdout(), format, report); err != nil {
		logger.Fatal("rendering the report", zap.Error(err))
	}
}
