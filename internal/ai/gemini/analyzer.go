package gemini

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/spigell/skill-matcher/internal/extraction"
	"github.com/spigell/skill-matcher/internal/logger"
	"github.com/spigell/skill-matcher/internal/utils"
	"go.uber.org/zap"
)

// ProviderName identifies this backend in logs and reports.
const ProviderName = "gemini"

const defaultMaxLogLength = 200

//go:embed job_prompt.md
var jobPrompt string

//go:embed resume_prompt.md
var resumePrompt string

//go:embed summary_prompt.md
var summaryPrompt string

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, message string) (string, error)
	Embed(ctx context.Context, text string) ([]float64, error)
	Model() string
}

// Analyzer implements ai.Provider on top of a Gemini generator.
type Analyzer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewAnalyzer(generator contentGenerator, log *zap.Logger, maxLogLength int) *Analyzer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Analyzer{
		generator: generator,
		logger:    logger.WithProvider(log, ProviderName, generator.Model()),
		maxLogLen: maxLogLength,
	}
}

func (a *Analyzer) Name() string { return ProviderName }

func (a *Analyzer) Model() string { return a.generator.Model() }

// ExtractJob asks the model for the requirement structure of jobText. Only a
// failed request is an error; an unusable answer yields an empty analysis.
func (a *Analyzer) ExtractJob(ctx context.Context, jobText string) (extraction.JobAnalysis, error) {
	raw, err := a.generate(ctx, "job analysis", jobPrompt, section("job_description", jobText))
	if err != nil {
		return extraction.EmptyJobAnalysis(), err
	}

	analysis, err := extraction.ParseJobAnalysis(raw)
	if err != nil {
		a.logger.Warn("job analysis answer is malformed", zap.Error(err))
	}
	return analysis, nil
}

// ExtractResume asks the model for the skills listed in resumeText.
func (a *Analyzer) ExtractResume(ctx context.Context, resumeText string) (extraction.ResumeAnalysis, error) {
	raw, err := a.generate(ctx, "resume analysis", resumePrompt, section("resume", resumeText))
	if err != nil {
		return extraction.EmptyResumeAnalysis(), err
	}

	analysis, err := extraction.ParseResumeAnalysis(raw)
	if err != nil {
		a.logger.Warn("resume analysis answer is malformed", zap.Error(err))
	}
	return analysis, nil
}

// Summarize asks the model for strengths, gaps and an overall verdict.
func (a *Analyzer) Summarize(ctx context.Context, jobText, resumeText string) (extraction.Summary, error) {
	message := section("job_description", jobText) + "\n\n" + section("resume", resumeText)
	raw, err := a.generate(ctx, "summary", summaryPrompt, message)
	if err != nil {
		return extraction.FallbackSummary(), err
	}

	summary, err := extraction.ParseSummary(raw)
	if err != nil {
		a.logger.Warn("summary answer is malformed", zap.Error(err))
	}
	return summary, nil
}

func (a *Analyzer) Embed(ctx context.Context, text string) ([]float64, error) {
	return a.generator.Embed(ctx, text)
}

func (a *Analyzer) generate(ctx context.Context, kind, system, message string) (string, error) {
	a.logger.Debug("gemini generate content request",
		zap.String("kind", kind),
		zap.Int("prompt_length", utf8.RuneCountInString(message)),
		zap.String("prompt_preview", utils.TruncateForLog(message, a.maxLogLen)),
	)

	raw, err := a.generator.GenerateContent(ctx, system, message)
	if err != nil {
		return "", fmt.Errorf("%s: %w", kind, err)
	}

	a.logger.Debug("gemini generate content response",
		zap.String("kind", kind),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, a.maxLogLen)),
	)

	return raw, nil
}

// section wraps user supplied text in a tag so the model treats it as data.
// Copies of the tag inside the text are neutralized.
func section(tag, text string) string {
	start, end := "<"+tag+">", "</"+tag+">"
	text = strings.NewReplacer(start, "("+tag+")", end, "(/"+tag+")").Replace(strings.TrimSpace(text))
	return start + "\n" + text + "\n" + end
}
