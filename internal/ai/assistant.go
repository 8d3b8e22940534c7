package ai

import (
	"context"

	"github.com/spigell/skill-matcher/internal/extraction"
)

// Extractor turns free text into the structured analyses the scoring engine
// consumes. Implementations degrade to empty analyses instead of failing when
// the model answer cannot be parsed.
type Extractor interface {
	ExtractJob(ctx context.Context, jobText string) (extraction.JobAnalysis, error)
	ExtractResume(ctx context.Context, resumeText string) (extraction.ResumeAnalysis, error)
	Summarize(ctx context.Context, jobText, resumeText string) (extraction.Summary, error)
}

// Embedder produces a vector representation of a text.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Provider is the full AI surface used by the analysis service.
type Provider interface {
	Extractor
	Embedder
	Name() string
	Model() string
}
