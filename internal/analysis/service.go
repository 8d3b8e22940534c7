// Package analysis runs a complete match: extraction through the AI provider,
// cleaning, scoring and report assembly.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/skill-matcher/internal/ai"
	"github.com/spigell/skill-matcher/internal/extraction"
	"github.com/spigell/skill-matcher/internal/logger"
	"github.com/spigell/skill-matcher/internal/scoring"
	"github.com/spigell/skill-matcher/internal/similarity"
	"github.com/spigell/skill-matcher/internal/skills"
	"github.com/spigell/skill-matcher/internal/utils"
)

const (
	// MinJobLength is the shortest job description, in characters, worth analyzing.
	MinJobLength = 50
	// MaxEmbeddingRunes bounds the text sent to the embedding model.
	MaxEmbeddingRunes = 8000
)

var (
	ErrEmptyJob    = errors.New("job description is required")
	ErrJobTooShort = fmt.Errorf("job description is too short, at least %d characters are required", MinJobLength)
	ErrEmptyResume = errors.New("resume text is required")
	ErrNoProvider  = errors.New("no AI provider configured")
	ErrEmbedding   = errors.New("embedding failed")
)

// Request is a free-text match request.
type Request struct {
	JobText    string `json:"jobText"`
	ResumeText string `json:"resumeText"`
}

// Validate trims the texts and checks the length limits.
func (r *Request) Validate() error {
	r.JobText = strings.TrimSpace(r.JobText)
	r.ResumeText = strings.TrimSpace(r.ResumeText)

	switch {
	case r.JobText == "":
		return ErrEmptyJob
	case utf8.RuneCountInString(r.JobText) < MinJobLength:
		return ErrJobTooShort
	case r.ResumeText == "":
		return ErrEmptyResume
	}
	return nil
}

// Service scores candidates against job descriptions.
type Service struct {
	provider ai.Provider
	adapter  *extraction.Adapter
	weights  Weights
	logger   *zap.Logger
}

// NewService creates a Service. provider may be nil when only Score is used.
func NewService(provider ai.Provider, adapter *extraction.Adapter, weights Weights, log *zap.Logger) (*Service, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	if adapter == nil {
		adapter = extraction.NewAdapter(nil, log)
	}
	if provider != nil {
		log = logger.WithProvider(log, provider.Name(), provider.Model())
	}

	return &Service{
		provider: provider,
		adapter:  adapter,
		weights:  weights,
		logger:   log,
	}, nil
}

func (s *Service) Weights() Weights { return s.weights }

// Analyze extracts both sides of the match with the AI provider and scores
// them. Extraction and summary failures degrade to empty results; embedding
// failures abort the analysis.
func (s *Service) Analyze(ctx context.Context, req Request) (*Report, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if s.provider == nil {
		return nil, ErrNoProvider
	}

	var (
		job             extraction.JobAnalysis
		resume          extraction.ResumeAnalysis
		summary         extraction.Summary
		jobEmbedding    []float64
		resumeEmbedding []float64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		if job, err = s.provider.ExtractJob(gctx, req.JobText); err != nil {
			s.logger.Warn("job extraction failed, continuing with an empty analysis", zap.Error(err))
			job = extraction.EmptyJobAnalysis()
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if resume, err = s.provider.ExtractResume(gctx, req.ResumeText); err != nil {
			s.logger.Warn("resume extraction failed, continuing with an empty analysis", zap.Error(err))
			resume = extraction.EmptyResumeAnalysis()
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if summary, err = s.provider.Summarize(gctx, req.JobText, req.ResumeText); err != nil {
			s.logger.Warn("summary failed", zap.Error(err))
			summary = extraction.FallbackSummary()
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if jobEmbedding, err = s.provider.Embed(gctx, utils.ClipRunes(req.JobText, MaxEmbeddingRunes)); err != nil {
			return fmt.Errorf("%w: job description: %w", ErrEmbedding, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if resumeEmbedding, err = s.provider.Embed(gctx, utils.ClipRunes(req.ResumeText, MaxEmbeddingRunes)); err != nil {
			return fmt.Errorf("%w: resume: %w", ErrEmbedding, err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Debug("extraction finished",
		zap.Int("required", len(job.RequiredSkills)),
		zap.Int("preferred", len(job.PreferredSkills)),
		zap.Int("required_groups", len(job.RequiredGroups)),
		zap.Int("preferred_groups", len(job.PreferredGroups)),
		zap.String("level", string(job.Level)),
		zap.Int("resume_skills", len(resume.Labels())),
	)

	return s.Score(extraction.ScoreInput{
		Job:             job,
		ResumeSkills:    resume.Labels(),
		JobEmbedding:    jobEmbedding,
		ResumeEmbedding: resumeEmbedding,
		Summary:         &summary,
	})
}

// Score scores an already extracted match without calling the provider.
// Missing embeddings count as a neutral semantic score of 50.
func (s *Service) Score(input extraction.ScoreInput) (*Report, error) {
	sim, err := similarity.Cosine(input.JobEmbedding, input.ResumeEmbedding)
	if err != nil {
		return nil, fmt.Errorf("semantic similarity: %w", err)
	}
	semantic := similarity.ToPercent(sim)

	req := s.adapter.Requirements(input.Job)

	weighted := scoring.MergeWeighted(input.WeightedSkills)
	if len(weighted) == 0 {
		weighted = s.adapter.Weighted(input.Job)
	}

	resumeSkills := s.adapter.CleanCandidate(input.ResumeSkills)
	keys := s.adapter.Builder().CandidateKeys(resumeSkills)

	coverage := scoring.WeightedCoverage(req, keys, s.weights.RequiredWeight)
	importance := scoring.ImportanceWeighted(weighted, keys)
	skill := scoring.SkillScore(coverage.FinalScore, importance, s.weights.ImportanceShare)
	match := scoring.Match(semantic, skill, s.weights.SemanticWeight)

	report := &Report{
		ID:              uuid.NewString(),
		SemanticScore:   match.SemanticScore,
		SkillScore:      match.SkillScore,
		ImportanceScore: importance,
		MatchScore:      match.MatchScore,
		ScoreBreakdown:  coverage,
		MissingSkills: MissingSkills{
			Required:  scoring.Missing(req.RequiredItems, keys),
			Preferred: scoring.Missing(req.PreferredItems, keys),
		},
		UnsatisfiedGroups: UnsatisfiedGroups{
			Required:  scoring.UnsatisfiedGroups(req.RequiredGroups, keys),
			Preferred: scoring.UnsatisfiedGroups(req.PreferredGroups, keys),
		},
		JobRequired:        labels(req.RequiredItems),
		JobPreferred:       labels(req.PreferredItems),
		JobRequiredGroups:  groupViews(req.RequiredGroups),
		JobPreferredGroups: groupViews(req.PreferredGroups),
		WeightedSkills:     nonNil(weighted),
		Level:              input.Job.Level,
		ResumeSkills:       resumeSkills,
		AISummary:          input.Summary,
		Weights:            s.weights,
	}
	if report.Level == "" {
		report.Level = extraction.LevelUnknown
	}

	s.logger.Info("match scored", logger.ScoreFields(report.ID, match, coverage, importance)...)

	return report, nil
}

func nonNil(list []skills.WeightedSkill) []skills.WeightedSkill {
	if list == nil {
		return []skills.WeightedSkill{}
	}
	return list
}
