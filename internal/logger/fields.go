package logger

import (
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/skill-matcher/internal/scoring"
)

// Structured field keys shared across packages.
const (
	FieldProvider = "ai_provider"
	FieldModel    = "ai_model"
	FieldReportID = "report_id"

	FieldMatchScore      = "match_score"
	FieldSemanticScore   = "semantic_score"
	FieldSkillScore      = "skill_score"
	FieldImportanceScore = "importance_score"
	FieldRequiredScore   = "required_score"
	FieldPreferredScore  = "preferred_score"
	FieldCoverageScore   = "coverage_score"
)

// WithProvider returns log enriched with the AI provider and model. Blank
// values are left out. A nil log yields a no-op logger.
func WithProvider(log *zap.Logger, provider, model string) *zap.Logger {
	if log == nil {
		log = zap.NewNop()
	}

	fields := make([]zap.Field, 0, 2)
	if v := strings.TrimSpace(provider); v != "" {
		fields = append(fields, zap.String(FieldProvider, v))
	}
	if v := strings.TrimSpace(model); v != "" {
		fields = append(fields, zap.String(FieldModel, v))
	}
	if len(fields) == 0 {
		return log
	}
	return log.With(fields...)
}

// ScoreFields renders the outcome of a match as zap fields.
func ScoreFields(reportID string, match scoring.MatchResult, coverage scoring.CoverageResult, importance int) []zap.Field {
	return []zap.Field{
		zap.String(FieldReportID, reportID),
		zap.Int(FieldMatchScore, match.MatchScore),
		zap.Int(FieldSemanticScore, match.SemanticScore),
		zap.Int(FieldSkillScore, match.SkillScore),
		zap.Int(FieldImportanceScore, importance),
		zap.Int(FieldCoverageScore, coverage.FinalScore),
		zap.Int(FieldRequiredScore, coverage.RequiredScore),
		zap.Int(FieldPreferredScore, coverage.PreferredScore),
	}
}
