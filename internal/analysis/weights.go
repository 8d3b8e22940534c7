package analysis

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/spigell/skill-matcher/internal/scoring"
)

// Weights tune how the partial scores are combined. Every weight is in [0, 1].
type Weights struct {
	// RequiredWeight is the share of required coverage in the coverage score.
	RequiredWeight float64 `mapstructure:"required-weight" json:"requiredWeight" validate:"gte=0,lte=1"`
	// SemanticWeight is the share of the semantic score in the match score.
	SemanticWeight float64 `mapstructure:"semantic-weight" json:"semanticWeight" validate:"gte=0,lte=1"`
	// ImportanceShare is the share of the importance-weighted score in the skill score.
	ImportanceShare float64 `mapstructure:"importance-share" json:"importanceShare" validate:"gte=0,lte=1"`
}

func DefaultWeights() Weights {
	return Weights{
		RequiredWeight:  scoring.DefaultRequiredWeight,
		SemanticWeight:  scoring.DefaultSemanticWeight,
		ImportanceShare: scoring.DefaultImportanceShare,
	}
}

var validate = validator.New()

func (w Weights) Validate() error {
	if err := validate.Struct(w); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return fmt.Errorf("invalid weight %s: must be between 0 and 1", errs[0].Field())
		}
		return fmt.Errorf("invalid weights: %w", err)
	}
	return nil
}
