package extraction

// FallbackOverallFit is shown when no summary could be produced.
const FallbackOverallFit = "summary not available"

// Summary is the short narrative assessment of a match.
type Summary struct {
	Strengths  []string `json:"strengths"`
	Gaps       []string `json:"gaps"`
	OverallFit string   `json:"overallFit"`
}

func FallbackSummary() Summary {
	return Summary{
		Strengths:  []string{},
		Gaps:       []string{},
		OverallFit: FallbackOverallFit,
	}
}

// ParseSummary decodes a model answer into a Summary. Malformed JSON yields
// FallbackSummary; a missing overallFit is left empty.
func ParseSummary(raw string) (Summary, error) {
	obj, err := parseObject(raw)
	if err != nil {
		return FallbackSummary(), err
	}

	shapeErr := CheckShape(SchemaSummary, obj)
	overall, _ := obj["overallFit"].(string)
	return Summary{
		Strengths:  stringList(obj["strengths"]),
		Gaps:       stringList(obj["gaps"]),
		OverallFit: overall,
	}, shapeErr
}
