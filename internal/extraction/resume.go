package extraction

// ResumeAnalysis holds the candidate skill labels found in a resume. Tools and
// concepts are optional finer-grained lists some prompts ask for.
type ResumeAnalysis struct {
	Skills   []string `json:"skills"`
	Tools    []string `json:"tools,omitempty"`
	Concepts []string `json:"concepts,omitempty"`
}

// Labels returns skills, tools and concepts in that order. Duplicates are left
// to the candidate cleaning chain.
func (r ResumeAnalysis) Labels() []string {
	out := make([]string, 0, len(r.Skills)+len(r.Tools)+len(r.Concepts))
	out = append(out, r.Skills...)
	out = append(out, r.Tools...)
	out = append(out, r.Concepts...)
	return out
}

// EmptyResumeAnalysis is the analysis used when extraction fails.
func EmptyResumeAnalysis() ResumeAnalysis {
	return ResumeAnalysis{Skills: []string{}}
}

// ParseResumeAnalysis decodes a model answer into a ResumeAnalysis. Like
// ParseJobAnalysis it always returns a usable value.
func ParseResumeAnalysis(raw string) (ResumeAnalysis, error) {
	obj, err := parseObject(raw)
	if err != nil {
		return EmptyResumeAnalysis(), err
	}

	shapeErr := CheckShape(SchemaResumeAnalysis, obj)
	return ResumeAnalysis{
		Skills:   stringList(obj["skills"]),
		Tools:    stringList(obj["tools"]),
		Concepts: stringList(obj["concepts"]),
	}, shapeErr
}
