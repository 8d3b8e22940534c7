package extraction

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

// Schema names of the payloads accepted at the boundary.
const (
	SchemaJobAnalysis    = "job_analysis"
	SchemaResumeAnalysis = "resume_analysis"
	SchemaWeightedSkills = "weighted_skills"
	SchemaSummary        = "summary"
	SchemaScoreInput     = "score_input"
)

var schemas = mustLoadSchemas(
	SchemaJobAnalysis,
	SchemaResumeAnalysis,
	SchemaWeightedSkills,
	SchemaSummary,
	SchemaScoreInput,
)

// FieldError represents a single violation at a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ShapeError reports a payload that does not have the expected shape.
// Parsers still return a best-effort value alongside it.
type ShapeError struct {
	Schema string
	Errors []FieldError
}

func (e *ShapeError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s payload has unexpected shape", e.Schema)
	for i, fe := range e.Errors {
		if i == 0 {
			sb.WriteString(": ")
		} else {
			sb.WriteString("; ")
		}
		fmt.Fprintf(&sb, "%s: %s", fe.Field, fe.Message)
	}
	return sb.String()
}

func mustLoadSchemas(names ...string) map[string]*gojsonschema.Schema {
	loaded := make(map[string]*gojsonschema.Schema, len(names))
	for _, name := range names {
		data, err := schemaFiles.ReadFile("schemas/" + name + ".json")
		if err != nil {
			panic(fmt.Sprintf("read schema %s: %v", name, err))
		}
		schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
		if err != nil {
			panic(fmt.Sprintf("compile schema %s: %v", name, err))
		}
		loaded[name] = schema
	}
	return loaded
}

// CheckShape validates a decoded JSON document against the named schema.
func CheckShape(name string, doc any) error {
	schema, ok := schemas[name]
	if !ok {
		return fmt.Errorf("unknown schema %q", name)
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("validate %s payload: %w", name, err)
	}
	if result.Valid() {
		return nil
	}

	shapeErr := &ShapeError{
		Schema: name,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		shapeErr.Errors = append(shapeErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return shapeErr
}
