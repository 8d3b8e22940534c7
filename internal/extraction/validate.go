package extraction

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks a struct carrying validate tags, such as a JobAnalysis built
// by hand or a request DTO.
func Validate(v any) error {
	return validate.Struct(v)
}
