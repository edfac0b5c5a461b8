package validation

import (
	"fmt"
	"strings"

	apperrors "cravio-admin/internal/common/errors"

	"github.com/xeipuuv/gojsonschema"
)

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateInput checks a decoded payload against a JSON-schema map.
func ValidateInput(input map[string]interface{}, schema map[string]interface{}) (*ValidationResult, error) {
	schemaLoader := gojsonschema.NewGoLoader(schema)
	documentLoader := gojsonschema.NewGoLoader(input)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}

	out := &ValidationResult{Valid: result.Valid()}
	for _, e := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   e.Field(),
			Message: e.Description(),
		})
	}
	return out, nil
}

// Check runs ValidateInput and folds failures into a VALIDATION_FAILED error.
func Check(input map[string]interface{}, schema map[string]interface{}) error {
	result, err := ValidateInput(input, schema)
	if err != nil {
		return apperrors.NewValidationFailedError(err.Error())
	}
	if result.Valid {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return apperrors.NewValidationFailedError(strings.Join(msgs, "; "))
}
