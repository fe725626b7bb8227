// internal/common/validation/profile.go
package validation

import (
	"encoding/json"
	"fmt"

	"evea-matching/internal/models"

	"github.com/xeipuuv/gojsonschema"
)

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// profileSchema is the JSON schema every vendor expertise profile must
// satisfy before it is allowed into scoring. Profiles are self-reported
// through onboarding, so a structurally broken document is expected
// occasionally and must be skippable per candidate.
const profileSchema = `{
	"type": "object",
	"required": ["vendorId", "primaryEventTypes", "budgetExpertise", "serviceAreas", "algorithmWeights"],
	"properties": {
		"vendorId": {"type": "string", "minLength": 1},
		"primaryEventTypes": {
			"type": "array",
			"minItems": 1,
			"items": {"type": "string"}
		},
		"eventSizeExpertise": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"min": {"type": "number", "minimum": 0},
					"max": {"type": "number", "minimum": 0},
					"isExpert": {"type": "boolean"}
				}
			}
		},
		"budgetExpertise": {
			"type": "array",
			"minItems": 4,
			"maxItems": 4,
			"items": {
				"type": "object",
				"required": ["min", "max"],
				"properties": {
					"min": {"type": "number", "minimum": 0},
					"max": {"type": "number", "minimum": 0},
					"isExpert": {"type": "boolean"}
				}
			}
		},
		"serviceAreas": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["city"],
				"properties": {
					"city": {"type": "string", "minLength": 1},
					"radiusKm": {"type": "number", "minimum": 0}
				}
			}
		},
		"aestheticStyles": {
			"type": "array",
			"items": {"type": "string"}
		},
		"yearsOfExperience": {"type": "number", "minimum": 0},
		"algorithmWeights": {
			"type": "object",
			"properties": {
				"priceWeight": {"type": "number", "minimum": 0},
				"locationWeight": {"type": "number", "minimum": 0},
				"ratingWeight": {"type": "number", "minimum": 0},
				"availabilityWeight": {"type": "number", "minimum": 0},
				"experienceWeight": {"type": "number", "minimum": 0},
				"styleWeight": {"type": "number", "minimum": 0}
			}
		}
	}
}`

var schemaLoader = gojsonschema.NewStringLoader(profileSchema)

// ValidateProfile checks one vendor expertise profile against the
// profile schema and returns every violation, not just the first.
func ValidateProfile(profile *models.VendorExpertiseProfile) (*ValidationResult, error) {
	raw, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("marshal profile: %w", err)
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	if result.Valid() {
		return &ValidationResult{Valid: true}, nil
	}

	errs := make([]ValidationError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		errs = append(errs, ValidationError{
			Field:   desc.Field(),
			Message: desc.Description(),
			Code:    desc.Type(),
		})
	}
	return &ValidationResult{Valid: false, Errors: errs}, nil
}

// Describe flattens a validation result into a single detail string for
// logging and error metadata.
func (r *ValidationResult) Describe() string {
	if r.Valid {
		return ""
	}
	out := ""
	for i, e := range r.Errors {
		if i > 0 {
			out += "; "
		}
		out += fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return out
}
