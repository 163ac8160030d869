// Package validate checks raw model replies against the declared output
// schemas before anything downstream touches them. Each use case is one
// embedded JSON Schema; adding a required field is a data change.
package validate

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"resume-builder-backend/internal/types"
)

var (
	//go:embed schemas/evaluation_v1.json
	evaluationSchema string
	//go:embed schemas/generation_v1.json
	generationSchema string
)

// ErrMalformedResponse indicates the model reply was not parseable JSON.
var ErrMalformedResponse = errors.New("malformed ai response")

// SchemaViolationError names the first path where the reply broke the schema.
type SchemaViolationError struct {
	Path    string
	Message string
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("schema violation at %s: %s", e.Path, e.Message)
}

// Evaluation validates and decodes an evaluation reply.
func Evaluation(raw json.RawMessage) (types.EvaluationResult, error) {
	if err := check(evaluationSchema, raw); err != nil {
		return types.EvaluationResult{}, err
	}
	var result types.EvaluationResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return types.EvaluationResult{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return result, nil
}

// GeneratedResume validates and decodes a generation reply.
func GeneratedResume(raw json.RawMessage) (types.GeneratedResumeResult, error) {
	if err := check(generationSchema, raw); err != nil {
		return types.GeneratedResumeResult{}, err
	}
	var result types.GeneratedResumeResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return types.GeneratedResumeResult{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return result, nil
}

func check(schema string, raw json.RawMessage) error {
	if !json.Valid(raw) {
		return ErrMalformedResponse
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if result.Valid() {
		return nil
	}

	first := result.Errors()[0]
	path := first.Field()
	if path == "(root)" {
		if prop, ok := first.Details()["property"].(string); ok {
			path = prop
		}
	}
	return &SchemaViolationError{
		Path:    strings.TrimSpace(path),
		Message: first.Description(),
	}
}
