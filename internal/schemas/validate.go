// Package schemas provides JSON Schema validation for the structured data
// the application reads and produces. Schemas are embedded at compile time.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/urabe-chihiro/resume-ai/internal/types"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Schema names accepted by ValidateBytes.
const (
	SchemaProfile         = "profile"
	SchemaJobRequirements = "job_requirements"
	SchemaResumeRecord    = "resume_record"
)

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself.
type SchemaLoadError struct {
	Schema  string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Schema, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Schema, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func validate(schemaName string, documentLoader gojsonschema.JSONLoader) error {
	data, err := schemaFiles.ReadFile(schemaName + ".schema.json")
	if err != nil {
		return &SchemaLoadError{Schema: schemaName, Message: "unknown schema", Cause: err}
	}

	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(data), documentLoader)
	if err != nil {
		return &SchemaLoadError{Schema: schemaName, Message: "validation failed during load", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}

// ValidateBytes validates raw JSON content against the named schema. Use this
// for user-supplied input files before unmarshalling.
func ValidateBytes(schemaName string, content []byte) error {
	return validate(schemaName, gojsonschema.NewBytesLoader(content))
}

// ValidateRecord validates an assembled resume record against its schema.
// Call Normalize on the record first so empty slices are present.
func ValidateRecord(record *types.ResumeRecord) error {
	return validate(SchemaResumeRecord, gojsonschema.NewGoLoader(record))
}
