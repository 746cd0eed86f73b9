package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"alfredoptarigan/interview-analyzer/internal/models"
)

// FieldErrors lists every report field that failed validation, by JSON path.
type FieldErrors []string

func (fe FieldErrors) Error() string {
	return strings.Join(fe, "; ")
}

type ReportValidator struct {
	validate *validator.Validate
}

func NewReportValidator() *ReportValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &ReportValidator{validate: validate}
}

// Validate checks raw JSON against the AnalysisReport shape. It returns
// FieldErrors when the shape does not match.
func (v *ReportValidator) Validate(raw []byte) (*models.AnalysisReport, error) {
	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("failed to decode analysis: %w", err)
	}

	// encoding/json matches keys case-insensitively, so presence is checked
	// against the exact json tags first.
	if missing := missingKeys(tree, reportType, ""); len(missing) > 0 {
		return nil, missing
	}

	var report models.AnalysisReport
	if err := json.Unmarshal(raw, &report); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, FieldErrors{describeTypeError(typeErr)}
		}
		return nil, fmt.Errorf("failed to decode analysis: %w", err)
	}

	if err := v.validate.Struct(&report); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return nil, fmt.Errorf("failed to validate analysis: %w", err)
		}

		fields := make(FieldErrors, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			fields = append(fields, describeFieldError(fieldErr))
		}
		return nil, fields
	}

	return &report, nil
}

var reportType = reflect.TypeOf(models.AnalysisReport{})

// missingKeys walks node alongside the struct type t and reports every json
// tag that is not present verbatim as an object key. Nodes of the wrong JSON
// type are left for the typed decode to describe.
func missingKeys(node any, t reflect.Type, prefix string) FieldErrors {
	obj, ok := node.(map[string]any)
	if !ok {
		return nil
	}

	var missing FieldErrors
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}

		path := name
		if prefix != "" {
			path = prefix + "." + name
		}

		child, ok := obj[name]
		if !ok {
			missing = append(missing, path+" is required")
			continue
		}

		ft := field.Type
		for ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Struct {
			missing = append(missing, missingKeys(child, ft, path)...)
		}
	}

	return missing
}

func describeFieldError(fe validator.FieldError) string {
	path := fe.Namespace()
	if i := strings.Index(path, "."); i >= 0 {
		path = path[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", path)
	case "min", "max":
		return fmt.Sprintf("%s must be between 1 and 100", path)
	default:
		return fmt.Sprintf("%s failed %s validation", path, fe.Tag())
	}
}

func describeTypeError(e *json.UnmarshalTypeError) string {
	if e.Field == "" {
		return fmt.Sprintf("analysis must be a JSON object, got %s", e.Value)
	}
	return fmt.Sprintf("%s must be %s, got %s", e.Field, describeType(e.Type), e.Value)
}

func describeType(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct, reflect.Map:
		return "an object"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Int, reflect.Int64, reflect.Int32:
		return "an integer"
	case reflect.String:
		return "a string"
	default:
		return t.Kind().String()
	}
}
