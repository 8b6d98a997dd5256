package domain

import "time"

// Issue codes shared across the component adapters. Component-specific
// codes live with the adapter that raises them.
const (
	// CodeMissingID is always a warning: an absent id never blocks a
	// save, it only impairs cross-referencing.
	CodeMissingID = "MISSING_ID"

	// CodeMissingName indicates a component with neither name nor title.
	CodeMissingName = "MISSING_NAME"

	// CodeMalformedXML indicates unbalanced or undecodable XML.
	CodeMalformedXML = "MALFORMED_XML"

	// CodeInvalidJSON indicates content that failed to parse as JSON.
	CodeInvalidJSON = "INVALID_JSON"

	// CodeInvalidCanonical indicates a canonical reference that is not
	// a valid absolute URI.
	CodeInvalidCanonical = "INVALID_CANONICAL"

	// CodeInvalidSource indicates a source descriptor violating the
	// exactly-one-variant invariant.
	CodeInvalidSource = "INVALID_SOURCE"
)

// ValidationIssue is one error or warning found during validation.
type ValidationIssue struct {
	// Code is a stable machine-readable identifier (e.g. "MISSING_ID").
	Code string `json:"code"`

	// Message is the human-readable description.
	Message string `json:"message"`

	// Component optionally names the component the issue belongs to.
	Component string `json:"component,omitempty"`
}

// ValidationResult is the outcome of validating one payload or a whole
// DAK. Invariant: IsValid is true exactly when Errors is empty;
// warnings never affect validity.
type ValidationResult struct {
	IsValid   bool              `json:"isValid"`
	Errors    []ValidationIssue `json:"errors"`
	Warnings  []ValidationIssue `json:"warnings"`
	Timestamp time.Time         `json:"timestamp"`
}

// NewValidationResult returns an empty, valid result stamped with the
// current time.
func NewValidationResult() ValidationResult {
	return ValidationResult{
		IsValid:   true,
		Errors:    []ValidationIssue{},
		Warnings:  []ValidationIssue{},
		Timestamp: time.Now().UTC(),
	}
}

// AddError records an error-level issue and marks the result invalid.
func (r *ValidationResult) AddError(code, message, component string) {
	r.Errors = append(r.Errors, ValidationIssue{Code: code, Message: message, Component: component})
	r.IsValid = false
}

// AddWarning records a warning-level issue. Validity is unchanged.
func (r *ValidationResult) AddWarning(code, message, component string) {
	r.Warnings = append(r.Warnings, ValidationIssue{Code: code, Message: message, Component: component})
}

// Merge folds another result into r, preserving the validity invariant.
func (r *ValidationResult) Merge(other ValidationResult) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	if len(r.Errors) > 0 {
		r.IsValid = false
	}
}
