package driven

import "github.com/dakforge/dakforge/internal/core/domain"

// ComponentAdapter supplies the format-specific behaviour for one DAK
// component kind. The generic collection orchestrator owns retrieval
// and save; the adapter owns path convention, encoding, decoding and
// validation.
//
// Serialize and Parse never fail on missing optional fields: they
// substitute empty defaults and leave structural problems to Validate,
// which reports them as a non-throwing ValidationResult. Parse returns
// an error only for content it cannot decode at all (e.g. invalid
// JSON); batch callers convert that into a validation issue rather
// than aborting.
type ComponentAdapter[T domain.Payload] interface {
	// ComponentType identifies the kind this adapter serves.
	ComponentType() domain.ComponentType

	// Directory returns the component's directory under the DAK root,
	// e.g. "input/process". Used for discovery listings.
	Directory() string

	// Owns reports whether a discovered storage path follows this
	// component's naming convention.
	Owns(path string) bool

	// FilePath returns the storage path for a payload following the
	// component's path convention, e.g. "input/process/Proc_1.bpmn".
	FilePath(payload T) string

	// Serialize encodes a payload to its file representation.
	Serialize(payload T) (string, error)

	// Parse decodes file content into a payload. path is the storage
	// path the content came from; adapters may derive a fallback id
	// from it.
	Parse(path, content string) (T, error)

	// Validate applies the component-specific rules and returns a
	// complete report. It never panics and never returns an error:
	// structural problems are issues in the result.
	Validate(payload T) domain.ValidationResult
}
