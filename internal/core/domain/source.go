package domain

// Payload is implemented by every component payload type.
// It exposes the optional component id used for cross-referencing.
type Payload interface {
	// ComponentID returns the component's id, or "" when absent.
	ComponentID() string
}

// SourceKind classifies which variant of a Source is populated.
type SourceKind int

const (
	// SourceInvalid marks a descriptor with zero or multiple variants set.
	SourceInvalid SourceKind = iota

	// SourceFile points to a file path relative to the DAK's input/ root.
	SourceFile

	// SourceInline embeds the payload directly in the DAK aggregate.
	SourceInline

	// SourceCanonical references a component published in another DAK.
	// Canonical sources are read-only and never resolved to local storage.
	SourceCanonical
)

// String returns a short name for the source kind.
func (k SourceKind) String() string {
	switch k {
	case SourceFile:
		return "file"
	case SourceInline:
		return "inline"
	case SourceCanonical:
		return "canonical"
	default:
		return "invalid"
	}
}

// Source describes where one component instance's content lives.
// It is a tagged union: exactly one of RelativeURL, Instance or
// Canonical is populated per descriptor.
type Source[T Payload] struct {
	// RelativeURL is a path relative to the DAK's input/ root.
	RelativeURL string `json:"relativeUrl,omitempty"`

	// Instance is content embedded directly in the DAK metadata.
	Instance *T `json:"instance,omitempty"`

	// Canonical is a fully-qualified external reference to a component
	// adopted from another published DAK.
	Canonical string `json:"canonical,omitempty"`
}

// FileSource creates a descriptor pointing at a path relative to input/.
func FileSource[T Payload](path string) Source[T] {
	return Source[T]{RelativeURL: path}
}

// InlineSource creates a descriptor embedding the payload itself.
func InlineSource[T Payload](payload T) Source[T] {
	return Source[T]{Instance: &payload}
}

// CanonicalSource creates a read-only external reference descriptor.
func CanonicalSource[T Payload](url string) Source[T] {
	return Source[T]{Canonical: url}
}

// Kind classifies the descriptor. SourceInvalid is returned when the
// exactly-one-variant invariant does not hold.
func (s Source[T]) Kind() SourceKind {
	populated := 0
	kind := SourceInvalid
	if s.RelativeURL != "" {
		populated++
		kind = SourceFile
	}
	if s.Instance != nil {
		populated++
		kind = SourceInline
	}
	if s.Canonical != "" {
		populated++
		kind = SourceCanonical
	}
	if populated != 1 {
		return SourceInvalid
	}
	return kind
}

// Validate enforces the exactly-one-variant invariant.
func (s Source[T]) Validate() error {
	if s.Kind() == SourceInvalid {
		return ErrInvalidSource
	}
	return nil
}
