package object

// AttrSpec describes an operation available on a class.
// This provides metadata for introspection, documentation, and tooling.
type AttrSpec struct {
	// Name is the operation name (e.g., "repr", "has_prefix").
	Name string

	// Doc is a short description of what the operation does.
	Doc string

	// Args lists required parameter names (e.g., ["other"]).
	Args []string

	// OptionalArgs lists parameters that may be omitted, after Args.
	OptionalArgs []string

	// Returns describes the return type (e.g., "bool", "bytes").
	Returns string
}

// TypeSpec describes a registered class.
type TypeSpec struct {
	// Name is the type name (e.g., "bytes").
	Name string

	// Doc is a description of the type.
	Doc string

	// Constructor describes the class-side constructor, if any.
	Constructor *AttrSpec

	// Attrs lists the operations available on this type.
	Attrs []AttrSpec
}

// AttrNames returns just the attribute names from a slice of AttrSpec.
func AttrNames(attrs []AttrSpec) []string {
	names := make([]string, len(attrs))
	for i, attr := range attrs {
		names[i] = attr.Name
	}
	return names
}
