package types

// DefaultProfile is always the first active profile
const DefaultProfile = "default"

// DepNameKind tags the representation a dependency name was declared in
type DepNameKind int

const (
	// DepAtom is a bare identifier such as `cowboy`
	DepAtom DepNameKind = iota
	// DepString is a quoted string name, e.g. from a table's name field
	DepString
	// DepBinary is a raw byte-string name, as found in lock data
	DepBinary
)

func (k DepNameKind) String() string {
	switch k {
	case DepAtom:
		return "atom"
	case DepString:
		return "string"
	case DepBinary:
		return "binary"
	}
	return "unknown"
}

// DepName is a dependency name in one of its declared representations.
// All representations of the same name normalize to the same String().
type DepName struct {
	Kind  DepNameKind
	Value string
	Bytes []byte
}

// AtomName returns a DepName declared as a bare identifier
func AtomName(name string) DepName {
	return DepName{Kind: DepAtom, Value: name}
}

// StringName returns a DepName declared as a string
func StringName(name string) DepName {
	return DepName{Kind: DepString, Value: name}
}

// BinaryName returns a DepName declared as a byte string
func BinaryName(name []byte) DepName {
	return DepName{Kind: DepBinary, Bytes: name}
}

// String normalizes the name to its canonical string form
func (n DepName) String() string {
	if n.Kind == DepBinary {
		return string(n.Bytes)
	}
	return n.Value
}

// Dep is a declared dependency. Spec is opaque to the path command.
type Dep struct {
	Name DepName
	Spec string
}

// BuildState is the read-only view of a project that path resolution needs
type BuildState interface {
	// BaseDir is the build directory of the current profile set
	BaseDir() string
	// ProjectApps lists the project's own applications in discovery order
	ProjectApps() []string
	// CurrentProfiles lists the active profiles, default first
	CurrentProfiles() []string
	// DepsForProfile lists the dependencies declared under a profile
	DepsForProfile(profile string) ([]Dep, error)
}
