package types

// PathCategory is one of the directory kinds the path command can report
type PathCategory string

const (
	CategoryBase PathCategory = "base"
	CategoryBin  PathCategory = "bin"
	CategoryEbin PathCategory = "ebin"
	CategoryLib  PathCategory = "lib"
	CategoryPriv PathCategory = "priv"
	CategorySrc  PathCategory = "src"
	CategoryRel  PathCategory = "rel"
)

// AllCategories lists every category in the order flags are registered
var AllCategories = []PathCategory{
	CategoryBase,
	CategoryBin,
	CategoryEbin,
	CategoryLib,
	CategoryPriv,
	CategorySrc,
	CategoryRel,
}

// PerApp reports whether the category expands once per resolved app
func (c PathCategory) PerApp() bool {
	switch c {
	case CategoryEbin, CategoryPriv, CategorySrc:
		return true
	}
	return false
}

func (c PathCategory) String() string {
	return string(c)
}

// PathOptions is the parsed option set of one path command invocation.
type PathOptions struct {
	// Categories in the order they were given. Repeats are kept.
	Categories []PathCategory

	// Separator is nil when no separator was given.
	Separator *string

	// Apps holds one raw value per --app occurrence, not yet comma split.
	Apps []string
}
