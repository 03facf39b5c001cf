package types

import "io/fs"

// FS is the read-only filesystem surface rebar3 needs
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	// Glob returns the names matching pattern, sorted, as filepath.Glob does
	Glob(pattern string) ([]string, error)
}
