// Package filesystem provides filesystem implementations for rebar3.
//
// Every types.FS is backed by afero: the CLI wraps afero.NewOsFs and
// tests wrap an afero.MemMapFs.
package filesystem
