// Package paths implements the path command: it projects a build state
// onto the filesystem paths of the requested categories.
//
// Resolution is a single pass with four stages:
//
//   - Normalize turns the option set into a category list (default
//     [ebin]) and a separator (default a single space).
//   - ResolveApps picks the apps in scope: the explicit --app values
//     when given, otherwise the project apps followed by the sorted,
//     deduplicated dependency names of every active profile.
//   - Expand maps each category to paths under the profile base dir.
//   - Print keeps only existing directories and writes them joined by
//     the separator, with no trailing newline.
//
// Only Print performs I/O. Run wires the stages together.
package paths
