// Package config loads a project's build configuration.
//
// Configuration is layered with koanf, later layers overriding earlier
// ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the project file: rebar.toml, rebar.yaml or rebar.yml, the first
//     one found in the project root
//  3. environment: REBAR_BASE_DIR and REBAR_PROFILE
//  4. explicit overrides, usually command-line flags
//
// A project file looks like:
//
//	base_dir = "_build"
//	deps = ["cowboy", { name = "jsx", version = "3.1.0" }]
//
//	[profiles.test]
//	deps = [["meck", "0.9.2"]]
//
// Dependencies may be written as a bare name, a table with a name key,
// or a list whose first element is the name. See decodeDep.
package config
