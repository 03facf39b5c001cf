package config

import (
	_ "embed"
	"errors"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	rerrors "github.com/namjae/rebar3/pkg/errors"
	"github.com/namjae/rebar3/pkg/filesystem"
	"github.com/namjae/rebar3/pkg/logging"
	"github.com/namjae/rebar3/pkg/types"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Environment variables read by Load
const (
	EnvBaseDir = "REBAR_BASE_DIR"
	EnvProfile = "REBAR_PROFILE"
)

// ProjectFiles are the project config file names, in lookup order
var ProjectFiles = []string{"rebar.toml", "rebar.yaml", "rebar.yml"}

// Config is a project's build configuration
type Config struct {
	BaseDir        string             `koanf:"base_dir"`
	ProjectAppDirs []string           `koanf:"project_app_dirs"`
	Deps           []types.Dep        `koanf:"deps"`
	Profiles       map[string]Profile `koanf:"profiles"`
	// Profile lists extra profiles to activate on top of default
	Profile []string `koanf:"profile"`

	// Source is the project file the config was read from, if any
	Source string `koanf:"-"`
}

// Profile holds per-profile settings
type Profile struct {
	Deps []types.Dep `koanf:"deps"`
}

// DepsFor returns the dependencies declared under profile. Top-level
// deps belong to the default profile.
func (c *Config) DepsFor(profile string) []types.Dep {
	var deps []types.Dep
	if profile == types.DefaultProfile {
		deps = append(deps, c.Deps...)
	}
	return append(deps, c.Profiles[profile].Deps...)
}

// LoadOptions controls Load
type LoadOptions struct {
	// Root is the project root directory
	Root string
	// FS is used to find and read the project file
	FS types.FS
	// Overrides are applied last, keyed like the project file
	Overrides map[string]interface{}
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load reads the layered configuration for the project at opts.Root
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, &TOMLParser{}); err != nil {
		return nil, rerrors.Wrap(err, rerrors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Project file
	source := findProjectFile(opts.FS, opts.Root)
	if source != "" {
		data, err := opts.FS.ReadFile(source)
		if err != nil {
			return nil, rerrors.Wrapf(err, rerrors.ErrConfigLoad, "failed to read %s", source)
		}
		if err := k.Load(&rawBytesProvider{bytes: data}, parserFor(source)); err != nil {
			return nil, rerrors.Wrapf(err, rerrors.ErrConfigParse, "failed to parse %s", source)
		}
		logger.Debug().Str("path", source).Msg("Loaded project config")
	}

	// 3. Environment
	if err := k.Load(env.ProviderWithValue("REBAR_", ".", envKeyValue), nil); err != nil {
		return nil, rerrors.Wrap(err, rerrors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, rerrors.Wrap(err, rerrors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				depHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, rerrors.Wrap(err, rerrors.ErrConfigParse, "failed to decode configuration")
	}
	cfg.Source = source

	return &cfg, nil
}

// envKeyValue maps the supported REBAR_ variables to config keys.
// Other variables and empty values are dropped.
func envKeyValue(key, value string) (string, interface{}) {
	if value == "" {
		return "", nil
	}
	switch key {
	case EnvBaseDir:
		return "base_dir", value
	case EnvProfile:
		return "profile", value
	}
	return "", nil
}

func findProjectFile(fsys types.FS, root string) string {
	for _, name := range ProjectFiles {
		path := filepath.Join(root, name)
		if filesystem.IsFile(fsys, path) {
			return path
		}
	}
	return ""
}

func parserFor(path string) koanf.Parser {
	if strings.HasSuffix(path, ".toml") {
		return &TOMLParser{}
	}
	return yaml.Parser()
}
