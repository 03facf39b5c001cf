// Package state builds the read-only project state the path command
// resolves against: active profiles, the profile build directory, the
// project's own apps and the dependencies declared per profile.
package state

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/namjae/rebar3/pkg/config"
	"github.com/namjae/rebar3/pkg/logging"
	"github.com/namjae/rebar3/pkg/types"
)

// Project is a loaded project. It implements types.BuildState.
type Project struct {
	root     string
	baseDir  string
	profiles []string
	apps     []string
	cfg      *config.Config
}

var _ types.BuildState = (*Project)(nil)

// Load builds the state of the project rooted at root
func Load(root string, fsys types.FS, cfg *config.Config) (*Project, error) {
	logger := logging.GetLogger("state")

	profiles := ActiveProfiles(cfg.Profile)

	apps, err := DiscoverApps(fsys, root, cfg.ProjectAppDirs)
	if err != nil {
		return nil, err
	}

	p := &Project{
		root:     root,
		baseDir:  BaseDir(root, cfg.BaseDir, profiles),
		profiles: profiles,
		apps:     apps,
		cfg:      cfg,
	}

	logger.Debug().
		Str("root", root).
		Str("baseDir", p.baseDir).
		Strs("profiles", profiles).
		Strs("apps", apps).
		Msg("Project state loaded")

	return p, nil
}

func (p *Project) Root() string              { return p.root }
func (p *Project) BaseDir() string           { return p.baseDir }
func (p *Project) ProjectApps() []string     { return p.apps }
func (p *Project) CurrentProfiles() []string { return p.profiles }

func (p *Project) DepsForProfile(profile string) ([]types.Dep, error) {
	return p.cfg.DepsFor(profile), nil
}

// ActiveProfiles returns default followed by the requested profiles,
// keeping first occurrences only. Empty names are skipped.
func ActiveProfiles(requested []string) []string {
	profiles := []string{types.DefaultProfile}
	for _, name := range requested {
		name = strings.TrimSpace(name)
		if name == "" || slices.Contains(profiles, name) {
			continue
		}
		profiles = append(profiles, name)
	}
	return profiles
}

// ProfileDir names the build directory of a profile set: "default" when
// only default is active, otherwise the other profiles joined with "+".
func ProfileDir(profiles []string) string {
	var named []string
	for _, p := range profiles {
		if p != types.DefaultProfile {
			named = append(named, p)
		}
	}
	if len(named) == 0 {
		return types.DefaultProfile
	}
	return strings.Join(named, "+")
}

// BaseDir returns the build directory for profiles. A relative baseDir is
// taken relative to root.
func BaseDir(root, baseDir string, profiles []string) string {
	if !filepath.IsAbs(baseDir) {
		baseDir = filepath.Join(root, baseDir)
	}
	return filepath.Join(baseDir, ProfileDir(profiles))
}
