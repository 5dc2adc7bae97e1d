// Package util provides small path-resolution helpers shared across the
// router.
//
//nolint:revive // var-naming - package name is meaningful
package util

import (
	"os"
	"path/filepath"
)

// HomeDir returns the user's home directory, or the empty string if it
// cannot be determined.
func HomeDir() string {
	home, _ := os.UserHomeDir()
	return home
}

// DefaultSkillsRoot returns the default location skill documentation is
// read from: ~/.claude/skills. A deployment overrides this via
// config.Config.SkillsRoot / SKILLROUTER_SKILLS_ROOT.
func DefaultSkillsRoot() string {
	return filepath.Join(HomeDir(), ".claude", "skills")
}

// DefaultConfigPath returns the optional user config file path:
// ~/.skillrouter.yaml.
func DefaultConfigPath() string {
	return filepath.Join(HomeDir(), ".skillrouter.yaml")
}
