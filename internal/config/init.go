package config

import (
	"errors"
	"os"
	"path/filepath"
)

const defaultJSONC = `// flo configuration
//
// Each project is shown once per git worktree. "root" is the main
// checkout of the repository; it must be absolute or start with ~.
{
  // Optional: prefix hidden when directories are displayed.
  // "base_dir": "~/coding",

  "projects": {
    // "flo": { "root": "~/coding/flo" },
    // "dotfiles": { "root": "~/.dotfiles" },
  },
}
`

const defaultTOML = `# flo configuration
#
# Each project is shown once per git worktree. "root" is the main
# checkout of the repository; it must be absolute or start with ~.

# Optional: prefix hidden when directories are displayed.
# base_dir = "~/coding"

[projects]
# flo = { root = "~/coding/flo" }
# dotfiles = { root = "~/.dotfiles" }
`

const defaultYAML = `# flo configuration
#
# Each project is shown once per git worktree. "root" is the main
# checkout of the repository; it must be absolute or start with ~.

# Optional: prefix hidden when directories are displayed.
# base_dir: ~/coding

projects: {}
#  flo:
#    root: ~/coding/flo
#  dotfiles:
#    root: ~/.dotfiles
`

// Template returns the commented default config for the format of path.
func Template(path string) string {
	switch formatFor(path) {
	case FormatTOML:
		return defaultTOML
	case FormatYAML:
		return defaultYAML
	default:
		return defaultJSONC
	}
}

// Init writes the default config to path.
// If force is true, overwrites an existing file.
func Init(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(Template(path)), 0644)
}
