package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "FLO_CONFIG"

// Project is one declared project.
type Project struct {
	Name string `json:"name"`
	Root string `json:"root"`
}

// Config holds the flo configuration.
type Config struct {
	// Path is the file the config was loaded from (or would be).
	Path string `json:"path"`
	// BaseDir is stripped from directories when they are displayed.
	BaseDir  string    `json:"base_dir,omitempty"`
	Projects []Project `json:"projects"`
}

// InvalidError reports a config file that exists but could not be read,
// parsed or validated.
type InvalidError struct {
	Path string
	Err  error
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("failed to read config file: %v (check the file at %s)", e.Err, e.Path)
}

func (e *InvalidError) Unwrap() error { return e.Err }

// DefaultPath returns the config file location: $FLO_CONFIG, else
// $XDG_CONFIG_HOME/flo/flo.jsonc, else ~/.config/flo/flo.jsonc.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "flo", "flo.jsonc")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "flo", "flo.jsonc")
	}
	return filepath.Join(home, ".config", "flo", "flo.jsonc")
}

// Load reads the config at path.
//
// The returned Config is always usable. A missing or empty file yields no
// projects and a nil error. A file that cannot be read, parsed or
// validated yields no projects and an *InvalidError, which callers show
// to the user as a warning.
func Load(path string) (Config, error) {
	cfg := Config{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, &InvalidError{Path: path, Err: err}
	}
	if strings.TrimSpace(string(data)) == "" {
		return cfg, nil
	}

	doc, err := decode(formatFor(path), data)
	if err != nil {
		return cfg, &InvalidError{Path: path, Err: err}
	}
	if err := doc.validate(); err != nil {
		return cfg, &InvalidError{Path: path, Err: err}
	}

	baseDir, err := expandPath(doc.BaseDir)
	if err != nil {
		return cfg, &InvalidError{Path: path, Err: fmt.Errorf("expand base_dir: %w", err)}
	}
	projects := make([]Project, 0, len(doc.order))
	for _, name := range doc.order {
		root, err := expandPath(*doc.Projects[name].Root)
		if err != nil {
			return cfg, &InvalidError{Path: path, Err: fmt.Errorf("expand projects.%s.root: %w", name, err)}
		}
		projects = append(projects, Project{Name: name, Root: root})
	}

	cfg.BaseDir = baseDir
	cfg.Projects = projects
	return cfg, nil
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, rest), nil
	}
	return path, nil
}
