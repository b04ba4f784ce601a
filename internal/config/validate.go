package config

import (
	"errors"
	"fmt"
	"path/filepath"
)

// validate checks the decoded document against the config schema: a
// "projects" mapping from non-empty names to objects with a "root" string.
// All problems are reported together. Root values themselves are checked
// per project at resolve time so one bad root cannot hide the others.
func (d document) validate() error {
	var errs []error

	if err := ValidatePath(d.BaseDir, "base_dir"); err != nil {
		errs = append(errs, err)
	}

	if d.Projects == nil {
		errs = append(errs, errors.New(`"projects" is required`))
		return errors.Join(errs...)
	}

	for _, name := range d.order {
		p := d.Projects[name]
		field := fmt.Sprintf("projects.%s.root", name)
		switch {
		case name == "":
			errs = append(errs, errors.New("project names must not be empty"))
		case p.Root == nil:
			errs = append(errs, fmt.Errorf("%s is required", field))
		}
	}
	return errors.Join(errs...)
}

// ValidatePath checks that path is absolute or starts with ~.
// An empty path is allowed and means "not configured".
func ValidatePath(path, fieldName string) error {
	if path == "" || path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}
