package project

import (
	"path/filepath"
	"strings"
)

// Title is the project name with "_" and "-" shown as spaces.
func (e Entry) Title() string {
	return strings.NewReplacer("_", " ", "-", " ").Replace(e.DisplayName)
}

// RelDir returns the entry's directory with baseDir stripped.
// Directories outside baseDir are returned unchanged.
func (e Entry) RelDir(baseDir string) string {
	if baseDir == "" {
		return e.Directory
	}
	prefix := strings.TrimSuffix(baseDir, string(filepath.Separator)) + string(filepath.Separator)
	if rel, ok := strings.CutPrefix(e.Directory, prefix); ok {
		return rel
	}
	return e.Directory
}

// Subtitle renders "<branch>   dir" with dir relative to baseDir.
func (e Entry) Subtitle(baseDir string) string {
	return "<" + e.Branch + ">   " + e.RelDir(baseDir)
}

// Keywords are the search terms for the entry: branch, project name and
// each segment of its directory relative to baseDir.
func (e Entry) Keywords(baseDir string) []string {
	keywords := []string{e.Branch, e.DisplayName}
	for _, seg := range strings.Split(e.RelDir(baseDir), string(filepath.Separator)) {
		if seg != "" {
			keywords = append(keywords, seg)
		}
	}
	return keywords
}
