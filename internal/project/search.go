package project

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// keywordSource implements fuzzy.Source over entry keywords.
type keywordSource struct {
	entries []Entry
	baseDir string
}

func (s keywordSource) String(i int) string {
	return strings.Join(s.entries[i].Keywords(s.baseDir), " ")
}

func (s keywordSource) Len() int { return len(s.entries) }

// Search returns the entries whose keywords fuzzy-match query, best match
// first. An empty query returns all entries in their original order.
func Search(entries []Entry, baseDir, query string) []Entry {
	query = strings.TrimSpace(query)
	if query == "" {
		return entries
	}

	matches := fuzzy.FindFrom(query, keywordSource{entries: entries, baseDir: baseDir})
	found := make([]Entry, 0, len(matches))
	for _, m := range matches {
		found = append(found, entries[m.Index])
	}
	return found
}
