package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// Supported config file formats, chosen by file extension.
const (
	FormatJSONC = "jsonc"
	FormatTOML  = "toml"
	FormatYAML  = "yaml"
)

// rawProject is a project entry before validation. Root is a pointer so a
// missing key can be told apart from an empty one.
type rawProject struct {
	Root *string `json:"root" toml:"root" yaml:"root"`
}

// document is a decoded config file before validation. order holds the
// project names in the order they appear in the file.
type document struct {
	BaseDir  string
	Projects map[string]rawProject
	order    []string
}

// formatFor picks the decoder for path. Unknown extensions are read as JSONC.
func formatFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSONC
	}
}

func decode(format string, data []byte) (document, error) {
	switch format {
	case FormatTOML:
		return decodeTOML(data)
	case FormatYAML:
		return decodeYAML(data)
	default:
		return decodeJSONC(data)
	}
}

// decodeJSONC accepts JSON with comments and trailing commas.
func decodeJSONC(data []byte) (document, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return document{}, fmt.Errorf("parse: %w", err)
	}

	var top struct {
		BaseDir  string          `json:"base_dir"`
		Projects json.RawMessage `json:"projects"`
	}
	if err := json.Unmarshal(std, &top); err != nil {
		return document{}, fmt.Errorf("parse: %w", err)
	}

	doc := document{BaseDir: top.BaseDir}
	if len(top.Projects) == 0 || string(top.Projects) == "null" {
		return doc, nil
	}
	if err := json.Unmarshal(top.Projects, &doc.Projects); err != nil {
		return document{}, fmt.Errorf("projects: %w", err)
	}
	doc.order, err = jsonObjectKeys(top.Projects)
	if err != nil {
		return document{}, fmt.Errorf("projects: %w", err)
	}
	return doc, nil
}

// jsonObjectKeys returns the keys of a JSON object in document order,
// keeping the first occurrence of duplicates.
func jsonObjectKeys(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("expected an object")
	}

	var keys []string
	seen := make(map[string]bool)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func decodeTOML(data []byte) (document, error) {
	var top struct {
		BaseDir  string                `toml:"base_dir"`
		Projects map[string]rawProject `toml:"projects"`
	}
	md, err := toml.Decode(string(data), &top)
	if err != nil {
		return document{}, fmt.Errorf("parse: %w", err)
	}

	doc := document{BaseDir: top.BaseDir, Projects: top.Projects}
	if doc.Projects == nil && md.IsDefined("projects") {
		doc.Projects = map[string]rawProject{}
	}
	seen := make(map[string]bool)
	for _, key := range md.Keys() {
		if len(key) == 2 && key[0] == "projects" && !seen[key[1]] {
			seen[key[1]] = true
			doc.order = append(doc.order, key[1])
		}
	}
	return doc, nil
}

func decodeYAML(data []byte) (document, error) {
	var top struct {
		BaseDir  string    `yaml:"base_dir"`
		Projects yaml.Node `yaml:"projects"`
	}
	if err := yaml.Unmarshal(data, &top); err != nil {
		return document{}, fmt.Errorf("parse: %w", err)
	}

	doc := document{BaseDir: top.BaseDir}
	node := &top.Projects
	if node.Kind == 0 || node.Tag == "!!null" {
		return doc, nil
	}
	if node.Kind != yaml.MappingNode {
		return document{}, fmt.Errorf("projects: expected a mapping, got %s", node.Tag)
	}

	doc.Projects = make(map[string]rawProject, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		var p rawProject
		if err := node.Content[i+1].Decode(&p); err != nil {
			return document{}, fmt.Errorf("projects.%s: %w", name, err)
		}
		if _, dup := doc.Projects[name]; !dup {
			doc.order = append(doc.order, name)
		}
		doc.Projects[name] = p
	}
	return doc, nil
}
