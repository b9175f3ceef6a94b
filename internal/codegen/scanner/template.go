package scanner

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/EpicYoshiMaster/reducer-code-generator/internal/codegen/meta"

	yaml "gopkg.in/yaml.v3"
)

// Recognised top-level keys of a template document.
const (
	keyRootReducer = "root_reducer"
	keySubReducer  = "sub_reducer"
	keyProperties  = "properties"
)

// ScanTemplate reads a template file and parses it. A .json file is always
// decoded as JSON and a .yaml/.yml file as YAML; anything else is sniffed.
func ScanTemplate(path string) (*meta.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}

	var t *meta.Template
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		t, err = parseJSON(data)
	case ".yaml", ".yml":
		t, err = parseYAML(data)
	default:
		t, err = ParseTemplate(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", path, err)
	}
	return t, nil
}

// ParseTemplate decodes a template document, keeping the key order of the
// properties mapping. Documents starting with '{' or '[' are JSON, the rest
// YAML. Unknown top-level keys are ignored.
func ParseTemplate(data []byte) (*meta.Template, error) {
	if looksLikeJSON(data) {
		return parseJSON(data)
	}
	return parseYAML(data)
}

func looksLikeJSON(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}

func parseYAML(data []byte) (*meta.Template, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("empty document")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected an object at top level", root.Line)
	}

	t := &meta.Template{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		switch key.Value {
		case keyRootReducer:
			s, err := scalarString(key.Value, value)
			if err != nil {
				return nil, err
			}
			t.RootReducer = s
		case keySubReducer:
			s, err := scalarString(key.Value, value)
			if err != nil {
				return nil, err
			}
			t.SubReducer = s
		case keyProperties:
			props, err := scanProperties(value)
			if err != nil {
				return nil, err
			}
			t.Properties = props
		}
	}
	return t, nil
}

func scanProperties(node *yaml.Node) ([]meta.Property, error) {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: %s must be an object of name to type", node.Line, keyProperties)
	}

	props := make([]meta.Property, 0, len(node.Content)/2)
	seen := make(map[string]int, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if prev, dup := seen[key.Value]; dup {
			return nil, fmt.Errorf("line %d: duplicate property %q (first defined on line %d)", key.Line, key.Value, prev)
		}
		seen[key.Value] = key.Line

		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: %s.%s must be a string", value.Line, keyProperties, key.Value)
		}
		// Types pass through as written, null included.
		props = append(props, meta.Property{Name: key.Value, Type: value.Value})
	}
	return props, nil
}

func scalarString(field string, node *yaml.Node) (string, error) {
	if node.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("line %d: %s must be a string", node.Line, field)
	}
	if node.Tag == "!!null" {
		return "", nil
	}
	return node.Value, nil
}
