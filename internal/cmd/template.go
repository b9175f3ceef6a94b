package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/EpicYoshiMaster/reducer-code-generator/internal/configpaths"

	yaml "gopkg.in/yaml.v3"
)

// TemplateCommand groups subcommands working on reducer templates.
type TemplateCommand struct {
	Init TemplateInit `cmd:"" help:"Write a sample reducer template"`
}

// TemplateInit scaffolds a reducer template to start from.
type TemplateInit struct {
	Path        string `arg:"" optional:"" help:"Destination file (defaults to ./input/template.<format>)"`
	Format      string `help:"Output format" enum:"json,yaml" default:"json"`
	SubReducer  string `help:"Name of the state slice" default:"player"`
	RootReducer string `help:"Name of the aggregate reducer" default:"game_reducer"`
	Force       bool   `help:"Overwrite if the file already exists"`
}

// sampleProperties seeds a new template with one property per common kind.
var sampleProperties = orderedTypeNames{
	{"health", "number"},
	{"is_alive", "boolean"},
	{"display_name", "string"},
}

// Run writes the sample template.
func (c *TemplateInit) Run() error {
	format := normalizeFormat(c.Format)
	if format != "json" && format != "yaml" {
		return fmt.Errorf("unsupported format: %s", c.Format)
	}

	dest := c.Path
	if dest == "" {
		dest = filepath.Join("input", "template."+configpaths.Extension(format))
	}
	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}

	data, err := c.render(format)
	if err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}

func (c *TemplateInit) render(format string) ([]byte, error) {
	if format == "json" {
		doc := struct {
			RootReducer string           `json:"root_reducer"`
			SubReducer  string           `json:"sub_reducer"`
			Properties  orderedTypeNames `json:"properties"`
		}{c.RootReducer, c.SubReducer, sampleProperties}
		data, err := json.MarshalIndent(doc, "", "\t")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}

	// A yaml node keeps property order; a map would not.
	props := &yaml.Node{Kind: yaml.MappingNode}
	for _, p := range sampleProperties {
		props.Content = append(props.Content, str(p[0]), str(p[1]))
	}
	root := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		str("root_reducer"), str(c.RootReducer),
		str("sub_reducer"), str(c.SubReducer),
		str("properties"), props,
	}}
	return yaml.Marshal(root)
}

func str(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

// orderedTypeNames marshals name/type pairs as a JSON object in slice order.
type orderedTypeNames [][2]string

func (o orderedTypeNames) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(p[0])
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(p[1])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
