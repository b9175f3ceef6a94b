package generator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/EpicYoshiMaster/reducer-code-generator/internal/codegen/common"
	"github.com/EpicYoshiMaster/reducer-code-generator/internal/codegen/generator/typescript"
	"github.com/EpicYoshiMaster/reducer-code-generator/internal/codegen/meta"
	"github.com/EpicYoshiMaster/reducer-code-generator/internal/codegen/scanner"
)

// DefaultFileName is the name of the generated artifact inside the output directory.
const DefaultFileName = "output.txt"

var (
	ErrInputNotFound     = errors.New("invalid input file path")
	ErrOutputDirNotFound = errors.New("invalid output directory")
)

// Config selects the input template, the output location and what to emit.
type Config struct {
	InputPath string
	OutputDir string
	FileName  string   // defaults to DefaultFileName
	Header    bool     // prefix the artifact with a generated-file banner
	Sections  []string // empty means all sections
}

// Generator turns a reducer template into a single scaffolding artifact.
type Generator struct {
	cfg    Config
	logger *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Generator {
	if cfg.FileName == "" {
		cfg.FileName = DefaultFileName
	}
	return &Generator{
		cfg:    cfg,
		logger: logger,
	}
}

// OutputPath is the file Run writes to.
func (g *Generator) OutputPath() string {
	return filepath.Join(g.cfg.OutputDir, g.cfg.FileName)
}

// Preflight checks that the input file and the output directory exist.
// Nothing is created or removed.
func (g *Generator) Preflight() error {
	if err := g.checkInput(); err != nil {
		return err
	}
	if info, err := os.Stat(g.cfg.OutputDir); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrOutputDirNotFound, g.cfg.OutputDir)
	}
	return nil
}

func (g *Generator) checkInput() error {
	if info, err := os.Stat(g.cfg.InputPath); err != nil || info.IsDir() {
		return fmt.Errorf("%w: %s", ErrInputNotFound, g.cfg.InputPath)
	}
	return nil
}

// Load reads and validates the configured template.
func (g *Generator) Load() (*meta.Template, error) {
	g.logger.Debug("Scanning template", "input", g.cfg.InputPath)

	t, err := scanner.ScanTemplate(g.cfg.InputPath)
	if err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	for _, p := range t.Properties {
		g.logger.Debug("Template property", "name", p.Name, "type", p.Type, "kind", p.Kind())
	}
	g.logger.Info("Loaded template",
		"sub_reducer", t.SubReducer,
		"root_reducer", t.RootReducer,
		"properties", len(t.Properties))
	return t, nil
}

// Render emits the selected sections for t into memory, in output order.
func (g *Generator) Render(t *meta.Template) ([]byte, error) {
	var buf bytes.Buffer
	if g.cfg.Header {
		header, err := common.FileHeader("//")
		if err != nil {
			return nil, fmt.Errorf("file header: %w", err)
		}
		buf.WriteString(header)
	}

	if len(g.cfg.Sections) == 0 {
		if err := typescript.Generate(&buf, t); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	sections, err := typescript.SelectSections(g.cfg.Sections)
	if err != nil {
		return nil, err
	}
	for _, s := range sections {
		g.logger.Debug("Generating section", "section", s.Name)
		if err := s.Emit(&buf, t); err != nil {
			return nil, fmt.Errorf("generate %s: %w", s.Name, err)
		}
	}
	return buf.Bytes(), nil
}

// Print renders the template to w without touching the output directory.
func (g *Generator) Print(w io.Writer) error {
	if err := g.checkInput(); err != nil {
		return err
	}
	t, err := g.Load()
	if err != nil {
		return err
	}
	out, err := g.Render(t)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// Run performs the whole pipeline and returns the path it wrote.
// Any previous artifact is removed before the new one is written, so
// repeated runs never accumulate output.
func (g *Generator) Run() (string, error) {
	if err := g.Preflight(); err != nil {
		return "", err
	}

	t, err := g.Load()
	if err != nil {
		return "", err
	}

	out, err := g.Render(t)
	if err != nil {
		return "", err
	}

	outputPath := g.OutputPath()
	if err := os.Remove(outputPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("remove stale output: %w", err)
	}
	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return "", fmt.Errorf("write output: %w", err)
	}

	g.logger.Info("Generation complete", "output", outputPath, "bytes", len(out))
	return outputPath, nil
}
