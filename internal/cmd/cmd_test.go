package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/EpicYoshiMaster/reducer-code-generator/internal/codegen/generator"
	"github.com/EpicYoshiMaster/reducer-code-generator/internal/codegen/scanner"

	"github.com/alecthomas/kong"
	toml "github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"
)

func parseCLI(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("reducergen"), kong.Vars{"version": "test"}, kong.Exit(func(int) {}))
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return &cli, ctx
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestCLIDefaults(t *testing.T) {
	cli, ctx := parseCLI(t)

	assert.Equal(t, "generate", ctx.Command())
	assert.Equal(t, "./input/template.json", cli.Generate.Input)
	assert.Equal(t, "./output/", cli.Generate.Output)
	assert.Equal(t, generator.DefaultFileName, cli.Generate.FileName)
	assert.Equal(t, "info", cli.Log.Level)
}

func TestCLIGenerateFlags(t *testing.T) {
	cli, ctx := parseCLI(t, "generate", "--input", "in.yaml", "--output", "out", "--section", "constants", "--section", "inputs", "--header", "--log.level", "debug")

	assert.Equal(t, "generate", ctx.Command())
	assert.Equal(t, "in.yaml", cli.Generate.Input)
	assert.Equal(t, "out", cli.Generate.Output)
	assert.Equal(t, []string{"constants", "inputs"}, cli.Generate.Section)
	assert.True(t, cli.Generate.Header)
	assert.Equal(t, "debug", cli.Log.Level)
}

func TestCLIEnv(t *testing.T) {
	t.Setenv("REDUCERGEN_INPUT", "from-env.json")
	cli, _ := parseCLI(t)
	assert.Equal(t, "from-env.json", cli.Generate.Input)
}

func TestCLIConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reducergen.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"input": "cfg.json", "file_name": "reducer.txt", "log": {"level": "warn"}}`), 0o644))

	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"}, kong.Configuration(kong.JSON, path))
	require.NoError(t, err)
	_, err = parser.Parse([]string{"generate", "--output", "flag-out"})
	require.NoError(t, err)

	assert.Equal(t, "cfg.json", cli.Generate.Input)
	assert.Equal(t, "reducer.txt", cli.Generate.FileName)
	assert.Equal(t, "flag-out", cli.Generate.Output)
	assert.Equal(t, "warn", cli.Log.Level)
}

func TestGenerateRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.json")
	require.NoError(t, os.WriteFile(input, []byte(`{"sub_reducer": "player", "properties": {"health": "number"}}`), 0o644))

	logger, _ := bufferLogger()
	c := &Generate{Input: input, Output: dir, FileName: "output.txt"}
	require.NoError(t, c.run(logger, io.Discard))

	data, err := os.ReadFile(filepath.Join(dir, "output.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "export const SET_HEALTH = 'SET_HEALTH';")
}

func TestGenerateRunStdout(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.json")
	require.NoError(t, os.WriteFile(input, []byte(`{"sub_reducer": "player", "properties": {"health": "number"}}`), 0o644))

	logger, _ := bufferLogger()
	var stdout bytes.Buffer
	c := &Generate{Input: input, Output: dir, FileName: "output.txt", Stdout: true, Section: []string{"constants"}}
	require.NoError(t, c.run(logger, &stdout))

	assert.Equal(t, "export const SET_HEALTH = 'SET_HEALTH';\n\n", stdout.String())
	assert.NoFileExists(t, filepath.Join(dir, "output.txt"))
}

func TestGenerateRunPreflightLogs(t *testing.T) {
	dir := t.TempDir()

	logger, logs := bufferLogger()
	c := &Generate{Input: filepath.Join(dir, "missing.json"), Output: dir}
	err := c.run(logger, io.Discard)
	assert.ErrorIs(t, err, generator.ErrInputNotFound)
	assert.Contains(t, logs.String(), "Invalid input file path")

	input := filepath.Join(dir, "input.json")
	require.NoError(t, os.WriteFile(input, []byte(`{"sub_reducer": "p", "properties": {"a": "number"}}`), 0o644))
	logs.Reset()
	c = &Generate{Input: input, Output: filepath.Join(dir, "nope")}
	err = c.run(logger, io.Discard)
	assert.ErrorIs(t, err, generator.ErrOutputDirNotFound)
	assert.Contains(t, logs.String(), "Invalid output directory")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "only the input file should exist")
}

func TestTemplateInitRoundTrip(t *testing.T) {
	for _, format := range []string{"json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			dest := filepath.Join(t.TempDir(), "nested", "template."+format)
			c := &TemplateInit{Path: dest, Format: format, SubReducer: "hero", RootReducer: "game_reducer"}
			require.NoError(t, c.Run())

			tmpl, err := scanner.ScanTemplate(dest)
			require.NoError(t, err)
			require.NoError(t, tmpl.Validate())
			assert.Equal(t, "hero", tmpl.SubReducer)
			assert.Equal(t, "game_reducer", tmpl.RootReducer)
			require.Len(t, tmpl.Properties, 3)
			assert.Equal(t, "health", tmpl.Properties[0].Name)
			assert.Equal(t, "is_alive", tmpl.Properties[1].Name)
			assert.Equal(t, "display_name", tmpl.Properties[2].Name)

			assert.ErrorContains(t, c.Run(), "destination exists")
			c.Force = true
			assert.NoError(t, c.Run())
		})
	}
}

func TestTemplateInitJSONIsJSON(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "template.json")
	require.NoError(t, (&TemplateInit{Path: dest, Format: "json", SubReducer: "hero"}).Run())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "hero", doc["sub_reducer"])
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		format    string
		unmarshal func([]byte, any) error
	}{
		{"json", json.Unmarshal},
		{"yaml", yaml.Unmarshal},
		{"toml", toml.Unmarshal},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			dest := filepath.Join(dir, "reducergen."+tt.format)
			c := &ConfigInit{Format: tt.format, Output: dest}
			require.NoError(t, c.Run())

			data, err := os.ReadFile(dest)
			require.NoError(t, err)
			var doc map[string]any
			require.NoError(t, tt.unmarshal(data, &doc))

			assert.Equal(t, "./input/template.json", doc["input"])
			assert.Equal(t, "output.txt", doc["file_name"])
			assert.Equal(t, false, doc["stdout"])
			logCfg, ok := doc["log"].(map[string]any)
			require.True(t, ok, "log section missing: %v", doc)
			assert.Equal(t, "info", logCfg["level"])

			assert.ErrorContains(t, c.Run(), "destination exists")
		})
	}
}

func TestConfigInitUnsupportedFormat(t *testing.T) {
	err := (&ConfigInit{Format: "ini", Output: filepath.Join(t.TempDir(), "x.ini")}).Run()
	assert.ErrorContains(t, err, "unsupported format")
}

func TestConfigKey(t *testing.T) {
	assert.Equal(t, "file_name", configKey("FileName"))
	assert.Equal(t, "input", configKey("Input"))
}
