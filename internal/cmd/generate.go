package cmd

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/EpicYoshiMaster/reducer-code-generator/internal/codegen/generator"
)

type Generate struct {
	Input    string   `help:"Reducer template file (JSON or YAML)" default:"./input/template.json" env:"REDUCERGEN_INPUT"`
	Output   string   `help:"Existing directory the artifact is written to" default:"./output/" env:"REDUCERGEN_OUTPUT"`
	FileName string   `help:"Artifact file name inside the output directory" default:"output.txt" env:"REDUCERGEN_FILE_NAME"`
	Section  []string `help:"Only emit these sections: constants, actions, reducer, creators, handlers, inputs" env:"REDUCERGEN_SECTIONS"`
	Header   bool     `help:"Prefix the artifact with a generated-file banner" env:"REDUCERGEN_HEADER"`
	Stdout   bool     `help:"Print the generated text instead of writing the artifact" env:"REDUCERGEN_STDOUT"`
}

// Run is called by Kong when the generate command is executed.
func (c *Generate) Run(logger *slog.Logger) error {
	return c.run(logger, os.Stdout)
}

func (c *Generate) run(logger *slog.Logger, stdout io.Writer) error {
	logger.Info("Starting reducer code generation", "input", c.Input, "output", c.Output)

	gen := generator.New(generator.Config{
		InputPath: c.Input,
		OutputDir: c.Output,
		FileName:  c.FileName,
		Header:    c.Header,
		Sections:  c.Section,
	}, logger)

	var err error
	if c.Stdout {
		err = gen.Print(stdout)
	} else {
		_, err = gen.Run()
	}

	switch {
	case errors.Is(err, generator.ErrInputNotFound):
		logger.Error("Invalid input file path", "input", c.Input)
	case errors.Is(err, generator.ErrOutputDirNotFound):
		logger.Error("Invalid output directory", "output", c.Output)
	}
	return err
}
