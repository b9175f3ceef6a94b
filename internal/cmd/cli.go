package cmd

import "github.com/alecthomas/kong"

// LogConfig holds the global logging flags.
type LogConfig struct {
	Level string `help:"Log level" default:"info" enum:"trace,debug,info,warn,error" env:"REDUCERGEN_LOG_LEVEL"`
	File  string `help:"Also write logs to this file" env:"REDUCERGEN_LOG_FILE"`
}

// CLI is the root kong grammar.
type CLI struct {
	Config  string           `help:"Config file (json, yaml or toml)" env:"REDUCERGEN_CONFIG" placeholder:"PATH"`
	Log     LogConfig        `embed:"" prefix:"log."`
	Version kong.VersionFlag `help:"Print version and exit"`

	Generate  Generate        `cmd:"" default:"withargs" help:"Generate reducer scaffolding from a template"`
	Template  TemplateCommand `cmd:"" help:"Reducer template helpers"`
	ConfigCmd ConfigCommand   `cmd:"" name:"config" help:"Configuration helpers"`
}
