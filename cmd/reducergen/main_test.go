package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindUserConfig(t *testing.T) {
	t.Setenv("REDUCERGEN_CONFIG", "")

	assert.Equal(t, "a.yaml", findUserConfig([]string{"generate", "--config=a.yaml"}))
	assert.Equal(t, "b.toml", findUserConfig([]string{"--config", "b.toml", "generate"}))
	assert.Equal(t, "", findUserConfig([]string{"generate", "--config"}))

	t.Setenv("REDUCERGEN_CONFIG", "env.json")
	assert.Equal(t, "env.json", findUserConfig(nil))
	assert.Equal(t, "flag.json", findUserConfig([]string{"--config=flag.json"}))
}
