package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vmargs/internal/config"
	"vmargs/internal/flags"
	"vmargs/internal/options"
)

// execute runs the CLI with args and returns captured stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(options.EnvToolOptions, "")
	t.Setenv(options.EnvOptions, "")
	// Globals keep their values between Execute calls; restore defaults so
	// each test starts clean.
	format = "yaml"
	ignoreUnrecognized = false
	verbose = false
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestResolveCommand_YAML(t *testing.T) {
	out, err := execute(t, "resolve", "--", "-XX:+UseSerialGC", "-Xint", "-Xmx256m")
	require.NoError(t, err)
	assert.Contains(t, out, "mode: interpreted")
	assert.Contains(t, out, "collector: serial")
	assert.Contains(t, out, "max_bytes: 268435456")
}

func TestResolveCommand_JSON(t *testing.T) {
	out, err := execute(t, "resolve", "--format", "json", "--", "-XX:+UseSerialGC", "-Xmx256m")
	require.NoError(t, err)

	var s config.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, "serial", s.Collector)
	assert.Equal(t, "mixed", s.Mode)
	assert.Equal(t, uint64(256)<<20, s.Heap.Max)
}

func TestResolveCommand_UnknownFormat(t *testing.T) {
	_, err := execute(t, "resolve", "--format", "toml", "--", "-Xmx256m")
	require.Error(t, err)
	_, classified := flags.KindOf(err)
	assert.False(t, classified, "format errors are usage errors, not resolution outcomes")
}

func TestResolveCommand_FatalOutcomeClassified(t *testing.T) {
	_, err := execute(t, "resolve", "--", "-Xbogus")
	require.Error(t, err)
	kind, classified := flags.KindOf(err)
	require.True(t, classified)
	assert.Equal(t, flags.UnknownOption, kind)
}

func TestResolveCommand_IgnoreUnrecognizedFlag(t *testing.T) {
	out, err := execute(t, "resolve", "--ignore-unrecognized", "--", "-XX:+UseSerialGC", "-Xbogus")
	require.NoError(t, err)
	assert.Contains(t, out, "collector: serial")
}

func TestCheckCommand(t *testing.T) {
	out, err := execute(t, "check", "--", "-XX:+UseSerialGC", "-Xcomp")
	require.NoError(t, err)
	assert.Contains(t, out, "configuration OK")
	assert.Contains(t, out, "serial collector")
	assert.Contains(t, out, "compiled mode")
}

func TestCheckCommand_Fatal(t *testing.T) {
	_, err := execute(t, "check", "--", "-Xms2g", "-Xmx1g")
	require.Error(t, err)
	kind, classified := flags.KindOf(err)
	require.True(t, classified)
	assert.Equal(t, flags.UnreconcilableBound, kind)
}
