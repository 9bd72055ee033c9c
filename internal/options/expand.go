package options

import (
	"path/filepath"
	"strings"

	"vmargs/internal/flags"
)

// MaxExpansionDepth bounds nested options-file references. A file directly
// referenced from the command line has depth 1; a file referenced from that
// file has depth 2, and so on.
const MaxExpansionDepth = 4

// OptionsFilePrefix introduces an options-file reference token.
const OptionsFilePrefix = "-XX:VMOptionsFile="

// Collect gathers every option source into one ordered token stream, lowest
// precedence first: VM_TOOL_OPTIONS, then VM_OPTIONS, then the command
// line. Options-file references in the command-line stream are expanded in
// place, recursively, up to MaxExpansionDepth; a file on the active
// expansion stack referencing itself is a cycle.
func Collect(cmdline []string, env Environ, fs FileReader) ([]Token, error) {
	var stream []Token
	for _, src := range []struct {
		key    string
		origin flags.Origin
	}{
		{EnvToolOptions, flags.OriginEnvToolOptions},
		{EnvOptions, flags.OriginEnvOptions},
	} {
		raw := env(src.key)
		if raw == "" {
			continue
		}
		toks, err := Tokenize(raw)
		if err != nil {
			return nil, err
		}
		for _, t := range toks {
			stream = append(stream, Token{Raw: t, Origin: src.origin})
		}
	}
	expanded, err := expand(cmdline, flags.OriginCommandLine, fs, nil, 0)
	if err != nil {
		return nil, err
	}
	return append(stream, expanded...), nil
}

// expand copies raw tokens into the stream, splicing options-file content in
// place of each reference token. active is the stack of file paths being
// expanded, used for cycle detection.
func expand(raw []string, origin flags.Origin, fs FileReader, active []string, depth int) ([]Token, error) {
	var out []Token
	for _, r := range raw {
		if path, ok := strings.CutPrefix(r, OptionsFilePrefix); ok {
			spliced, err := expandFile(path, fs, active, depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, spliced...)
			continue
		}
		out = append(out, Token{Raw: r, Origin: origin, Depth: depth})
	}
	return out, nil
}

func expandFile(path string, fs FileReader, active []string, depth int) ([]Token, error) {
	token := OptionsFilePrefix + path
	if depth > MaxExpansionDepth {
		return nil, flags.Errorf(flags.ExpansionDepthExceeded, token,
			"options files nested deeper than %d levels", MaxExpansionDepth)
	}
	key := filepath.Clean(path)
	for _, a := range active {
		if a == key {
			return nil, flags.Errorf(flags.ExpansionCycle, token,
				"options file is part of a reference cycle")
		}
	}
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, flags.Errorf(flags.MalformedToken, token, "cannot read options file: %v", err)
	}
	toks, err := Tokenize(string(data))
	if err != nil {
		return nil, err
	}
	return expand(toks, flags.OriginOptionsFile, fs, append(active, key), depth)
}
