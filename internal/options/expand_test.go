package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vmargs/internal/flags"
)

// mapFS serves options files from memory.
type mapFS map[string]string

func (m mapFS) ReadFile(path string) ([]byte, error) {
	if data, ok := m[path]; ok {
		return []byte(data), nil
	}
	return nil, &fileError{path}
}

type fileError struct{ path string }

func (e *fileError) Error() string { return "open " + e.path + ": no such file" }

func env(vars map[string]string) Environ {
	return func(key string) string { return vars[key] }
}

func raws(stream []Token) []string {
	out := make([]string, len(stream))
	for i, t := range stream {
		out[i] = t.Raw
	}
	return out
}

func TestCollect_SourceOrderAndOrigins(t *testing.T) {
	stream, err := Collect(
		[]string{"-Xmx2g"},
		env(map[string]string{
			EnvToolOptions: "-Xms128m -XX:+UseTLAB",
			EnvOptions:     "-Xmx1g",
		}),
		mapFS{},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"-Xms128m", "-XX:+UseTLAB", "-Xmx1g", "-Xmx2g"}, raws(stream))
	assert.Equal(t, flags.OriginEnvToolOptions, stream[0].Origin)
	assert.Equal(t, flags.OriginEnvToolOptions, stream[1].Origin)
	assert.Equal(t, flags.OriginEnvOptions, stream[2].Origin)
	assert.Equal(t, flags.OriginCommandLine, stream[3].Origin)
}

func TestCollect_EmptyEnvSkipped(t *testing.T) {
	stream, err := Collect([]string{"-Xint"}, env(nil), mapFS{})
	require.NoError(t, err)
	assert.Equal(t, []string{"-Xint"}, raws(stream))
}

func TestCollect_OptionsFileSplicedInPlace(t *testing.T) {
	fs := mapFS{"/etc/vm.options": "-Xms256m -XX:+UseSerialGC"}
	stream, err := Collect(
		[]string{"-Xmx1g", "-XX:VMOptionsFile=/etc/vm.options", "-Xint"},
		env(nil), fs,
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"-Xmx1g", "-Xms256m", "-XX:+UseSerialGC", "-Xint"}, raws(stream))

	// Spliced tokens carry file provenance and depth; the surrounding
	// command-line tokens keep theirs.
	assert.Equal(t, flags.OriginCommandLine, stream[0].Origin)
	assert.Equal(t, flags.OriginOptionsFile, stream[1].Origin)
	assert.Equal(t, 1, stream[1].Depth)
	assert.Equal(t, flags.OriginCommandLine, stream[3].Origin)
	assert.Equal(t, 0, stream[3].Depth)
}

func TestCollect_NestedOptionsFiles(t *testing.T) {
	fs := mapFS{
		"outer": "-Xms1m -XX:VMOptionsFile=inner -Xss128k",
		"inner": "-Xmn4m",
	}
	stream, err := Collect([]string{"-XX:VMOptionsFile=outer"}, env(nil), fs)
	require.NoError(t, err)
	assert.Equal(t, []string{"-Xms1m", "-Xmn4m", "-Xss128k"}, raws(stream))
	assert.Equal(t, 1, stream[0].Depth)
	assert.Equal(t, 2, stream[1].Depth)
	assert.Equal(t, 1, stream[2].Depth)
}

func TestCollect_EnvReferenceNotExpanded(t *testing.T) {
	// Only the command-line stream is scanned for options-file references;
	// an environment token that looks like one stays a plain token.
	fs := mapFS{"f": "-Xint"}
	stream, err := Collect(nil, env(map[string]string{EnvOptions: "-XX:VMOptionsFile=f"}), fs)
	require.NoError(t, err)
	assert.Equal(t, []string{"-XX:VMOptionsFile=f"}, raws(stream))
}

func TestCollect_SelfReferenceIsCycle(t *testing.T) {
	fs := mapFS{"loop": "-Xmx1g -XX:VMOptionsFile=loop"}
	_, err := Collect([]string{"-XX:VMOptionsFile=loop"}, env(nil), fs)
	require.Error(t, err)
	kind, ok := flags.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, flags.ExpansionCycle, kind)
}

func TestCollect_IndirectCycle(t *testing.T) {
	fs := mapFS{
		"a": "-XX:VMOptionsFile=b",
		"b": "-XX:VMOptionsFile=a",
	}
	_, err := Collect([]string{"-XX:VMOptionsFile=a"}, env(nil), fs)
	require.Error(t, err)
	kind, _ := flags.KindOf(err)
	assert.Equal(t, flags.ExpansionCycle, kind)
}

func TestCollect_CycleDetectionNormalizesPaths(t *testing.T) {
	fs := mapFS{"dir/../loop": "-XX:VMOptionsFile=loop", "loop": "-XX:VMOptionsFile=loop"}
	_, err := Collect([]string{"-XX:VMOptionsFile=dir/../loop"}, env(nil), fs)
	require.Error(t, err)
	kind, _ := flags.KindOf(err)
	assert.Equal(t, flags.ExpansionCycle, kind)
}

func TestCollect_DepthBound(t *testing.T) {
	fs := mapFS{
		"d1": "-XX:VMOptionsFile=d2",
		"d2": "-XX:VMOptionsFile=d3",
		"d3": "-XX:VMOptionsFile=d4",
		"d4": "-Xint",
	}
	stream, err := Collect([]string{"-XX:VMOptionsFile=d1"}, env(nil), fs)
	require.NoError(t, err)
	assert.Equal(t, []string{"-Xint"}, raws(stream))
	assert.Equal(t, MaxExpansionDepth, stream[0].Depth)

	fs["d4"] = "-XX:VMOptionsFile=d5"
	fs["d5"] = "-Xint"
	_, err = Collect([]string{"-XX:VMOptionsFile=d1"}, env(nil), fs)
	require.Error(t, err)
	kind, ok := flags.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, flags.ExpansionDepthExceeded, kind)
}

func TestCollect_UnreadableFile(t *testing.T) {
	_, err := Collect([]string{"-XX:VMOptionsFile=/nope"}, env(nil), mapFS{})
	require.Error(t, err)
	kind, ok := flags.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, flags.MalformedToken, kind)
}

func TestCollect_RepeatedFileNotACycle(t *testing.T) {
	// The same file twice in sequence is fine; only the active expansion
	// stack counts for cycle detection.
	fs := mapFS{"f": "-Xint"}
	stream, err := Collect(
		[]string{"-XX:VMOptionsFile=f", "-XX:VMOptionsFile=f"},
		env(nil), fs,
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"-Xint", "-Xint"}, raws(stream))
}
