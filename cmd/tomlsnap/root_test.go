package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Azhovan/configtoml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const fixture = "../../testdata/config.toml"

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestDescribe(t *testing.T) {
	out, err := run(t, "describe", fixture)
	require.NoError(t, err)
	assert.Equal(t, "TOMLProvider[24 values]\n", out)
}

func TestDebug_Secret(t *testing.T) {
	out, err := run(t, "debug", "--secret", "other.string", "--secret", "int", fixture)
	require.NoError(t, err)
	assert.Contains(t, out, "other.string=<REDACTED>")
	assert.Contains(t, out, "int=<REDACTED>")
	assert.NotContains(t, out, "Other Hello")
	assert.Contains(t, out, "string=Hello")
}

func TestGet(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"string default", []string{"get", fixture, "string"}, "Hello\n"},
		{"int", []string{"get", fixture, "other.int", "--type", "int"}, "24\n"},
		{"double", []string{"get", fixture, "double", "-t", "double"}, "3.14\n"},
		{"bool", []string{"get", fixture, "bool", "-t", "bool"}, "true\n"},
		{"bytes as hex", []string{"get", fixture, "bytes", "-t", "bytes"}, "6d61676963\n"},
		{"string array", []string{"get", fixture, "stringy.array", "-t", "stringArray"}, "Hello,World\n"},
		{"int array", []string{"get", fixture, "inty.array", "-t", "intArray"}, "[42 24]\n"},
		{"byte chunks", []string{"get", fixture, "byteChunky.array", "-t", "byteChunkArray"}, "6d61676963,6d6167696332\n"},
		{"date as string", []string{"get", fixture, "local_date"}, "2024-01-02\n"},
		{"secret redacted", []string{"get", "--secret", "string", fixture, "string"}, "<REDACTED>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestGet_Errors(t *testing.T) {
	t.Run("absent key", func(t *testing.T) {
		_, err := run(t, "get", fixture, "missing.key")
		assert.ErrorIs(t, err, errKeyNotFound)
		assert.Contains(t, err.Error(), "missing.key")
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := run(t, "get", fixture, "string", "--type", "int")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not convertible")
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := run(t, "get", fixture, "string", "--type", "uuid")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown config type "uuid"`)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, "get", filepath.Join(t.TempDir(), "none.toml"), "string")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "required config file not found")
	})
}

func TestGet_IntegralDouble(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ratio.toml")
	require.NoError(t, os.WriteFile(path, []byte("ratio = 1.0\nscale = 1e21\n"), 0644))

	out, err := run(t, "get", path, "ratio", "-t", "double")
	require.NoError(t, err)
	assert.Equal(t, "1.0\n", out)

	out, err = run(t, "get", path, "scale", "-t", "double")
	require.NoError(t, err)
	assert.Equal(t, "1e+21\n", out)
}

func TestBytesEncoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hex.toml")
	require.NoError(t, os.WriteFile(path, []byte(`key = "cafe"`+"\n"), 0644))

	out, err := run(t, "get", "--bytes", "hex", path, "key", "-t", "bytes")
	require.NoError(t, err)
	assert.Equal(t, "cafe\n", out)

	_, err = run(t, "get", "--bytes", "base32", path, "key", "-t", "bytes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported bytes encoding")
}

func TestSecretsFile(t *testing.T) {
	dir := t.TempDir()
	rules := filepath.Join(dir, "secrets.yaml")
	require.NoError(t, os.WriteFile(rules, []byte("key_patterns:\n  - '^other\\.'\n"), 0644))

	out, err := run(t, "dump", "--secrets-file", rules, fixture)
	require.NoError(t, err)
	assert.Contains(t, out, "other.int: <REDACTED>\n")
	assert.Contains(t, out, "int: 42\n")
	assert.NotContains(t, out, "Other Hello")

	_, err = run(t, "dump", "--secrets-file", filepath.Join(dir, "missing.yaml"), fixture)
	assert.Error(t, err)
}

func TestDump_Formats(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		out, err := run(t, "dump", fixture)
		require.NoError(t, err)
		assert.Contains(t, out, "string: \"Hello\"\n")
		assert.Contains(t, out, "inty.array: 42,24\n")
	})

	t.Run("json", func(t *testing.T) {
		out, err := run(t, "dump", "--format", "json", "--secret", "bytes", fixture)
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Len(t, got, 24)
		assert.Equal(t, "Hello", got["string"])
		assert.Equal(t, float64(42), got["int"])
		assert.Equal(t, "<REDACTED>", got["bytes"])
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := run(t, "dump", "-f", "yml", fixture)
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		assert.Len(t, got, 24)
		assert.Equal(t, true, got["bool"])
		assert.Equal(t, 24, got["other.int"])
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := run(t, "dump", "--format", "xml", fixture)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported dump format")
	})
}

func TestFormatConfigValue(t *testing.T) {
	tests := []struct {
		name string
		cv   configtoml.ConfigValue
		want string
	}{
		{"double", configtoml.ConfigValue{Type: configtoml.TypeDouble, Value: 1.5}, "1.5"},
		{"integral double", configtoml.ConfigValue{Type: configtoml.TypeDouble, Value: 1.0}, "1.0"},
		{"double array", configtoml.ConfigValue{Type: configtoml.TypeDoubleArray, Value: []float64{2, 0.5}}, "[2.0 0.5]"},
		{"bytes", configtoml.ConfigValue{Type: configtoml.TypeBytes, Value: []byte{0x01, 0xff}}, "01ff"},
		{"empty chunks", configtoml.ConfigValue{Type: configtoml.TypeByteChunkArray, Value: [][]byte{}}, ""},
		{"bool array", configtoml.ConfigValue{Type: configtoml.TypeBoolArray, Value: []bool{true, false}}, "[true false]"},
		{"secret", configtoml.ConfigValue{Type: configtoml.TypeInt, Value: 7, Secret: true}, "<REDACTED>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatConfigValue(&tt.cv))
		})
	}
}
