package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppliesDefaults(t *testing.T) {
	o, err := Parse([]byte(""))
	require.NoError(t, err)

	assert.Equal(t, "1", o.Version)
	assert.Equal(t, AlgorithmEven, o.Algorithm)
	assert.Equal(t, DefaultNameColumn, o.NameColumn)
	assert.Equal(t, FormatTable, o.Format)
	assert.False(t, o.NoColor)
}

func TestParseFullDocument(t *testing.T) {
	data := []byte(`
version: "1"
algorithm: maximal
name_column: Student
format: plain
no_color: true
`)

	o, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, AlgorithmMaximal, o.Algorithm)
	assert.Equal(t, "Student", o.NameColumn)
	assert.Equal(t, FormatPlain, o.Format)
	assert.True(t, o.NoColor)
}

func TestParseRejectsUnknownAlgorithm(t *testing.T) {
	_, err := Parse([]byte("algorithm: stable"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown algorithm")
}

func TestParseRejectsUnknownFormat(t *testing.T) {
	_, err := Parse([]byte("format: json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("algorithm: [broken"))
	require.Error(t, err)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("does/not/exist.yaml")
	require.Error(t, err)
}

func TestDefault(t *testing.T) {
	o := Default()
	require.NoError(t, o.Validate())
	assert.Equal(t, AlgorithmEven, o.Algorithm)
}
