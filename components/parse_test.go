package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRawArgs(t *testing.T) {
	tests := []struct {
		name               string
		args               []string
		expectedOptions    []suppliedOption
		expectedPositional []string
	}{
		{
			name: "no arguments",
			args: nil,
		},
		{
			name:            "long flag with separate value",
			args:            []string{"--project", "foo"},
			expectedOptions: []suppliedOption{{Key: "project", Value: "foo", HasValue: true}},
		},
		{
			name:            "long flag with equals value",
			args:            []string{"--project=foo"},
			expectedOptions: []suppliedOption{{Key: "project", Value: "foo", HasValue: true}},
		},
		{
			name:            "short flag with value",
			args:            []string{"-p", "foo"},
			expectedOptions: []suppliedOption{{Key: "p", Value: "foo", HasValue: true}},
		},
		{
			name:            "bare flag is boolean",
			args:            []string{"--verbose"},
			expectedOptions: []suppliedOption{{Key: "verbose"}},
		},
		{
			name: "flag followed by another flag has no value",
			args: []string{"--verbose", "--project", "foo"},
			expectedOptions: []suppliedOption{
				{Key: "verbose"},
				{Key: "project", Value: "foo", HasValue: true},
			},
		},
		{
			name:               "double dash terminates option parsing",
			args:               []string{"--project", "foo", "--", "--not-an-option"},
			expectedOptions:    []suppliedOption{{Key: "project", Value: "foo", HasValue: true}},
			expectedPositional: []string{"--not-an-option"},
		},
		{
			name:               "positional arguments are kept aside",
			args:               []string{"some-arg", "--port", "8081"},
			expectedOptions:    []suppliedOption{{Key: "port", Value: "8081", HasValue: true}},
			expectedPositional: []string{"some-arg"},
		},
		{
			name: "encounter order is preserved",
			args: []string{"--port", "8081", "--project", "foo", "--import", "realm.json"},
			expectedOptions: []suppliedOption{
				{Key: "port", Value: "8081", HasValue: true},
				{Key: "project", Value: "foo", HasValue: true},
				{Key: "import", Value: "realm.json", HasValue: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options, positional := parseRawArgs(tt.args)
			assert.Equal(t, tt.expectedOptions, options)
			assert.Equal(t, tt.expectedPositional, positional)
		})
	}
}

func TestFindUnrecognizedOption(t *testing.T) {
	registry := NewOptionRegistry()
	registry.Register("project")
	registry.Register("p")
	registry.Register("file")

	// Empty supplied set always proceeds.
	key, found := findUnrecognizedOption(registry, nil)
	assert.False(t, found)
	assert.Empty(t, key)

	// All recognized, including tokens registered by other commands.
	_, found = findUnrecognizedOption(registry, []suppliedOption{
		{Key: "p", Value: "foo", HasValue: true},
		{Key: "file", Value: "bar", HasValue: true},
	})
	assert.False(t, found)

	// The first unrecognized key, in encounter order, is reported.
	key, found = findUnrecognizedOption(registry, []suppliedOption{
		{Key: "project", Value: "foo", HasValue: true},
		{Key: "frobnicate"},
		{Key: "alsounknown"},
	})
	assert.True(t, found)
	assert.Equal(t, "frobnicate", key)
}

func TestFormatOptionToken(t *testing.T) {
	assert.Equal(t, "-p", formatOptionToken("p"))
	assert.Equal(t, "--project", formatOptionToken("project"))
}
