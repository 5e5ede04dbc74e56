package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOptionRegistry(t *testing.T) {
	app := App{
		Commands: []Command{
			{
				Name: "first-command",
				Flags: []Flag{
					StringFlag{Name: "project", ShortName: "p"},
					IntFlag{Name: "port"},
				},
			},
			{
				Name: "second-command",
				Flags: []Flag{
					StringFlag{Name: "project", ShortName: "p"},
					StringFlag{Name: "file"},
				},
			},
		},
	}
	registry := buildOptionRegistry(app)

	// The help tokens are always recognized.
	assert.True(t, registry.Has("help"))
	assert.True(t, registry.Has("h"))

	// Membership is global across the catalog, not per command.
	for _, flagName := range []string{"project", "p", "port", "file"} {
		assert.True(t, registry.Has(flagName), flagName)
	}
	assert.False(t, registry.Has("frobnicate"))
}

func TestConvertStringFlagDefault(t *testing.T) {
	f := StringFlag{
		Name:         "string-flag",
		Description:  "This is how you use it.",
		DefaultValue: "def",
	}
	converted := convertByType(f)
	expected := "--string-flag  \t[Default: def] This is how you use it."
	assert.Equal(t, expected, converted.String())

	// Verify that when both Default and Mandatory are passed, only Default is shown.
	f.Mandatory = true
	converted = convertByType(f)
	assert.Equal(t, expected, converted.String())
}

func TestConvertStringFlagMandatory(t *testing.T) {
	f := StringFlag{
		Name:        "string-flag",
		Description: "This is how you use it.",
		Mandatory:   true,
	}
	converted := convertByType(f)
	assert.Equal(t, "--string-flag  \t[Mandatory] This is how you use it.", converted.String())

	// Test optional.
	f.Mandatory = false
	converted = convertByType(f)
	assert.Equal(t, "--string-flag  \t[Optional] This is how you use it.", converted.String())
}

func TestConvertedCommandSkipsFlagParsing(t *testing.T) {
	cmd := Command{
		Name:  "test-command",
		Flags: []Flag{StringFlag{Name: "project", ShortName: "p"}},
	}
	converted := convertCommand(cmd, NewOptionRegistry())
	assert.True(t, converted.SkipFlagParsing)
	assert.Len(t, converted.Flags, 1)
}

func TestCreateCommandUsage(t *testing.T) {
	cmd := Command{
		Name:  "test-command",
		Flags: []Flag{StringFlag{Name: "dummy-flag"}},
	}
	assert.Equal(t, []string{"keycloakify test-command [command options]"}, createCommandUsage(cmd))

	cmd.Flags = nil
	assert.Equal(t, []string{"keycloakify test-command"}, createCommandUsage(cmd))
}

func TestGetValueForStringFlag(t *testing.T) {
	f := StringFlag{
		Name:        "string-flag",
		Description: "This is how you use it.",
		Mandatory:   false,
	}

	// Not received, no default or mandatory.
	finalValue, err := getValueForStringFlag(f, suppliedOption{}, false)
	assert.NoError(t, err)
	assert.Empty(t, finalValue)

	// Not received, no default but mandatory.
	f.Mandatory = true
	_, err = getValueForStringFlag(f, suppliedOption{}, false)
	assert.Error(t, err)

	// Not received, verify default is taken.
	f.DefaultValue = "default"
	finalValue, err = getValueForStringFlag(f, suppliedOption{}, false)
	assert.NoError(t, err)
	assert.Equal(t, f.DefaultValue, finalValue)

	// Received, verify default is ignored.
	expected := "value"
	finalValue, err = getValueForStringFlag(f, suppliedOption{Key: f.Name, Value: expected, HasValue: true}, true)
	assert.NoError(t, err)
	assert.Equal(t, expected, finalValue)

	// Received without a value.
	_, err = getValueForStringFlag(f, suppliedOption{Key: f.Name}, true)
	assert.Error(t, err)
}

func TestFillFlagMaps(t *testing.T) {
	cmd := Command{
		Name: "test-command",
		Flags: []Flag{
			StringFlag{Name: "project", ShortName: "p"},
			IntFlag{Name: "port", DefaultValue: 8080},
			BoolFlag{Name: "verbose"},
		},
	}

	options, positional := parseRawArgs([]string{"-p", "foo", "--verbose"})
	c, err := fillFlagMaps(cmd, options, positional)
	require.NoError(t, err)

	// Short form fills the long key.
	assert.Equal(t, "foo", c.GetStringFlagValue("project"))
	assert.True(t, c.IsFlagSet("project"))

	// Not supplied, the default wins.
	assert.Equal(t, 8080, c.GetIntFlagValue("port"))
	assert.False(t, c.IsFlagSet("port"))

	assert.True(t, c.GetBoolFlagValue("verbose"))
}

func TestFillFlagMapsIgnoresOtherCommandsTokens(t *testing.T) {
	cmd := Command{
		Name:  "test-command",
		Flags: []Flag{StringFlag{Name: "project", ShortName: "p"}},
	}

	// A token belonging to another catalog command passes validation but is
	// not visible to this command's context.
	options, positional := parseRawArgs([]string{"--file", "x", "--project", "foo"})
	c, err := fillFlagMaps(cmd, options, positional)
	require.NoError(t, err)
	assert.Equal(t, "foo", c.GetStringFlagValue("project"))
	assert.Empty(t, c.GetStringFlagValue("file"))
	assert.False(t, c.IsFlagSet("file"))
}

func TestFillFlagMapsRejectsBadIntValue(t *testing.T) {
	cmd := Command{
		Name:  "test-command",
		Flags: []Flag{IntFlag{Name: "port", DefaultValue: 8080}},
	}
	options, positional := parseRawArgs([]string{"--port", "not-a-number"})
	_, err := fillFlagMaps(cmd, options, positional)
	assert.Error(t, err)
}
