package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timofei-iatsenko/keycloakify/components"
)

var expectedCommandNames = []string{
	"build",
	"start-keycloak",
	"eject-page",
	"add-story",
	"initialize-email-theme",
	"initialize-account-theme",
	"copy-keycloak-resources-to-public",
	"update-kc-gen",
	"postinstall",
	"eject-file",
}

func TestGetCommandsCatalog(t *testing.T) {
	catalog := GetCommands()
	require.Len(t, catalog, len(expectedCommandNames))
	for i, cmd := range catalog {
		assert.Equal(t, expectedCommandNames[i], cmd.Name)
		assert.NotEmpty(t, cmd.Description)
		assert.NotNil(t, cmd.Action)
	}
}

// The --project/-p option is available on every command of the catalog.
func TestEveryCommandCarriesProjectFlag(t *testing.T) {
	for _, cmd := range GetCommands() {
		found := false
		for _, flag := range cmd.Flags {
			if flag.GetName() == projectFlagName {
				assert.Equal(t, "p", flag.GetShortName(), cmd.Name)
				found = true
			}
		}
		assert.True(t, found, cmd.Name)
	}
}

func TestStartKeycloakCommandFlags(t *testing.T) {
	cmd := findCommand(t, "start-keycloak")
	flagNames := map[string]components.Flag{}
	for _, flag := range cmd.Flags {
		flagNames[flag.GetName()] = flag
	}
	require.Contains(t, flagNames, portFlagName)
	require.Contains(t, flagNames, keycloakVersionFlagName)
	require.Contains(t, flagNames, importFlagName)

	portFlag, ok := flagNames[portFlagName].(components.IntFlag)
	require.True(t, ok)
	assert.Equal(t, DefaultKeycloakPort, portFlag.DefaultValue)
}

func TestEjectFileCommandFileFlagIsMandatory(t *testing.T) {
	cmd := findCommand(t, "eject-file")
	for _, flag := range cmd.Flags {
		if flag.GetName() != fileFlagName {
			continue
		}
		fileFlag, ok := flag.(components.StringFlag)
		require.True(t, ok)
		assert.True(t, fileFlag.Mandatory)
		return
	}
	t.Fatalf("the eject-file command does not declare the --%s flag", fileFlagName)
}

func findCommand(t *testing.T, name string) components.Command {
	for _, cmd := range GetCommands() {
		if cmd.Name == name {
			return cmd
		}
	}
	t.Fatalf("command %s not found in the catalog", name)
	return components.Command{}
}
