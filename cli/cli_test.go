package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timofei-iatsenko/keycloakify/utils/tests"
)

func newTestCli() *tests.KeycloakifyCli {
	return tests.NewKeycloakifyCli(func() error { return RunCli(os.Args) }, "keycloakify")
}

func createTestProject(t *testing.T, packageJsonContent string) string {
	t.Helper()
	projectDir := t.TempDir()
	err := os.WriteFile(filepath.Join(projectDir, "package.json"), []byte(packageJsonContent), 0644)
	require.NoError(t, err)
	return projectDir
}

func TestRunCliBuildCommand(t *testing.T) {
	projectDir := createTestProject(t, `{"keycloakify": {"themeName": "my-theme"}}`)
	require.NoError(t, newTestCli().Exec("build", "--project", projectDir))

	themeDir := filepath.Join(projectDir, "dist_keycloak", "theme", "my-theme")
	stat, err := os.Stat(themeDir)
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}

func TestRunCliUpdateKcGenCommand(t *testing.T) {
	projectDir := createTestProject(t, `{"keycloakify": {"themeName": ["a", "b"]}}`)
	require.NoError(t, newTestCli().Exec("update-kc-gen", "-p", projectDir))

	content, err := os.ReadFile(filepath.Join(projectDir, "src", "kc.gen.tsx"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `export type ThemeName = "a" | "b";`)
}

// Repeated identical invocations produce the same dispatch decision: no
// state is carried between runs.
func TestRunCliDispatchIsIdempotent(t *testing.T) {
	projectDir := createTestProject(t, `{}`)
	kcCli := newTestCli()
	require.NoError(t, kcCli.Exec("update-kc-gen", "--project", projectDir))
	require.NoError(t, kcCli.Exec("update-kc-gen", "--project", projectDir))
}

func TestRunCliEjectFileRequiresFileFlag(t *testing.T) {
	projectDir := createTestProject(t, `{}`)
	err := newTestCli().Exec("eject-file", "--project", projectDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Mandatory flag 'file' is missing")
}
