package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timofei-iatsenko/keycloakify/common/project"
)

func TestCreateKcGenContent(t *testing.T) {
	ukgc := NewUpdateKcGenCommand().SetBuildContext(&project.BuildContext{
		ThemeNames: []string{"my-theme", "my-theme-variant"},
	})
	content := string(ukgc.createKcGenContent())
	assert.Contains(t, content, `export type ThemeName = "my-theme" | "my-theme-variant";`)
	assert.Contains(t, content, `export const themeNames: ThemeName[] = ["my-theme", "my-theme-variant"];`)
}

func TestUpdateKcGenWritesAndIsIdempotent(t *testing.T) {
	projectDir := t.TempDir()
	ukgc := NewUpdateKcGenCommand().SetBuildContext(&project.BuildContext{
		ProjectDirPath: projectDir,
		ThemeNames:     []string{"my-theme"},
	})

	require.NoError(t, ukgc.Run())
	kcGenPath := filepath.Join(projectDir, "src", "kc.gen.tsx")
	firstContent, err := os.ReadFile(kcGenPath)
	require.NoError(t, err)

	// A second run with the same configuration leaves the file untouched.
	require.NoError(t, ukgc.Run())
	secondContent, err := os.ReadFile(kcGenPath)
	require.NoError(t, err)
	assert.Equal(t, firstContent, secondContent)
}
