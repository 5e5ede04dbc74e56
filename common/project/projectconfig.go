package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"github.com/timofei-iatsenko/keycloakify/utils/coreutils"
)

const (
	keycloakifyConfigKey = "keycloakify"
	themeNameKey         = keycloakifyConfigKey + ".themeName"
	buildDirPathKey      = keycloakifyConfigKey + ".keycloakifyBuildDirPath"
	publicDirPathKey     = keycloakifyConfigKey + ".publicDirPath"
)

// BuildContext describes the project a command operates on. It is resolved
// once per invocation, after option validation, and handed to the selected
// command.
type BuildContext struct {
	ProjectDirPath         string
	ThemeNames             []string
	BuildDirPath           string
	PublicDirPath          string
	InstalledUiModuleNames []string
}

// GetBuildContext resolves the project directory (the --project option
// value, or the working directory when empty) and reads the keycloakify
// build options from the project's package.json.
func GetBuildContext(projectPath string) (*BuildContext, error) {
	projectDirPath, err := resolveProjectDirPath(projectPath)
	if err != nil {
		return nil, err
	}

	packageJsonPath := filepath.Join(projectDirPath, coreutils.PackageJsonFileName)
	vConfig := viper.New()
	vConfig.SetConfigFile(packageJsonPath)
	vConfig.SetConfigType("json")
	if err := vConfig.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed reading %s: %w", packageJsonPath, err)
	}

	buildDirPath := vConfig.GetString(buildDirPathKey)
	coreutils.SetIfEmpty(&buildDirPath, coreutils.DefaultBuildDirName)
	publicDirPath := vConfig.GetString(publicDirPathKey)
	coreutils.SetIfEmpty(&publicDirPath, coreutils.DefaultPublicDirName)

	return &BuildContext{
		ProjectDirPath:         projectDirPath,
		ThemeNames:             readThemeNames(vConfig),
		BuildDirPath:           filepath.Join(projectDirPath, buildDirPath),
		PublicDirPath:          filepath.Join(projectDirPath, publicDirPath),
		InstalledUiModuleNames: readInstalledUiModuleNames(vConfig),
	}, nil
}

func resolveProjectDirPath(projectPath string) (string, error) {
	if projectPath == "" {
		workingDir, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return workingDir, nil
	}
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return "", err
	}
	dirExists, err := isDir(absPath)
	if err != nil {
		return "", err
	}
	if !dirExists {
		return "", fmt.Errorf("the provided project path %s is not a directory", absPath)
	}
	return absPath, nil
}

// The themeName build option accepts either a single string or a list of
// theme variant names. The first entry is the main theme name.
func readThemeNames(vConfig *viper.Viper) []string {
	switch themeName := vConfig.Get(themeNameKey).(type) {
	case string:
		if themeName != "" {
			return []string{themeName}
		}
	case []interface{}:
		if names := cast.ToStringSlice(themeName); len(names) > 0 {
			return names
		}
	}
	return []string{coreutils.DefaultThemeName}
}

// UI modules are regular npm dependencies living under the keycloakify
// namespace.
func readInstalledUiModuleNames(vConfig *viper.Viper) []string {
	var moduleNames []string
	for _, dependenciesKey := range []string{"dependencies", "devDependencies"} {
		for dependencyName := range vConfig.GetStringMapString(dependenciesKey) {
			if strings.HasPrefix(dependencyName, coreutils.UiModuleNamespace) {
				moduleNames = append(moduleNames, dependencyName)
			}
		}
	}
	sort.Strings(moduleNames)
	return moduleNames
}

func isDir(path string) (bool, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return fileInfo.IsDir(), nil
}
