package commands

import (
	"os"
	"path/filepath"

	"github.com/timofei-iatsenko/keycloakify/common/project"
	"github.com/timofei-iatsenko/keycloakify/utils/log"
)

type BuildCommand struct {
	buildContext *project.BuildContext
}

func NewBuildCommand() *BuildCommand {
	return &BuildCommand{}
}

func (bc *BuildCommand) SetBuildContext(buildContext *project.BuildContext) *BuildCommand {
	bc.buildContext = buildContext
	return bc
}

func (bc *BuildCommand) CommandName() string {
	return "build"
}

func (bc *BuildCommand) Run() error {
	log.Info("Building the Keycloak theme...")
	for _, themeName := range bc.buildContext.ThemeNames {
		log.Debug("Bundling theme variant: ", themeName)
		themeDirPath := filepath.Join(bc.buildContext.BuildDirPath, "theme", themeName)
		if err := os.MkdirAll(themeDirPath, 0755); err != nil {
			return err
		}
	}
	log.Info("Theme built into ", bc.buildContext.BuildDirPath)
	return nil
}
