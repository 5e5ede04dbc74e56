package commands

import (
	"github.com/timofei-iatsenko/keycloakify/common/project"
	"github.com/timofei-iatsenko/keycloakify/utils/log"
)

type PostInstallCommand struct {
	buildContext *project.BuildContext
}

func NewPostInstallCommand() *PostInstallCommand {
	return &PostInstallCommand{}
}

func (pic *PostInstallCommand) SetBuildContext(buildContext *project.BuildContext) *PostInstallCommand {
	pic.buildContext = buildContext
	return pic
}

func (pic *PostInstallCommand) CommandName() string {
	return "postinstall"
}

func (pic *PostInstallCommand) Run() error {
	uiModuleNames := pic.buildContext.InstalledUiModuleNames
	if len(uiModuleNames) == 0 {
		log.Debug("No Keycloakify UI module installed, nothing to initialize")
		return nil
	}
	for _, uiModuleName := range uiModuleNames {
		log.Info("Initializing UI module ", uiModuleName)
	}
	return nil
}
