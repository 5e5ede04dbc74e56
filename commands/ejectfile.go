package commands

import (
	"fmt"
	"path/filepath"

	"github.com/timofei-iatsenko/keycloakify/common/project"
	"github.com/timofei-iatsenko/keycloakify/utils/coreutils"
	"github.com/timofei-iatsenko/keycloakify/utils/ioutils"
	"github.com/timofei-iatsenko/keycloakify/utils/log"
)

type EjectFileCommand struct {
	buildContext     *project.BuildContext
	relativeFilePath string
}

func NewEjectFileCommand() *EjectFileCommand {
	return &EjectFileCommand{}
}

func (efc *EjectFileCommand) SetBuildContext(buildContext *project.BuildContext) *EjectFileCommand {
	efc.buildContext = buildContext
	return efc
}

func (efc *EjectFileCommand) SetRelativeFilePath(relativeFilePath string) *EjectFileCommand {
	efc.relativeFilePath = relativeFilePath
	return efc
}

func (efc *EjectFileCommand) CommandName() string {
	return "eject-file"
}

func (efc *EjectFileCommand) Run() error {
	relativeFilePath := filepath.FromSlash(efc.relativeFilePath)
	destPath := filepath.Join(efc.buildContext.ProjectDirPath, "src", relativeFilePath)
	destExists, err := ioutils.IsFileExists(destPath)
	if err != nil {
		return err
	}
	if destExists {
		return fmt.Errorf("you already own %s", destPath)
	}

	srcPath := filepath.Join(
		efc.buildContext.ProjectDirPath,
		coreutils.NodeModulesDirName,
		coreutils.KeycloakifyModuleDirName,
		"src", relativeFilePath,
	)
	srcExists, err := ioutils.IsFileExists(srcPath)
	if err != nil {
		return err
	}
	if !srcExists {
		return fmt.Errorf("%s is not a file of the theme, expected it at %s", efc.relativeFilePath, srcPath)
	}
	if err := ioutils.CopyFile(srcPath, destPath); err != nil {
		return err
	}
	log.Info(coreutils.PrintTitle("✔") + " " + efc.relativeFilePath + " is now yours, edit it at " + destPath)
	return nil
}
