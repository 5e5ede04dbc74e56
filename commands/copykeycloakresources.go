package commands

import (
	"fmt"
	"path/filepath"

	"github.com/timofei-iatsenko/keycloakify/common/project"
	"github.com/timofei-iatsenko/keycloakify/utils/coreutils"
	"github.com/timofei-iatsenko/keycloakify/utils/ioutils"
	"github.com/timofei-iatsenko/keycloakify/utils/log"
)

type CopyKeycloakResourcesCommand struct {
	buildContext *project.BuildContext
}

func NewCopyKeycloakResourcesCommand() *CopyKeycloakResourcesCommand {
	return &CopyKeycloakResourcesCommand{}
}

func (ckrc *CopyKeycloakResourcesCommand) SetBuildContext(buildContext *project.BuildContext) *CopyKeycloakResourcesCommand {
	ckrc.buildContext = buildContext
	return ckrc
}

func (ckrc *CopyKeycloakResourcesCommand) CommandName() string {
	return "copy-keycloak-resources-to-public"
}

func (ckrc *CopyKeycloakResourcesCommand) Run() error {
	srcDirPath := filepath.Join(
		ckrc.buildContext.ProjectDirPath,
		coreutils.NodeModulesDirName,
		coreutils.KeycloakifyModuleDirName,
		coreutils.ResourcesDirName,
		coreutils.PublicResourcesDirName,
	)
	srcExists, err := ioutils.IsDirExists(srcDirPath)
	if err != nil {
		return err
	}
	if !srcExists {
		return fmt.Errorf("cannot find the bundled Keycloak resources, expected them at %s", srcDirPath)
	}
	destDirPath := filepath.Join(ckrc.buildContext.PublicDirPath, coreutils.KeycloakResourcesDirName)
	if err := ioutils.CopyDir(srcDirPath, destDirPath); err != nil {
		return err
	}
	log.Info("Keycloak resources copied into ", destDirPath)
	return nil
}
