package commands

import (
	"fmt"
	"path/filepath"

	"github.com/timofei-iatsenko/keycloakify/common/project"
	"github.com/timofei-iatsenko/keycloakify/utils/coreutils"
	"github.com/timofei-iatsenko/keycloakify/utils/ioutils"
	"github.com/timofei-iatsenko/keycloakify/utils/log"
)

// Pages of the login theme that can be ejected for customization.
var ejectablePageIds = []string{
	"login.ftl",
	"register.ftl",
	"terms.ftl",
	"error.ftl",
	"info.ftl",
	"login-reset-password.ftl",
	"login-update-password.ftl",
	"login-update-profile.ftl",
	"login-otp.ftl",
	"login-idp-link-confirm.ftl",
	"logout-confirm.ftl",
	"select-authenticator.ftl",
}

type EjectPageCommand struct {
	buildContext *project.BuildContext
}

func NewEjectPageCommand() *EjectPageCommand {
	return &EjectPageCommand{}
}

func (epc *EjectPageCommand) SetBuildContext(buildContext *project.BuildContext) *EjectPageCommand {
	epc.buildContext = buildContext
	return epc
}

func (epc *EjectPageCommand) CommandName() string {
	return "eject-page"
}

func (epc *EjectPageCommand) Run() error {
	pageId, err := ioutils.SelectString(ejectablePageIds, "Select the page you want to eject")
	if err != nil {
		return err
	}
	componentName := pageIdToComponentName(pageId)
	destPath := filepath.Join(epc.buildContext.ProjectDirPath, "src", "login", "pages", componentName+".tsx")
	destExists, err := ioutils.IsFileExists(destPath)
	if err != nil {
		return err
	}
	if destExists {
		return fmt.Errorf("the page %s has already been ejected into %s", pageId, destPath)
	}

	srcPath := filepath.Join(
		epc.buildContext.ProjectDirPath,
		coreutils.NodeModulesDirName,
		coreutils.KeycloakifyModuleDirName,
		"src", "login", "pages", componentName+".tsx",
	)
	srcExists, err := ioutils.IsFileExists(srcPath)
	if err != nil {
		return err
	}
	if !srcExists {
		return fmt.Errorf("cannot find the source of the %s page, expected it at %s", pageId, srcPath)
	}
	if err := ioutils.CopyFile(srcPath, destPath); err != nil {
		return err
	}
	log.Info(coreutils.PrintTitle("✔") + " " + pageId + " ejected into " + destPath)
	return nil
}

// Maps a page id like "login-reset-password.ftl" to its component name,
// "LoginResetPassword".
func pageIdToComponentName(pageId string) string {
	var componentName []rune
	upperNext := true
	for _, char := range pageId {
		switch {
		case char == '.':
			return string(componentName)
		case char == '-':
			upperNext = true
		case upperNext && char >= 'a' && char <= 'z':
			componentName = append(componentName, char-'a'+'A')
			upperNext = false
		default:
			componentName = append(componentName, char)
			upperNext = false
		}
	}
	return string(componentName)
}
