package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/timofei-iatsenko/keycloakify/common/project"
	"github.com/timofei-iatsenko/keycloakify/utils/coreutils"
	"github.com/timofei-iatsenko/keycloakify/utils/ioutils"
	"github.com/timofei-iatsenko/keycloakify/utils/log"
)

type InitializeEmailThemeCommand struct {
	buildContext *project.BuildContext
}

func NewInitializeEmailThemeCommand() *InitializeEmailThemeCommand {
	return &InitializeEmailThemeCommand{}
}

func (ietc *InitializeEmailThemeCommand) SetBuildContext(buildContext *project.BuildContext) *InitializeEmailThemeCommand {
	ietc.buildContext = buildContext
	return ietc
}

func (ietc *InitializeEmailThemeCommand) CommandName() string {
	return "initialize-email-theme"
}

func (ietc *InitializeEmailThemeCommand) Run() error {
	emailThemeDirPath := filepath.Join(ietc.buildContext.ProjectDirPath, "src", "email")
	dirExists, err := ioutils.IsDirExists(emailThemeDirPath)
	if err != nil {
		return err
	}
	if dirExists {
		return fmt.Errorf("an email theme has already been initialized at %s", emailThemeDirPath)
	}
	if err := scaffoldThemeDir(emailThemeDirPath, emailThemeStarterFiles); err != nil {
		return err
	}
	log.Info(coreutils.PrintTitle("✔") + " email theme initialized at " + emailThemeDirPath)
	return nil
}

var emailThemeStarterFiles = map[string]string{
	"theme.properties": "parent=base\n",
	"html/email-test.ftl": `<#import "template.ftl" as layout>
<@layout.emailLayout>
This is a test message from the Keycloakify email theme.
</@layout.emailLayout>
`,
}

func scaffoldThemeDir(themeDirPath string, starterFiles map[string]string) error {
	for relativePath, content := range starterFiles {
		filePath := filepath.Join(themeDirPath, filepath.FromSlash(relativePath))
		if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}
