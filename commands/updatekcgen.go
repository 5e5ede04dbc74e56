package commands

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/timofei-iatsenko/keycloakify/common/project"
	"github.com/timofei-iatsenko/keycloakify/utils/coreutils"
	"github.com/timofei-iatsenko/keycloakify/utils/log"
)

type UpdateKcGenCommand struct {
	buildContext *project.BuildContext
}

func NewUpdateKcGenCommand() *UpdateKcGenCommand {
	return &UpdateKcGenCommand{}
}

func (ukgc *UpdateKcGenCommand) SetBuildContext(buildContext *project.BuildContext) *UpdateKcGenCommand {
	ukgc.buildContext = buildContext
	return ukgc
}

func (ukgc *UpdateKcGenCommand) CommandName() string {
	return "update-kc-gen"
}

func (ukgc *UpdateKcGenCommand) Run() error {
	kcGenPath := filepath.Join(ukgc.buildContext.ProjectDirPath, "src", coreutils.KcGenFileName)
	newContent := ukgc.createKcGenContent()

	currentContent, err := os.ReadFile(kcGenPath)
	if err == nil && bytes.Equal(currentContent, newContent) {
		log.Debug(coreutils.KcGenFileName, " is already up to date")
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(kcGenPath), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(kcGenPath, newContent, 0644); err != nil {
		return err
	}
	log.Info(coreutils.KcGenFileName, " updated at ", kcGenPath)
	return nil
}

func (ukgc *UpdateKcGenCommand) createKcGenContent() []byte {
	var content bytes.Buffer
	content.WriteString("/* This file is auto-generated by the `update-kc-gen` command. Do not edit it manually. */\n\n")
	content.WriteString("export type ThemeName =")
	for i, themeName := range ukgc.buildContext.ThemeNames {
		if i > 0 {
			content.WriteString(" |")
		}
		content.WriteString(" \"" + themeName + "\"")
	}
	content.WriteString(";\n\n")
	content.WriteString("export const themeNames: ThemeName[] = [")
	for i, themeName := range ukgc.buildContext.ThemeNames {
		if i > 0 {
			content.WriteString(", ")
		}
		content.WriteString("\"" + themeName + "\"")
	}
	content.WriteString("];\n")
	return content.Bytes()
}
