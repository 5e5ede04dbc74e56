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

type AddStoryCommand struct {
	buildContext *project.BuildContext
}

func NewAddStoryCommand() *AddStoryCommand {
	return &AddStoryCommand{}
}

func (asc *AddStoryCommand) SetBuildContext(buildContext *project.BuildContext) *AddStoryCommand {
	asc.buildContext = buildContext
	return asc
}

func (asc *AddStoryCommand) CommandName() string {
	return "add-story"
}

func (asc *AddStoryCommand) Run() error {
	pageId, err := ioutils.SelectString(ejectablePageIds, "Select the page you want a story for")
	if err != nil {
		return err
	}
	componentName := pageIdToComponentName(pageId)
	destPath := filepath.Join(asc.buildContext.ProjectDirPath, "src", "login", "pages", componentName+".stories.tsx")
	destExists, err := ioutils.IsFileExists(destPath)
	if err != nil {
		return err
	}
	if destExists {
		return fmt.Errorf("a story for the %s page already exists at %s", pageId, destPath)
	}
	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(destPath, []byte(createStoryFileContent(pageId)), 0644); err != nil {
		return err
	}
	log.Info(coreutils.PrintTitle("✔") + " story for " + pageId + " created at " + destPath)
	return nil
}

func createStoryFileContent(pageId string) string {
	return `import type { Meta, StoryObj } from "@storybook/react";
import { createKcPageStory } from "../KcPageStory";

const { KcPageStory } = createKcPageStory({ pageId: "` + pageId + `" });

const meta = {
    title: "login/` + pageId + `",
    component: KcPageStory
} satisfies Meta<typeof KcPageStory>;

export default meta;

type Story = StoryObj<typeof meta>;

export const Default: Story = {
    render: () => <KcPageStory />
};
`
}
