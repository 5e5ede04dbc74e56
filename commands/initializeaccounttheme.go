package commands

import (
	"fmt"
	"path/filepath"

	"github.com/timofei-iatsenko/keycloakify/common/project"
	"github.com/timofei-iatsenko/keycloakify/utils/coreutils"
	"github.com/timofei-iatsenko/keycloakify/utils/ioutils"
	"github.com/timofei-iatsenko/keycloakify/utils/log"
)

type InitializeAccountThemeCommand struct {
	buildContext *project.BuildContext
}

func NewInitializeAccountThemeCommand() *InitializeAccountThemeCommand {
	return &InitializeAccountThemeCommand{}
}

func (iatc *InitializeAccountThemeCommand) SetBuildContext(buildContext *project.BuildContext) *InitializeAccountThemeCommand {
	iatc.buildContext = buildContext
	return iatc
}

func (iatc *InitializeAccountThemeCommand) CommandName() string {
	return "initialize-account-theme"
}

func (iatc *InitializeAccountThemeCommand) Run() error {
	accountThemeDirPath := filepath.Join(iatc.buildContext.ProjectDirPath, "src", "account")
	dirExists, err := ioutils.IsDirExists(accountThemeDirPath)
	if err != nil {
		return err
	}
	if dirExists {
		return fmt.Errorf("an account theme has already been initialized at %s", accountThemeDirPath)
	}
	if err := scaffoldThemeDir(accountThemeDirPath, accountThemeStarterFiles); err != nil {
		return err
	}
	log.Info(coreutils.PrintTitle("✔") + " account theme initialized at " + accountThemeDirPath)
	return nil
}

var accountThemeStarterFiles = map[string]string{
	"KcPage.tsx": `import { Suspense } from "react";
import type { KcContext } from "./KcContext";
import DefaultPage from "keycloakify/account/DefaultPage";

export default function KcPage(props: { kcContext: KcContext }) {
    const { kcContext } = props;
    return (
        <Suspense>
            <DefaultPage kcContext={kcContext} />
        </Suspense>
    );
}
`,
	"KcContext.ts": `import type { ExtendKcContext } from "keycloakify/account";

export type KcContext = ExtendKcContext<{}>;
`,
}
