package cli

import (
	"errors"
	"os"
	"os/exec"
	"strings"
)

const defaultCommandName = "build"

// ShouldRouteToDefault decides, from the raw arguments following the
// program path, whether the invocation should be re-run with the implicit
// default command. That is the case when no argument was given at all, or
// when the first argument is a bare option token. An explicit help flag is
// exempted so that top-level help stays reachable.
func ShouldRouteToDefault(rest []string) bool {
	if len(rest) == 0 {
		return true
	}
	first := rest[0]
	return strings.HasPrefix(first, "-") && first != "--help" && first != "-h"
}

// RouteToDefault re-spawns this CLI with the default command inserted in
// front of the original arguments, the child's stdio inherited from this
// process. It blocks until the child terminates and returns the status the
// current process should exit with: the child's exit code, or 1 when no
// usable status is available.
func RouteToDefault(rest []string) int {
	executablePath, err := os.Executable()
	if err != nil {
		executablePath = os.Args[0]
	}
	cmd := exec.Command(executablePath, append([]string{defaultCommandName}, rest...)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			return exitErr.ExitCode()
		}
		return 1
	}
	return 0
}
