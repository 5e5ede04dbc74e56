package ioutils

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/manifoldco/promptui"
	"github.com/timofei-iatsenko/keycloakify/utils/coreutils"
)

const selectableItemTemplate = " {{ . | cyan }}"

func errNonInteractiveTerminal(label string) error {
	return fmt.Errorf("cannot prompt %q: standard output is not an interactive terminal", label)
}

// Prompts the user to select a single item from the provided list.
// Returns the selected item.
func SelectString(items []string, label string) (string, error) {
	if !coreutils.IsStdOutTerminal() {
		return "", errNonInteractiveTerminal(label)
	}
	selectableList := createSelectableList(len(items), label, selectableItemTemplate)
	selectableList.Items = items
	selectableList.StartInSearchMode = len(items) > 10
	selectableList.Searcher = func(input string, index int) bool {
		return strings.Contains(strings.ToLower(items[index]), strings.ToLower(input))
	}
	i, _, err := selectableList.Run()
	if err != nil {
		return "", err
	}
	return items[i], nil
}

func createSelectableList(numOfItems int, label, itemTemplate string) *promptui.Select {
	selectionIcon := ">"
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   selectionIcon + itemTemplate,
		Inactive: "  " + itemTemplate,
	}
	return &promptui.Select{
		Label:        label,
		Templates:    templates,
		Stdout:       &bellSkipper{},
		HideSelected: true,
		Size:         numOfItems,
	}
}

// On macOS the terminal's bell is ringing when trying to select items using the up and down arrows.
// By using bellSkipper the issue is resolved.
type bellSkipper struct{ io.WriteCloser }

var charBell = []byte{readline.CharBell}

func (bs *bellSkipper) Write(b []byte) (int, error) {
	if bytes.Equal(b, charBell) {
		return 0, nil
	}
	return os.Stderr.Write(b)
}

func (bs *bellSkipper) Close() error {
	return os.Stderr.Close()
}
