// Package prompt asks the user for the single go/no-go confirmation before
// installers are executed.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/honeybugserial/vcpp-aio-auto/internal/messages"
	"github.com/honeybugserial/vcpp-aio-auto/internal/terminal"
)

// Confirmer asks a yes/no question and reports the answer.
type Confirmer interface {
	Confirm(title string) (bool, error)
}

// runFormFunc is a seam for tests.
var runFormFunc = func(form *huh.Form) error { return form.Run() }

// ConsoleConfirmer renders a huh confirm form on an interactive terminal and
// falls back to a plain [Y/n] line read otherwise.
type ConsoleConfirmer struct {
	In  io.Reader
	Out io.Writer
	// IsTerminal defaults to terminal.IsInteractive when nil.
	IsTerminal func() bool
}

// Confirm asks title and returns the user's answer. Only an explicit yes
// counts as accepted.
func (c ConsoleConfirmer) Confirm(title string) (bool, error) {
	checker := c.IsTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if checker() {
		return c.confirmForm(title)
	}
	return c.confirmLine(title)
}

func (c ConsoleConfirmer) confirmForm(title string) (bool, error) {
	var accepted bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Value(&accepted),
		),
	)
	if err := runFormFunc(form); err != nil {
		return false, err
	}
	return accepted, nil
}

// confirmLine reads the answer from In, mirroring the console prompt used
// when no TTY is attached. Only an explicit y/yes accepts; an empty line
// declines, matching the form path's decline default.
func (c ConsoleConfirmer) confirmLine(title string) (bool, error) {
	_, _ = fmt.Fprintf(c.Out, "%s [y/N]: ", title)
	line, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && line == "" {
		return false, fmt.Errorf(messages.InstallPromptReadError, err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
