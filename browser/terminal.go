// SPDX-License-Identifier: EPL-2.0

package browser

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ncruces/zenity"
	"golang.org/x/term"
)

// ZenityPicker opens the desktop file dialog filtered to CSV files.
func ZenityPicker() (string, error) {
	path, err := zenity.SelectFile(
		zenity.Title("Select annotation file"),
		zenity.FileFilters{
			{Name: "CSV files", Patterns: []string{"*.csv"}, CaseFold: true},
		},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w", err)
	}
	return path, nil
}

// RunTerminal runs b on the process terminal, switching stdin to raw mode
// for the duration when it is a terminal.
func RunTerminal(ctx context.Context, b *Browser) error {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("entering raw mode: %w", err)
		}
		defer term.Restore(fd, state)
	}

	err := b.Run(ctx)
	os.Stdout.WriteString("\x1b[2J\x1b[H")
	return err
}
