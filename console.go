package framefmt

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// terminalSize measures the attached terminal. It returns (0, 0) in
// non-interactive contexts, which downstream means "no wrapping".
func terminalSize() (width, height int) {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return 0, 0
	}
	w, h, err := term.GetSize(int(fd))
	if err != nil {
		return 0, 0
	}
	return w, h
}

// ConsoleSize returns the console (width, height) to lay output into:
// explicit display.width/display.height settings win, the terminal is
// measured when stdout is interactive, and (0, 0) is reported
// otherwise.
func ConsoleSize(opts *Options) (width, height int) {
	width = opts.intOr(OptWidth, 0)
	height = opts.intOr(OptHeight, 0)
	if width > 0 && height > 0 {
		return width, height
	}
	tw, th := terminalSize()
	if width == 0 {
		width = tw
	}
	if height == 0 {
		height = th
	}
	return width, height
}
