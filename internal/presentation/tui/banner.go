package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the Ribbon ASCII art banner.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{"  ____  _ _     _                 ", "#818cf8"},
		{" |  _ \\(_) |__ | |__   ___  _ __  ", "#a78bfa"},
		{" | |_) | | '_ \\| '_ \\ / _ \\| '_ \\ ", "#c084fc"},
		{" |  _ <| | |_) | |_) | (_) | | | |", "#e879f9"},
		{" |_| \\_\\_|_.__/|_.__/ \\___/|_| |_|", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}
