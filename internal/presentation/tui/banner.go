package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the turtlebench banner and version to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.EnvColorProfile()
	// Green shell shades, top to bottom
	lines := []struct {
		text  string
		color string
	}{
		{"  _             _   _      _                     _     ", "#4ade80"},
		{" | |_ _   _ _ _| |_| | ___| |__   ___ _ __   ___| |__  ", "#34d399"},
		{" | __| | | | '_|  _| |/ _ \\ '_ \\ / _ \\ '_ \\ / __| '_ \\ ", "#2dd4bf"},
		{" | |_| |_| | | | |_| |  __/ |_) |  __/ | | | (__| | | |", "#22d3ee"},
		{"  \\__|\\__,_|_|  \\__|_|\\___|_.__/ \\___|_| |_|\\___|_| |_|", "#38bdf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String(fmt.Sprintf("  %s", version)).Faint())
	fmt.Fprintln(w)
}
