package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the Frontier banner in a violet-to-rose gradient.
func PrintBanner(w io.Writer, p termenv.Profile) {
	lines := []struct {
		text  string
		color string
	}{
		{"  _____                 _   _", "#818cf8"},
		{" |  ___| __ ___  _ __ | |_(_) ___ _ __", "#a78bfa"},
		{" | |_ | '__/ _ \\| '_ \\| __| |/ _ \\ '__|", "#c084fc"},
		{" |  _|| | | (_) | | | | |_| |  __/ |", "#e879f9"},
		{" |_|  |_|  \\___/|_| |_|\\__|_|\\___|_|", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
