package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{`  _ __ ___   __ _ _ __  _   _  __ _| |/ _|___ _ __ ___  `, "#818cf8"},
	{` | '_ ' _ \ / _' | '_ \| | | |/ _' | | |_/ __| '_ ' _ \ `, "#a78bfa"},
	{` | | | | | | (_| | | | | |_| | (_| | |  _\__ \ | | | | |`, "#e879f9"},
	{` |_| |_| |_|\__,_|_| |_|\__,_|\__,_|_|_| |___/_| |_| |_|`, "#fb7185"},
}

// PrintBanner writes the ASCII banner in the terminal's color profile.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
