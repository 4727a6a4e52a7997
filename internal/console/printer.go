// Package console holds the terminal side of hidewords: prompting for input
// and printing results in color.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-colorable"
	"github.com/muesli/termenv"

	"go.klb.dev/hidewords/internal/codec"
	"go.klb.dev/hidewords/internal/logging"
)

// ColorMode controls whether output is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode converts a flag value to a ColorMode, defaulting to auto.
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(s) {
	case "always", "on", "true":
		return ColorAlways
	case "never", "off", "false":
		return ColorNever
	default:
		return ColorAuto
	}
}

// Palette.
var (
	colorNotice   = lipgloss.Color("13") // light magenta
	colorHidden   = lipgloss.Color("11") // yellow
	colorRevealed = lipgloss.Color("14") // light cyan
	colorWarn     = lipgloss.Color("9")
	colorMuted    = lipgloss.Color("8")
)

// Printer writes results to a terminal or pipe.
type Printer struct {
	out   io.Writer
	color bool

	notice   lipgloss.Style
	hidden   lipgloss.Style
	revealed lipgloss.Style
	warn     lipgloss.Style
	muted    lipgloss.Style
}

// NewPrinter returns a Printer writing to w. When w is a terminal it is
// wrapped with go-colorable so ANSI sequences work on Windows consoles.
func NewPrinter(w io.Writer, mode ColorMode) *Printer {
	color := mode == ColorAlways || (mode == ColorAuto && logging.IsTTY(w))
	if f, ok := w.(*os.File); ok && color {
		w = colorable.NewColorable(f)
	}

	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return &Printer{
		out:      w,
		color:    color,
		notice:   base.Foreground(colorNotice),
		hidden:   base.Foreground(colorHidden),
		revealed: base.Foreground(colorRevealed),
		warn:     base.Bold(true).Foreground(colorWarn),
		muted:    base.Foreground(colorMuted),
	}
}

// paint applies st to each line of s separately. Rendering the whole block
// at once would pad short lines to the widest one.
func (p *Printer) paint(st lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = st.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}

// Hint prints the usage hint shown before the first prompt.
func (p *Printer) Hint() {
	fmt.Fprintf(p.out, "\n%s\n", p.paint(p.muted, "Wrap the words you want to hide in (( ))."))
}

// Hidden prints the result of hiding text. copied reports whether it also
// reached the clipboard.
func (p *Printer) Hidden(s string, copied bool) {
	fmt.Fprintln(p.out)
	if copied {
		fmt.Fprintln(p.out, p.paint(p.notice, "The result has been copied to your clipboard!"))
	}
	fmt.Fprintf(p.out, "Hidden result: \"%s\"\n\n", p.paint(p.hidden, s))
}

// Revealed prints the result of decoding.
func (p *Printer) Revealed(s string) {
	fmt.Fprintf(p.out, "Revealed: \"%s\"\n\n", p.paint(p.revealed, s))
}

// Warn prints a non-fatal problem.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintln(p.out, p.paint(p.warn, "warning: "+fmt.Sprintf(format, args...)))
}

// Stats prints a short summary of the invisible content of s.
func (p *Printer) Stats(s codec.RunStats) {
	line := fmt.Sprintf("visible=%d symbols=%d runs=%d truncated=%d hidden_bytes=%d",
		s.Visible, s.Symbols, s.Runs, s.Truncated, s.HiddenBytes())
	fmt.Fprintln(p.out, p.paint(p.muted, line))
}
