package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/xvzc/wordtree/internal/datastruct/tree"
)

// Printer writes entries in their "key:value" form, one per line.
type Printer struct {
	w          io.Writer
	delimiter  string
	keyStyle   lipgloss.Style
	valueStyle lipgloss.Style
	color      bool
}

// NewPrinter creates a Printer. With color set, keys and values are styled
// according to the terminal capabilities of w.
func NewPrinter(w io.Writer, delimiter string, color bool) *Printer {
	r := lipgloss.NewRenderer(w)

	return &Printer{
		w:          w,
		delimiter:  delimiter,
		keyStyle:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		valueStyle: r.NewStyle().Foreground(lipgloss.Color("13")),
		color:      color,
	}
}

// Visit prints e. It has the signature expected by Dictionary.Display.
func (p *Printer) Visit(e tree.Entry) {
	key, value := e.Key, e.Value
	if p.color {
		key = p.keyStyle.Render(key)
		value = p.valueStyle.Render(value)
	}

	fmt.Fprintf(p.w, "%s%s%s\n", key, p.delimiter, value)
}

// Message prints a plain line of text.
func (p *Printer) Message(msg string) {
	fmt.Fprintln(p.w, msg)
}

// Prompt prints msg without a trailing newline.
func (p *Printer) Prompt(msg string) {
	fmt.Fprint(p.w, msg)
}
