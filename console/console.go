package console

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/avl"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config controls the output of a tree.
type Config struct {
	// MaxLabelWidth is the maximum width of a key label in terminal columns.
	// Longer labels are truncated. 0 means no limit.
	MaxLabelWidth int
	// ShowBalance appends height and balance factor to every label.
	ShowBalance bool
	// Context is the UAX #11 context for measuring labels. If nil,
	// uax11.LatinContext is used.
	Context *uax11.Context
}

// Palette maps the balance state of a node to a color.
type Palette struct {
	Balanced *color.Color // balance factor 0
	Leaning  *color.Color // balance factor ±1
	Edges    *color.Color // connecting lines
}

// DefaultPalette is used if no palette is given to a Printer.
var DefaultPalette = Palette{
	Balanced: color.New(color.FgBlue),
	Leaning:  color.New(color.FgRed),
	Edges:    color.New(color.Faint),
}

// Printer outputs trees with a fixed configuration and palette.
type Printer struct {
	config  Config
	palette Palette
}

// NewPrinter creates a printer. If config is nil, a heuristic will create a
// config from the current terminal's properties. A nil palette selects
// DefaultPalette.
func NewPrinter(config *Config, palette *Palette) *Printer {
	if config == nil {
		config = ConfigFromTerminal()
	}
	p := &Printer{config: *config, palette: DefaultPalette}
	if palette != nil {
		p.palette = *palette
	}
	if p.config.Context == nil {
		p.config.Context = uax11.LatinContext
	}
	return p
}

// Print outputs a tree to stdout, using a config derived from the terminal.
func Print[K, V any](tree *avl.Tree[K, V]) error {
	return Fprint(os.Stdout, NewPrinter(nil, nil), tree)
}

// Fprint outputs a tree to w using printer p.
func Fprint[K, V any](w io.Writer, p *Printer, tree *avl.Tree[K, V]) error {
	if w == nil || p == nil || tree == nil {
		return errors.New("illegal argument: nil")
	}
	if tree.IsEmpty() {
		_, err := io.WriteString(w, "∅\n")
		return err
	}
	d := &drawing[K, V]{printer: p, w: w}
	d.draw(tree.Root(), "", rootBranch)
	return d.err
}

type branch int

const (
	rootBranch branch = iota
	upperBranch
	lowerBranch
)

type drawing[K, V any] struct {
	printer *Printer
	w       io.Writer
	err     error
}

// draw outputs the subtree at n, right subtree first. prefix holds the
// indentation and vertical lines of all ancestors.
func (d *drawing[K, V]) draw(n *avl.Node[K, V], prefix string, b branch) {
	if !n.IsReal() || d.err != nil {
		return
	}
	d.draw(n.Right(), prefix+extension(b, lowerBranch), upperBranch)
	d.write(d.printer.palette.Edges, prefix+connector(b))
	c := d.printer.palette.Balanced
	if n.BalanceFactor() != 0 {
		c = d.printer.palette.Leaning
	}
	d.write(c, d.printer.label(n.Key(), n.Height(), n.BalanceFactor()))
	d.write(nil, "\n")
	d.draw(n.Left(), prefix+extension(b, upperBranch), lowerBranch)
}

func (d *drawing[K, V]) write(c *color.Color, s string) {
	if d.err != nil || s == "" {
		return
	}
	if c != nil {
		_, d.err = c.Fprint(d.w, s)
		return
	}
	_, d.err = io.WriteString(d.w, s)
}

func connector(b branch) string {
	switch b {
	case upperBranch:
		return "┌── "
	case lowerBranch:
		return "└── "
	}
	return ""
}

// extension returns the indentation for the children of a node on branch b.
// A vertical line is needed if the line to the node's parent passes the
// child, i.e. the child sits on the inner side.
func extension(b branch, inner branch) string {
	if b == inner {
		return "│   "
	}
	return "    "
}

var setupOnce sync.Once

// label formats a key for output, truncating it to the configured width.
func (p *Printer) label(key any, height, bf int) string {
	s := fmt.Sprint(key)
	if p.config.MaxLabelWidth > 0 {
		s = truncate(s, p.config.MaxLabelWidth, p.config.Context)
	}
	if p.config.ShowBalance {
		s += fmt.Sprintf(" (h=%d,bf=%+d)", height, bf)
	}
	return s
}

// Width returns the display width of s in terminal columns.
func Width(s string, context *uax11.Context) int {
	setupOnce.Do(grapheme.SetupGraphemeClasses)
	if context == nil {
		context = uax11.LatinContext
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// truncate shortens s to at most limit columns, marking truncation with an
// ellipsis.
func truncate(s string, limit int, context *uax11.Context) string {
	if Width(s, context) <= limit {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		t := strings.TrimSpace(string(runes)) + "…"
		if Width(t, context) <= limit {
			T().Debugf("console: truncated label %q to %q", s, t)
			return t
		}
	}
	return "…"
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating an output Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and limits labels to a fraction of it.
func ConfigFromTerminal() *Config {
	config := &Config{MaxLabelWidth: 16}
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			if w > 48 {
				config.MaxLabelWidth = w / 3
			} else if w > 24 {
				config.MaxLabelWidth = 8
			} else {
				config.MaxLabelWidth = 4
			}
		}
	}
	config.Context = uax11.ContextFromEnvironment()
	T().P("format", "console").Infof("setting label width to %d en", config.MaxLabelWidth)
	return config
}
