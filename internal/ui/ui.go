// Package ui renders weaver's terminal output: the welcome banner, progress
// spinners, the solved ladder and error lines. Color and animation follow
// the output.color setting, NO_COLOR and whether the stream is a terminal.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Color modes accepted by output.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// WelcomeText opens every interactive run.
const WelcomeText = "Welcome to Weaver Solver!"

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// DetectColor decides whether to emit ANSI styling on w.
func DetectColor(w io.Writer, mode string) bool {
	switch strings.ToLower(mode) {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isTerminal(w) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// Options configures a Printer.
type Options struct {
	// Color is one of ColorAuto, ColorAlways or ColorNever.
	Color string
	// Separator joins ladder words, " -> " by default.
	Separator string
	// Spinner enables progress messages on the error stream.
	Spinner bool
}

// Printer writes results to out and progress to errOut.
type Printer struct {
	out, errOut io.Writer
	color       bool
	animate     bool
	spinner     bool
	separator   string

	title lipgloss.Style
	end   lipgloss.Style
	word  lipgloss.Style
	sep   lipgloss.Style
	muted lipgloss.Style
}

// NewPrinter builds a Printer for the given streams.
func NewPrinter(out, errOut io.Writer, opts Options) *Printer {
	color := DetectColor(out, opts.Color)
	if opts.Separator == "" {
		opts.Separator = " -> "
	}

	r := lipgloss.NewRenderer(out)
	if color {
		if r.ColorProfile() == termenv.Ascii {
			r.SetColorProfile(termenv.ANSI256)
		}
		pterm.EnableStyling()
	} else {
		r.SetColorProfile(termenv.Ascii)
		pterm.DisableStyling()
	}

	return &Printer{
		out:       out,
		errOut:    errOut,
		color:     color,
		animate:   opts.Spinner && isTerminal(errOut),
		spinner:   opts.Spinner,
		separator: opts.Separator,
		title:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		end:       r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		word:      r.NewStyle(),
		sep:       r.NewStyle().Foreground(lipgloss.Color("240")),
		muted:     r.NewStyle().Faint(true),
	}
}

// Welcome prints the banner.
func (p *Printer) Welcome() {
	fmt.Fprintln(p.out, p.title.Render(WelcomeText))
}

// Spin runs fn while showing msg. On a terminal the message animates and
// resolves to a success or failure mark; elsewhere it is printed once.
// With spinners disabled fn simply runs.
func (p *Printer) Spin(msg string, fn func() error) error {
	if !p.spinner {
		return fn()
	}
	if !p.animate {
		fmt.Fprintln(p.errOut, msg)
		return fn()
	}

	sp, err := pterm.DefaultSpinner.
		WithWriter(p.errOut).
		WithRemoveWhenDone(false).
		Start(msg)
	if err != nil {
		// animation is cosmetic
		return fn()
	}
	if err = fn(); err != nil {
		sp.Fail(msg)
		return err
	}
	sp.Success(msg)
	return nil
}

// FormatLadder joins words with the separator, emphasizing both ends.
func (p *Printer) FormatLadder(words []string) string {
	parts := make([]string, len(words))
	for i, w := range words {
		if i == 0 || i == len(words)-1 {
			parts[i] = p.end.Render(w)
		} else {
			parts[i] = p.word.Render(w)
		}
	}
	return strings.Join(parts, p.sep.Render(p.separator))
}

// Ladder prints the ladder followed by its step count.
func (p *Printer) Ladder(words []string, hops int) {
	fmt.Fprintln(p.out, p.FormatLadder(words))
	fmt.Fprintln(p.out, p.muted.Render(Steps(hops)))
}

// NoLadder reports that end cannot be reached from start.
func (p *Printer) NoLadder(start, end string) {
	fmt.Fprintf(p.out, "No solution found from %s to %s\n", start, end)
}

// Line prints a plain line to the result stream.
func (p *Printer) Line(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Table prints rows with a header, aligned in columns.
func (p *Printer) Table(header []string, rows [][]string) error {
	data := pterm.TableData{header}
	data = append(data, rows...)
	return pterm.DefaultTable.
		WithHasHeader(true).
		WithWriter(p.out).
		WithData(data).
		Render()
}

// Error prints msg to the error stream.
func (p *Printer) Error(msg string) {
	if p.color {
		fmt.Fprintln(p.errOut, pterm.Error.Sprint(msg))
		return
	}
	fmt.Fprintln(p.errOut, "Error: "+msg)
}

// Steps formats a hop count: "1 step", "4 steps".
func Steps(n int) string {
	if n == 1 {
		return "1 step"
	}
	return fmt.Sprintf("%d steps", n)
}
