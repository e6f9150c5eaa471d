// Package output renders dependency trees and tables for the CLI.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorProfile returns Ascii when NO_COLOR is set and the detected terminal profile otherwise.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// Printer writes styled output to a writer.
type Printer struct {
	w        io.Writer
	renderer *lipgloss.Renderer
}

// New creates a Printer for w, defaulting to stdout.
func New(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		w:        w,
		renderer: lipgloss.NewRenderer(w, termenv.WithProfile(ColorProfile())),
	}
}

// Writer returns the destination writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

func (p *Printer) style() lipgloss.Style {
	return p.renderer.NewStyle()
}

func (p *Printer) println(s string) {
	_, _ = io.WriteString(p.w, s+"\n")
}
