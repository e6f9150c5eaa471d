package output

import (
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/muesli/termenv"
	"go.trai.ch/jx/internal/core/domain"
	"go.trai.ch/jx/internal/ui/style"
)

func (p *Printer) table() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(p.w)
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Footer = text.FormatDefault
	if ColorProfile() != termenv.Ascii {
		t.Style().Color.Header = text.Colors{text.Bold}
	}
	return t
}

// Conflicts prints one row per artifact that was requested in more than one version.
func (p *Printer) Conflicts(conflicts []domain.VersionConflict) {
	if len(conflicts) == 0 {
		return
	}
	p.println(p.style().Foreground(style.Yellow).Render(style.Warning + " version conflicts"))

	t := p.table()
	t.AppendHeader(table.Row{"Artifact", "Versions"})
	for _, c := range conflicts {
		t.AppendRow(table.Row{c.ArtifactKey(), strings.Join(c.Versions, ", ")})
	}
	t.Render()
}

// Lock prints the lock file entries sorted by key.
func (p *Printer) Lock(l *domain.Lockfile) {
	t := p.table()
	t.AppendHeader(table.Row{"Dependency", "Scope", "Size", "Checksum"})
	for _, dep := range l.Dependencies() {
		t.AppendRow(table.Row{dep.Key(), dep.Scope.String(), humanSize(dep.Size), shortChecksum(dep.Checksum)})
	}
	t.AppendFooter(table.Row{
		strconv.Itoa(l.Metadata.TotalDependencies) + " dependencies", "", humanSize(l.Metadata.TotalSize), "",
	})
	t.Render()
}

// Lines prints each entry on its own line.
func (p *Printer) Lines(lines []string) {
	for _, l := range lines {
		p.println(l)
	}
}

// Success prints a check marked message.
func (p *Printer) Success(msg string) {
	p.println(p.style().Foreground(style.Green).Render(style.Check) + " " + msg)
}

// Failure prints a cross marked message.
func (p *Printer) Failure(msg string) {
	p.println(p.style().Foreground(style.Red).Render(style.Cross) + " " + msg)
}

func shortChecksum(sum string) string {
	const keep = 12
	hex := strings.TrimPrefix(sum, "sha256:")
	if len(hex) > keep {
		return hex[:keep]
	}
	return hex
}

func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return strconv.FormatInt(n, 10) + " B"
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return strconv.FormatFloat(float64(n)/float64(div), 'f', 1, 64) + " " + string("KMGTPE"[exp]) + "iB"
}
