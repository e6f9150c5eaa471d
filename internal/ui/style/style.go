// Package style holds the colors and icons shared by the CLI output.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/jx/internal/core/domain"
)

// Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Cyan   = lipgloss.Color("#0EA5E9")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)

// ScopeColor returns the color a scope is rendered with.
func ScopeColor(s domain.Scope) lipgloss.Color {
	switch s {
	case domain.ScopeRuntime:
		return Cyan
	case domain.ScopeTest:
		return Yellow
	case domain.ScopeProvided, domain.ScopeSystem:
		return Slate
	default:
		return Green
	}
}
