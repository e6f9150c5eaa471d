package output

import (
	"github.com/charmbracelet/lipgloss/tree"
	"go.trai.ch/jx/internal/core/domain"
	"go.trai.ch/jx/internal/ui/style"
)

const repeatedMark = " (*)"

// Tree prints the dependency forest, one tree per root. Repeated subtrees are marked with (*).
func (p *Printer) Tree(roots []*domain.TreeNode) {
	if len(roots) == 0 {
		p.println(p.style().Foreground(style.Slate).Render("no dependencies"))
		return
	}
	for _, root := range roots {
		p.println(p.subtree(root).String())
	}
}

func (p *Printer) subtree(n *domain.TreeNode) *tree.Tree {
	t := tree.Root(p.label(n)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(p.style().Foreground(style.Slate).PaddingRight(1))
	for _, child := range n.Children {
		if len(child.Children) == 0 {
			t.Child(p.label(child))
			continue
		}
		t.Child(p.subtree(child))
	}
	return t
}

func (p *Printer) label(n *domain.TreeNode) string {
	dep := n.Dependency
	scope := dep.Scope
	if scope == "" {
		scope = domain.ScopeCompile
	}

	label := p.style().Bold(true).Render(dep.Key()) + " " +
		p.style().Foreground(style.ScopeColor(scope)).Render("("+scope.String()+")")
	if n.Repeated {
		label += p.style().Foreground(style.Slate).Render(repeatedMark)
	}
	return label
}
