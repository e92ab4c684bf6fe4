package memtree

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

var inlineTags = []string{"a", "span", "b", "em", "strong"}

// Renderer renders a tree as terminal text. Block nodes start a new line,
// consecutive inline nodes share a line.
type Renderer struct {
	// HideClass - nodes carrying it are skipped with their subtree.
	HideClass string
	// Styles maps a class to the style of nodes carrying it. The first class
	// of a node with a style wins.
	Styles map[string]lipgloss.Style
}

// NewRenderer returns a renderer with styles for the default pager classes.
func NewRenderer(hideClass string) *Renderer {
	return &Renderer{
		HideClass: hideClass,
		Styles: map[string]lipgloss.Style{
			"current":  lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1),
			"disabled": lipgloss.NewStyle().Faint(true),
		},
	}
}

func (r *Renderer) Render(root *Node) string {
	return strings.Join(r.renderBlock(root), "\n")
}

func (r *Renderer) hidden(n *Node) bool {
	return r.HideClass != "" && n.HasClass(r.HideClass)
}

func (r *Renderer) style(n *Node, text string) string {
	for _, class := range n.classes {
		if style, ok := r.Styles[class]; ok {
			return style.Render(text)
		}
	}

	return text
}

func isInline(n *Node) bool {
	return lo.Contains(inlineTags, strings.ToLower(n.Tag))
}

func (r *Renderer) renderInline(n *Node) string {
	parts := make([]string, 0, len(n.children)+1)
	if n.Text != "" {
		parts = append(parts, n.Text)
	}
	for _, child := range n.children {
		if r.hidden(child) {
			continue
		}
		parts = append(parts, r.renderInline(child))
	}

	return r.style(n, strings.Join(parts, " "))
}

func (r *Renderer) renderBlock(n *Node) []string {
	if r.hidden(n) {
		return nil
	}
	if isInline(n) {
		return []string{r.renderInline(n)}
	}

	var (
		lines  []string
		inline []string
	)
	flush := func() {
		if len(inline) > 0 {
			lines = append(lines, strings.Join(inline, " "))
			inline = nil
		}
	}

	if n.Text != "" {
		lines = append(lines, r.style(n, n.Text))
	}
	for _, child := range n.children {
		if r.hidden(child) {
			continue
		}
		if isInline(child) {
			inline = append(inline, r.renderInline(child))
			continue
		}
		flush()
		lines = append(lines, r.renderBlock(child)...)
	}
	flush()

	return lines
}
