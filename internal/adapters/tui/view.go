package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the spinner while the cart loads, the cart afterwards.
func (m *Model) View() string {
	if !m.ready {
		return m.loadingView()
	}
	return m.cartView()
}

func (m *Model) loadingView() string {
	content := m.spinner.View() + " Loading cart..."
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) cartView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("CART") + "\n\n")

	if len(m.items) == 0 {
		s.WriteString(mutedStyle.Render("  Your cart is empty.") + "\n")
	}

	for i, item := range m.items {
		line := fmt.Sprintf("%-24s %8s  x%d", item.Title, formatPrice(item.Price), item.Quantity)
		if i == m.cursor {
			s.WriteString(selectedStyle.Render("> "+line) + "\n")
			continue
		}
		s.WriteString(itemStyle.Render(line) + "\n")
	}

	s.WriteString(m.footer())
	return s.String()
}

func (m *Model) footer() string {
	summary := fmt.Sprintf("%d items, %d units, total %s",
		m.summary.Lines, m.summary.Units, formatPrice(m.summary.Total))

	lines := []string{summary, mutedStyle.Render("↑/↓ select  + add  - remove  q quit")}
	if m.err != nil {
		lines = append(lines, errorStyle.Render("error: "+m.err.Error()))
	}
	return footerStyle.Render(strings.Join(lines, "\n"))
}

func formatPrice(p float64) string {
	return fmt.Sprintf("$%.2f", p)
}
