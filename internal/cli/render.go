package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"codeberg.org/snonux/vidshare/internal/controller"
)

const columnGap = "  "

func renderProgressBar(done, total, width int) string {
	if width <= 0 || total <= 0 {
		return ""
	}
	if done < 0 {
		done = 0
	}
	if done > total {
		done = total
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
	return fmt.Sprintf("[%s]", bar)
}

// renderList aligns name, size and date into columns followed by the url,
// one line per row in the given order.
func renderList(rows []controller.Row, urls []string) string {
	if len(rows) == 0 {
		return ""
	}
	var nameWidth, sizeWidth, dateWidth int
	for _, row := range rows {
		nameWidth = max(nameWidth, lipgloss.Width(row.Name))
		sizeWidth = max(sizeWidth, lipgloss.Width(row.Size))
		dateWidth = max(dateWidth, lipgloss.Width(row.Date))
	}
	nameCol := lipgloss.NewStyle().Width(nameWidth)
	sizeCol := lipgloss.NewStyle().Width(sizeWidth).Align(lipgloss.Right)
	dateCol := lipgloss.NewStyle().Width(dateWidth)

	var b strings.Builder
	for i, row := range rows {
		b.WriteString(nameCol.Render(row.Name))
		b.WriteString(columnGap)
		b.WriteString(sizeCol.Render(row.Size))
		b.WriteString(columnGap)
		b.WriteString(dateCol.Render(row.Date))
		b.WriteString(columnGap)
		b.WriteString(urls[i])
		b.WriteByte('\n')
	}
	return b.String()
}
