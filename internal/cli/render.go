// Package cli renders tables and headings for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Brand colours, matching the landing page.
var (
	ColorBorder = lipgloss.Color("#3F3F46")
	ColorText   = lipgloss.Color("#FAFAFA")
	ColorMuted  = lipgloss.Color("#A1A1AA")
	ColorAccent = lipgloss.Color("#FF5A1F")
	ColorGreen  = lipgloss.Color("#10B981")
	ColorBlue   = lipgloss.Color("#0EA5E9")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	// MoneyStyle highlights revenue figures.
	MoneyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorGreen)
)

// Table is a bordered text table. The first column is left-aligned, the rest
// right-aligned.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title in a rounded box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// Muted renders secondary text.
func Muted(s string) string { return mutedStyle.Render(s) }

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	if numCols == 0 {
		return ""
	}

	widths := ColumnWidths(t.Headers, t.Rows, numCols)

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(rule("╭", "┬", "╮", widths))
	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			b.WriteString(headerStyle.Render(" " + pad(cellAt(t.Headers, i), widths[i], false) + " "))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
		b.WriteString(rule("├", "┼", "┤", widths))
	}

	for _, row := range t.Rows {
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			b.WriteString(valueStyle.Render(" " + pad(cellAt(row, i), widths[i], i > 0) + " "))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
	}

	b.WriteString(rule("╰", "┴", "╯", widths))
	return b.String()
}

// ColumnWidths measures display width, so "฿" and "₹" count as one column.
func ColumnWidths(headers []string, rows [][]string, numCols int) []int {
	widths := make([]int, numCols)
	for i := 0; i < numCols; i++ {
		widths[i] = lipgloss.Width(cellAt(headers, i))
	}
	for _, row := range rows {
		for i := 0; i < numCols; i++ {
			if w := lipgloss.Width(cellAt(row, i)); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// FormatNumber adds thousands separators: 1159200 -> "1,159,200".
func FormatNumber(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatTHB renders a whole-baht amount: "฿1,159,200".
func FormatTHB(n int64) string {
	return "฿" + FormatNumber(n)
}

// FormatPct renders a percentage without trailing zeros: 72.5 -> "72.5%".
func FormatPct(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}

func rule(left, mid, right string, widths []int) string {
	var b strings.Builder
	b.WriteString(dimStyle.Render(left))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < len(widths)-1 {
			b.WriteString(dimStyle.Render(mid))
		}
	}
	b.WriteString(dimStyle.Render(right))
	b.WriteString("\n")
	return b.String()
}

func pad(s string, width int, right bool) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// Errorf prints a styled error line; cobra still receives the error.
func Errorf(format string, args ...interface{}) string {
	return lipgloss.NewStyle().Foreground(ColorAccent).Render(fmt.Sprintf(format, args...))
}
