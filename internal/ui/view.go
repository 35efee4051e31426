package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bilgisen/headlines/internal/feed"
	"github.com/bilgisen/headlines/internal/models"
)

const (
	// rows rendered per article, including the blank separator
	itemHeight = 5

	defaultWidth  = 80
	defaultHeight = 24
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	sortStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	metaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	bannerStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("214")).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Headlines"))
	b.WriteString("\n")

	if m.banner != nil {
		b.WriteString(m.bannerView())
		b.WriteString("\n")
	}

	if m.state.Phase == Loading {
		b.WriteString(fmt.Sprintf("\n %s Loading articles...\n", m.spinner.View()))
		return b.String()
	}

	other := m.state.Direction.Flip().Label()
	b.WriteString(sortStyle.Render(fmt.Sprintf("Sort: %s  (s: %s)", m.state.Direction.Label(), other)))
	b.WriteString("\n\n")

	if len(m.state.Articles) == 0 {
		b.WriteString(metaStyle.Render("No articles"))
		b.WriteString("\n")
	}

	end := m.state.Offset + m.visibleRows()
	if end > len(m.state.Articles) {
		end = len(m.state.Articles)
	}
	for i := m.state.Offset; i < end; i++ {
		b.WriteString(m.itemView(m.state.Articles[i], i == m.state.Cursor))
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// itemView renders one article. Empty fields are left out.
func (m Model) itemView(a models.Article, active bool) string {
	width := m.contentWidth()
	line := lipgloss.NewStyle().MaxWidth(width)

	marker := "  "
	title := titleStyle
	if active {
		marker = "> "
		title = activeStyle
	}

	lines := make([]string, 0, itemHeight)
	if t := feed.CleanText(a.Title); t != "" {
		lines = append(lines, line.Render(marker+title.Render(t)))
	} else {
		lines = append(lines, marker)
	}
	if a.Author != "" {
		lines = append(lines, line.Render("  Author : "+a.Author))
	}
	if d := feed.CleanText(a.Description); d != "" {
		lines = append(lines, line.Render("  "+d))
	}

	meta := make([]string, 0, 2)
	if a.PublishedAt != "" {
		meta = append(meta, strings.ReplaceAll(a.DisplayTime(m.loc), "\n", " "))
	}
	if a.Source.Name != "" {
		meta = append(meta, a.Source.Name)
	}
	if len(meta) > 0 {
		lines = append(lines, line.Render("  "+metaStyle.Render(strings.Join(meta, " · "))))
	}

	for len(lines) < itemHeight {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m Model) bannerView() string {
	title := m.banner.Title
	if title == "" {
		title = "Notification"
	}
	text := titleStyle.Render(title)
	if m.banner.Body != "" {
		text += "\n" + m.banner.Body
	}
	text += "\n" + metaStyle.Render("n: open  esc: dismiss")
	return bannerStyle.Width(m.contentWidth() - 4).Render(text)
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

// visibleRows is the number of articles that fit on screen
func (m Model) visibleRows() int {
	height := m.height
	if height <= 0 {
		height = defaultHeight
	}
	// header, sort control, spacer, status and help
	chrome := 5
	if m.banner != nil {
		chrome += 5
	}
	rows := (height - chrome) / itemHeight
	if rows < 1 {
		return 1
	}
	return rows
}
