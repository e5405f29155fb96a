package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"feedterm/internal/config"
	"feedterm/internal/view"
)

type styles struct {
	accent       lipgloss.Style
	muted        lipgloss.Style
	text         lipgloss.Style
	errorText    lipgloss.Style
	successText  lipgloss.Style
	warnText     lipgloss.Style
	focusedPane  lipgloss.Style
	blurredPane  lipgloss.Style
	selectedRow  lipgloss.Style
	highlightRow lipgloss.Style
	statusBar    lipgloss.Style
	paneTitle    lipgloss.Style
}

func newStyles(colors config.UIColors) styles {
	accent := lipgloss.Color(colors.Accent)
	muted := lipgloss.Color(colors.Muted)

	return styles{
		accent:      lipgloss.NewStyle().Foreground(accent),
		muted:       lipgloss.NewStyle().Foreground(muted),
		text:        lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Text)),
		errorText:   lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Error)).Bold(true),
		successText: lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Success)),
		warnText:    lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Time)),
		focusedPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent),
		blurredPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted),
		selectedRow:  lipgloss.NewStyle().Foreground(accent).Bold(true),
		highlightRow: lipgloss.NewStyle().Bold(true),
		statusBar:    lipgloss.NewStyle().Padding(0, 1),
		paneTitle:    lipgloss.NewStyle().Foreground(accent).Bold(true),
	}
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return ""
	}

	paneHeight := a.height - 2
	if paneHeight < 3 {
		paneHeight = 3
	}
	// Borders eat two columns and two rows per pane.
	innerRows := paneHeight - 2

	feedWidth := (a.width * 3) / 10
	if feedWidth < 20 {
		feedWidth = 20
	}
	itemWidth := a.width - feedWidth
	if itemWidth < 20 {
		itemWidth = 20
	}

	feeds := a.renderFeedPane(feedWidth-2, innerRows)
	items := a.renderItemPane(itemWidth-2, innerRows)

	feedStyle := a.styles.blurredPane
	itemStyle := a.styles.blurredPane
	if a.focus == focusFeeds {
		feedStyle = a.styles.focusedPane
	} else {
		itemStyle = a.styles.focusedPane
	}

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		feedStyle.Width(feedWidth-2).Height(innerRows).Render(feeds),
		itemStyle.Width(itemWidth-2).Height(innerRows).Render(items),
	)

	return lipgloss.JoinVertical(lipgloss.Left, main, a.renderStatusBar())
}

func (a *App) renderFeedPane(width, rows int) string {
	entries := view.FeedEntries(a.db)

	lines := make([]string, 0, len(entries)+2)
	lines = append(lines, a.styles.paneTitle.Render(truncate("Feeds", width)))

	labels := make([]string, 0, len(entries)+1)
	labels = append(labels, fmt.Sprintf("All (%d feeds)", len(entries)))
	for _, e := range entries {
		labels = append(labels, fmt.Sprintf("%s (%d)", e.Title, e.Count))
	}

	listRows := rows - 1
	start := windowStart(a.feedIndex, len(labels), listRows)
	for i := start; i < len(labels) && i < start+listRows; i++ {
		lines = append(lines, a.renderRow(labels[i], width, i == a.feedIndex, a.focus == focusFeeds))
	}

	return strings.Join(lines, "\n")
}

func (a *App) renderItemPane(width, rows int) string {
	items := view.ItemsFor(a.db, a.selectedFeed())
	showFeed := a.feedIndex == 0

	lines := make([]string, 0, rows)
	lines = append(lines, a.styles.paneTitle.Render(truncate("Items", width)))

	if len(items) == 0 {
		lines = append(lines, a.styles.muted.Render("(no items)"))
		return strings.Join(lines, "\n")
	}

	listRows := rows - 1
	start := windowStart(a.itemIndex, len(items), listRows)
	for i := start; i < len(items) && i < start+listRows; i++ {
		label := a.itemLabel(items[i], showFeed, width)
		lines = append(lines, a.renderRow(label, width, i == a.itemIndex, a.focus == focusItems))
	}

	return strings.Join(lines, "\n")
}

func (a *App) itemLabel(item view.DisplayItem, showFeed bool, width int) string {
	parts := []string{item.Title}
	if showFeed {
		parts = append(parts, item.FeedTitle)
	}
	if item.Published != "" {
		parts = append(parts, item.Published)
	}
	if item.Link != "" {
		parts = append(parts, item.Link)
	}
	return truncate(strings.Join(parts, " · "), width)
}

func (a *App) renderRow(label string, width int, selected, focused bool) string {
	prefix := "  "
	if selected {
		prefix = "› "
	}
	label = truncate(prefix+label, width)

	switch {
	case selected && focused:
		return a.styles.selectedRow.Render(label)
	case selected:
		return a.styles.highlightRow.Render(label)
	default:
		return a.styles.text.Render(label)
	}
}

func (a *App) renderStatusBar() string {
	var content string

	switch a.mode {
	case modeAdding:
		content = "Add feed URL: " + a.input.View() + a.styles.muted.Render("  (enter to add, esc to cancel)")
	case modeRefreshing:
		content = a.spin.View() + " " + a.statusLine()
	default:
		content = a.statusLine()
	}

	return a.styles.statusBar.Width(a.width).Render(content)
}

func (a *App) statusLine() string {
	if a.status == "" {
		return a.styles.muted.Render(helpLine)
	}
	switch a.statusK {
	case StatusError:
		return a.styles.errorText.Render(a.status)
	case StatusWarn:
		return a.styles.warnText.Render(a.status)
	case StatusSuccess:
		return a.styles.successText.Render(a.status)
	default:
		return a.styles.text.Render(a.status)
	}
}

// windowStart picks the first visible row so the selection stays on screen.
func windowStart(selected, total, visible int) int {
	if visible <= 0 || total <= visible {
		return 0
	}
	start := selected - visible + 1
	if start < 0 {
		start = 0
	}
	if start > total-visible {
		start = total - visible
	}
	return start
}

