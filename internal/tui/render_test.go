package tui

import (
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestViewBeforeFirstWindowSizeIsEmpty(t *testing.T) {
	app := newTestApp(t, singleFeedDatabase())
	assert.Empty(t, app.View())
}

func TestViewShowsAllPseudoFeedAndItems(t *testing.T) {
	app := newTestApp(t, singleFeedDatabase())
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	out := app.View()
	assert.Contains(t, out, "All (1 feeds)")
	assert.Contains(t, out, "A (2)")
	assert.Contains(t, out, "a1")
	assert.Contains(t, out, helpLine)
}

func TestViewShowsAddPrompt(t *testing.T) {
	app := newTestApp(t, singleFeedDatabase())
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	app.Update(keyRune('a'))

	out := app.View()
	assert.Contains(t, out, "Add feed URL:")
}

func TestViewShowsStatusMessage(t *testing.T) {
	app := newTestApp(t, singleFeedDatabase())
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	app.Update(keyRune('r')) // refresh on "All" leaves a notice

	assert.Contains(t, app.View(), MsgSelectFeedToRefresh)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exact", truncate("exact", 5))
	assert.Equal(t, "long…", truncate("longer", 5))
	assert.Equal(t, "…", truncate("xyz", 1))
	assert.Equal(t, "", truncate("xyz", 0))
}

func TestTruncateCountsRunesNotBytes(t *testing.T) {
	// Multibyte titles must be cut on rune boundaries, never mid-character.
	assert.Equal(t, "héllo", truncate("héllo", 5))
	assert.Equal(t, "hé…", truncate("héllo wörld", 3))
	assert.Equal(t, "日本…", truncate("日本語のフィード", 3))

	for limit := 2; limit <= 7; limit++ {
		got := truncate("héllo wörld", limit)
		assert.True(t, utf8.ValidString(got), "limit %d produced invalid UTF-8: %q", limit, got)
		assert.LessOrEqual(t, utf8.RuneCountInString(got), limit, "limit %d", limit)
	}
}
