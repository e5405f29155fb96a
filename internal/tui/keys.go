package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"feedterm/internal/debuglog"
	"feedterm/internal/store"
	"feedterm/internal/validation"
)

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		a.persist()
		return a, tea.Quit
	}

	switch a.mode {
	case modeAdding:
		return a.handleAddingKey(msg)
	case modeRefreshing:
		return a.handleRefreshingKey(msg)
	default:
		return a.handleBrowsingKey(msg)
	}
}

func (a *App) handleBrowsingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		a.persist()
		return a, tea.Quit

	case "a":
		a.mode = modeAdding
		a.input.Reset()
		a.input.Focus()
		a.setStatus("Enter feed URL", StatusInfo)
		return a, nil

	case "r":
		return a.startRefresh()

	case "d":
		a.deleteSelectedFeed()
		return a, nil

	case "tab", "right":
		a.focus = focusItems
		return a, nil

	case "left":
		a.focus = focusFeeds
		return a, nil

	case "up", "k":
		a.moveSelection(-1)
		return a, nil

	case "down", "j":
		a.moveSelection(1)
		return a, nil

	case "pgup":
		a.moveSelection(-pageJump)
		return a, nil

	case "pgdown":
		a.moveSelection(pageJump)
		return a, nil
	}

	return a, nil
}

func (a *App) handleAddingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeBrowsing
		a.input.Reset()
		a.setStatus(MsgAddCancelled, StatusInfo)
		return a, nil

	case "enter":
		url := strings.TrimSpace(a.input.Value())
		if url == "" {
			// Empty prompt stays open; there is nothing to add.
			return a, nil
		}
		a.mode = modeBrowsing
		a.input.Reset()
		a.addFeed(url)
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// handleRefreshingKey keeps the session responsive while a fetch is
// outstanding. Navigation and quitting stay live; anything that would
// mutate feeds is refused until the fetch completes.
func (a *App) handleRefreshingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		// Quit abandons the in-flight fetch; its result is discarded
		// with the program.
		a.persist()
		return a, tea.Quit

	case "a", "r", "d":
		a.setStatus(MsgRefreshBusy, StatusWarn)
		return a, nil

	case "tab", "right":
		a.focus = focusItems
		return a, nil

	case "left":
		a.focus = focusFeeds
		return a, nil

	case "up", "k":
		a.moveSelection(-1)
		return a, nil

	case "down", "j":
		a.moveSelection(1)
		return a, nil

	case "pgup":
		a.moveSelection(-pageJump)
		return a, nil

	case "pgdown":
		a.moveSelection(pageJump)
		return a, nil
	}

	return a, nil
}

// startRefresh dispatches a fetch for the selected real feed. Refreshing
// the "All" pseudo-feed is reported, not fatal.
func (a *App) startRefresh() (tea.Model, tea.Cmd) {
	if a.feedIndex == 0 {
		a.setStatus(MsgSelectFeedToRefresh, StatusWarn)
		return a, nil
	}

	index := a.feedIndex - 1
	if index >= len(a.db.Feeds) {
		return a, nil
	}

	url := a.db.Feeds[index].URL
	a.mode = modeRefreshing
	a.refreshing = index
	a.setStatus(MsgRefreshing(url), StatusInfo)
	debuglog.Infof("refreshing %s", url)

	return a, tea.Batch(a.refreshFeed(index, url), a.spin.Tick)
}

// addFeed appends a feed with a placeholder title derived from the URL
// host; the real title arrives with the first refresh.
func (a *App) addFeed(rawURL string) {
	url, err := validation.ValidateFeedURL(rawURL)
	if err != nil {
		a.setStatus(fmt.Sprintf("Invalid URL: %v", err), StatusError)
		return
	}

	if err := a.db.AddFeed(validation.HostOf(url), url); err != nil {
		if errors.Is(err, store.ErrDuplicateFeed) {
			a.setStatus(MsgDuplicateFeed(url), StatusWarn)
			return
		}
		a.setStatus(fmt.Sprintf("Add failed: %v", err), StatusError)
		return
	}

	// Select the new feed so a follow-up refresh targets it.
	a.feedIndex = len(a.db.Feeds)
	a.clampItemSelection()

	if a.persist() {
		debuglog.Infof("added feed %s", url)
		a.setStatus(MsgAddedFeed(url), StatusSuccess)
	}
}

func (a *App) deleteSelectedFeed() {
	if a.feedIndex == 0 {
		a.setStatus(MsgSelectFeedToDelete, StatusWarn)
		return
	}

	index := a.feedIndex - 1
	if index >= len(a.db.Feeds) {
		return
	}

	url := a.db.Feeds[index].URL
	if err := a.db.RemoveFeed(index); err != nil {
		a.setStatus(fmt.Sprintf("Delete failed: %v", err), StatusError)
		return
	}

	a.clampFeedSelection()

	if a.persist() {
		debuglog.Infof("removed feed %s", url)
		a.setStatus(MsgRemovedFeed(url), StatusSuccess)
	}
}
