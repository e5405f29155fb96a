package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"feedterm/internal/config"
	"feedterm/internal/debuglog"
	"feedterm/internal/feed"
	"feedterm/internal/store"
	"feedterm/internal/view"
)

// mode is the session controller state. Browsing covers normal navigation,
// adding has the URL prompt open, refreshing has one fetch outstanding.
type mode int

const (
	modeBrowsing mode = iota
	modeAdding
	modeRefreshing
)

type focusPane int

const (
	focusFeeds focusPane = iota
	focusItems
)

// pageJump is how far PageUp/PageDown move the selection.
const pageJump = 5

// App is the interactive session: it owns the database, the selection and
// focus state, and the terminal. All mutation happens on the Update
// goroutine; fetches run in tea.Cmd closures and only report back via
// fetchDoneMsg.
type App struct {
	cfg     *config.Config
	dbPath  string
	db      *store.Database
	fetcher *feed.Fetcher

	mode  mode
	focus focusPane

	// feedIndex selects a feeds-pane row: 0 is the "All" pseudo-feed,
	// 1..len(db.Feeds) are real feeds.
	feedIndex int
	itemIndex int

	// refreshing is the db.Feeds slice index with a fetch outstanding,
	// or -1. Gates re-entrant refreshes and deletes.
	refreshing int

	input   textinput.Model
	spin    spinner.Model
	status  string
	statusK StatusKind
	width   int
	height  int
	styles  styles
}

func NewApp(db *store.Database, dbPath string, cfg *config.Config) *App {
	ti := textinput.New()
	ti.Placeholder = "https://example.com/feed.xml"
	ti.CharLimit = 2048

	styles := newStyles(cfg.UI.Colors)

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = styles.accent

	return &App{
		cfg:        cfg,
		dbPath:     dbPath,
		db:         db,
		fetcher:    feed.NewFetcher(cfg),
		mode:       modeBrowsing,
		focus:      focusFeeds,
		refreshing: -1,
		input:      ti,
		spin:       sp,
		styles:     styles,
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		inputWidth := msg.Width - 4
		if inputWidth < 20 {
			inputWidth = msg.Width
		}
		a.input.Width = inputWidth
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case spinner.TickMsg:
		if a.mode != modeRefreshing {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case fetchDoneMsg:
		return a.handleFetchDone(msg)
	}

	return a, nil
}

// handleFetchDone finishes the outstanding refresh: on success the feed's
// items are replaced wholesale and the database is flushed; on failure the
// stored items stay untouched. Either way the session returns to browsing.
func (a *App) handleFetchDone(msg fetchDoneMsg) (tea.Model, tea.Cmd) {
	a.mode = modeBrowsing
	a.refreshing = -1

	if msg.index < 0 || msg.index >= len(a.db.Feeds) || a.db.Feeds[msg.index].URL != msg.url {
		// The feed is gone; discard the stale result.
		debuglog.Warnf("discarding fetch result for %s: feed no longer at index %d", msg.url, msg.index)
		return a, nil
	}

	if msg.err != nil {
		debuglog.Errorf("refresh %s: %v", msg.url, msg.err)
		a.setStatus(fmt.Sprintf("Refresh failed: %v", msg.err), StatusError)
		return a, nil
	}

	if msg.result.Title != "" {
		_ = a.db.SetTitle(msg.index, msg.result.Title)
	}
	_ = a.db.ReplaceItems(msg.index, msg.result.Items)
	a.clampItemSelection()

	if a.persist() {
		debuglog.Infof("refreshed %s: %d items", msg.url, len(msg.result.Items))
		a.setStatus(MsgRefreshed(msg.url, len(msg.result.Items)), StatusSuccess)
	}
	return a, nil
}

// persist flushes the database to disk. A failed save is surfaced in the
// status line instead of ending the session; reports whether it succeeded.
func (a *App) persist() bool {
	if err := store.Save(a.dbPath, a.db); err != nil {
		debuglog.Errorf("save %s: %v", a.dbPath, err)
		a.setStatus(fmt.Sprintf("Save failed: %v", err), StatusError)
		return false
	}
	return true
}

func (a *App) setStatus(msg string, kind StatusKind) {
	a.status = msg
	a.statusK = kind
}

// selectedFeed returns the db.Feeds slice index of the selected feed, or
// view.AllFeeds when the "All" pseudo-feed is selected.
func (a *App) selectedFeed() int {
	if a.feedIndex == 0 {
		return view.AllFeeds
	}
	return a.feedIndex - 1
}

func (a *App) currentItemCount() int {
	if a.feedIndex == 0 {
		total := 0
		for _, f := range a.db.Feeds {
			total += len(f.Items)
		}
		return total
	}
	if a.feedIndex-1 < len(a.db.Feeds) {
		return len(a.db.Feeds[a.feedIndex-1].Items)
	}
	return 0
}

// moveSelection moves the focused pane's selection by delta, clamped to the
// pane's list bounds.
func (a *App) moveSelection(delta int) {
	switch a.focus {
	case focusFeeds:
		a.feedIndex = clamp(a.feedIndex+delta, len(a.db.Feeds)+1)
		a.clampItemSelection()
	case focusItems:
		a.itemIndex = clamp(a.itemIndex+delta, a.currentItemCount())
	}
}

func (a *App) clampFeedSelection() {
	a.feedIndex = clamp(a.feedIndex, len(a.db.Feeds)+1)
	a.clampItemSelection()
}

func (a *App) clampItemSelection() {
	a.itemIndex = clamp(a.itemIndex, a.currentItemCount())
}

// clamp forces index into [0, length-1], or 0 for an empty list.
func clamp(index, length int) int {
	if length <= 0 || index < 0 {
		return 0
	}
	if index >= length {
		return length - 1
	}
	return index
}

type fetchDoneMsg struct {
	index  int
	url    string
	result *feed.Result
	err    error
}

// refreshFeed dispatches the fetch for the feed at slice index. The closure
// runs on its own goroutine under the bubbletea runtime; the Update loop
// stays responsive and receives the outcome as a fetchDoneMsg.
func (a *App) refreshFeed(index int, url string) tea.Cmd {
	fetcher := a.fetcher
	return func() tea.Msg {
		result, err := fetcher.Fetch(url)
		return fetchDoneMsg{index: index, url: url, result: result, err: err}
	}
}
