package tui

import "fmt"

// StatusKind indicates severity for status line messages.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusWarn
	StatusError
)

// Canonical short status messages used across the session.
const (
	MsgAddCancelled        = "Add cancelled"
	MsgRefreshBusy         = "A refresh is already running"
	MsgSelectFeedToRefresh = "Select a feed to refresh"
	MsgSelectFeedToDelete  = "Select a feed to delete"

	helpLine = "q quit • a add • r refresh • d delete • tab/←/→ focus • j/k move • pgup/pgdn page"
)

func MsgRefreshing(url string) string {
	return fmt.Sprintf("Refreshing %s…", url)
}

func MsgRefreshed(url string, count int) string {
	return fmt.Sprintf("Refreshed %s (%d items)", url, count)
}

func MsgAddedFeed(url string) string {
	return fmt.Sprintf("Added %s", url)
}

func MsgRemovedFeed(url string) string {
	return fmt.Sprintf("Removed %s", url)
}

func MsgDuplicateFeed(url string) string {
	return fmt.Sprintf("Feed already present: %s", url)
}
