// Package render writes feeds and items as plain text for the
// non-interactive subcommands. Output is line-oriented and pipe-friendly.
package render

import (
	"fmt"
	"io"

	"feedterm/internal/store"
)

// Database writes every feed (optionally filtered to one URL) with its
// cached items.
func Database(w io.Writer, db *store.Database, filterURL string) {
	for _, f := range db.Feeds {
		if filterURL != "" && filterURL != f.URL {
			continue
		}
		title := f.Title
		if title == "" {
			title = "Untitled"
		}
		Items(w, fmt.Sprintf("%s (%s)", title, f.URL), f.Items)
		fmt.Fprintln(w)
	}
}

// Items writes a labeled item list, one line per item. Empty fields are
// omitted rather than printed as blanks.
func Items(w io.Writer, label string, items []store.Item) {
	fmt.Fprintf(w, "Feed: %s\n", label)
	for _, item := range items {
		switch {
		case item.Published == "" && item.Link == "":
			fmt.Fprintf(w, "- %s\n", item.Title)
		case item.Published == "":
			fmt.Fprintf(w, "- %s | %s\n", item.Title, item.Link)
		case item.Link == "":
			fmt.Fprintf(w, "- %s | %s\n", item.Title, item.Published)
		default:
			fmt.Fprintf(w, "- %s | %s | %s\n", item.Title, item.Published, item.Link)
		}
	}
}
