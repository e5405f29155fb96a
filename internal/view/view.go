// Package view derives display data from a database snapshot. Everything
// here is a pure function: no I/O, no mutation of the snapshot.
package view

import (
	"sort"
	"time"

	"feedterm/internal/store"
)

// AllFeeds selects the merged pseudo-feed instead of a real feed index.
const AllFeeds = -1

// FeedEntry is one row of the feeds pane.
type FeedEntry struct {
	Title string
	URL   string
	Count int
}

// DisplayItem is one row of the items pane. when is the parsed publication
// time used for ordering; hasTime distinguishes undated items.
type DisplayItem struct {
	Title     string
	FeedTitle string
	Link      string
	Published string

	when    time.Time
	hasTime bool
}

// HasTime reports whether the item carries a parseable publication time.
func (d DisplayItem) HasTime() bool { return d.hasTime }

// When returns the parsed publication time; zero when HasTime is false.
func (d DisplayItem) When() time.Time { return d.when }

// FeedEntries lists the database's feeds in display order. The caller
// prefixes the "All" pseudo-entry; it is not part of the database.
func FeedEntries(db *store.Database) []FeedEntry {
	entries := make([]FeedEntry, 0, len(db.Feeds))
	for _, f := range db.Feeds {
		title := f.Title
		if title == "" {
			title = f.URL
		}
		entries = append(entries, FeedEntry{Title: title, URL: f.URL, Count: len(f.Items)})
	}
	return entries
}

// ItemsFor returns the items to display for the given selection. A real
// feed index yields that feed's items in stored order. AllFeeds yields the
// union of every feed's items sorted by descending publication time;
// undated items sort after all dated ones, and ties keep feed insertion
// order then item order.
func ItemsFor(db *store.Database, feedIndex int) []DisplayItem {
	if feedIndex >= 0 {
		if feedIndex >= len(db.Feeds) {
			return nil
		}
		f := db.Feeds[feedIndex]
		items := make([]DisplayItem, 0, len(f.Items))
		for _, it := range f.Items {
			items = append(items, newDisplayItem(f, it))
		}
		return items
	}

	var items []DisplayItem
	for _, f := range db.Feeds {
		for _, it := range f.Items {
			items = append(items, newDisplayItem(f, it))
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch {
		case a.hasTime && b.hasTime:
			return a.when.After(b.when)
		case a.hasTime:
			return true
		default:
			return false
		}
	})
	return items
}

func newDisplayItem(f store.Feed, it store.Item) DisplayItem {
	d := DisplayItem{
		Title:     it.Title,
		FeedTitle: f.Title,
		Link:      it.Link,
		Published: it.Published,
	}
	if d.FeedTitle == "" {
		d.FeedTitle = f.URL
	}
	if it.Published != "" {
		if when, err := time.Parse(time.RFC3339, it.Published); err == nil {
			d.when = when
			d.hasTime = true
		}
	}
	return d
}
