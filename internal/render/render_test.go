package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"feedterm/internal/store"
)

func TestItems(t *testing.T) {
	var buf bytes.Buffer

	Items(&buf, "Example (https://example.com/rss)", []store.Item{
		{Title: "full", Link: "https://example.com/1", Published: "2025-01-01T00:00:00Z"},
		{Title: "no date", Link: "https://example.com/2"},
		{Title: "no link", Published: "2025-01-02T00:00:00Z"},
		{Title: "bare"},
	})

	assert.Equal(t, `Feed: Example (https://example.com/rss)
- full | 2025-01-01T00:00:00Z | https://example.com/1
- no date | https://example.com/2
- no link | 2025-01-02T00:00:00Z
- bare
`, buf.String())
}

func TestDatabaseFilter(t *testing.T) {
	db := &store.Database{
		Feeds: []store.Feed{
			{Title: "One", URL: "https://one.test/rss", Items: []store.Item{{Title: "o1"}}},
			{Title: "", URL: "https://two.test/rss", Items: []store.Item{{Title: "t1"}}},
		},
	}

	var all bytes.Buffer
	Database(&all, db, "")
	assert.Contains(t, all.String(), "Feed: One (https://one.test/rss)")
	assert.Contains(t, all.String(), "Feed: Untitled (https://two.test/rss)")

	var filtered bytes.Buffer
	Database(&filtered, db, "https://two.test/rss")
	assert.NotContains(t, filtered.String(), "One")
	assert.Contains(t, filtered.String(), "t1")
}
