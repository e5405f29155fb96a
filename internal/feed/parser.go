package feed

import (
	"io"
	"time"

	"github.com/mmcdole/gofeed"

	"feedterm/internal/store"
)

const untitled = "Untitled"

// Parser normalizes RSS and Atom documents into store items.
type Parser struct {
	parser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{
		parser: gofeed.NewParser(),
	}
}

// Parse decodes a feed document and maps its entries onto the store schema.
// Entry titles fall back to "Untitled"; publication times are kept as
// RFC 3339 strings, empty when the feed omits them.
func (p *Parser) Parse(reader io.Reader) (*Result, error) {
	parsed, err := p.parser.Parse(reader)
	if err != nil {
		return nil, err
	}

	items := make([]store.Item, 0, len(parsed.Items))
	for _, entry := range parsed.Items {
		item := store.Item{
			Title: entry.Title,
			Link:  entry.Link,
		}
		if item.Title == "" {
			item.Title = untitled
		}
		if entry.PublishedParsed != nil {
			item.Published = entry.PublishedParsed.Format(time.RFC3339)
		}
		items = append(items, item)
	}

	return &Result{Title: parsed.Title, Items: items}, nil
}
