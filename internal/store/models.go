package store

// Item is a single article or entry cached from a feed. Published is an
// RFC 3339 timestamp; feeds that omit publication dates leave it empty.
type Item struct {
	Title     string `json:"title" yaml:"title"`
	Link      string `json:"link" yaml:"link"`
	Published string `json:"published,omitempty" yaml:"published,omitempty"`
}

// Feed is a URL-identified source of items. Items hold the order the feed
// delivered them in, replaced wholesale on every refresh.
type Feed struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
	Items []Item `json:"items" yaml:"items"`
}

// Database is the persisted collection of feeds. Slice order is display
// order; feed URLs are unique within a database.
type Database struct {
	Feeds []Feed `json:"feeds" yaml:"feeds"`
}
