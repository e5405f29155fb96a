package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnreadable marks a database file that could not be opened or read.
	ErrUnreadable = errors.New("database unreadable")
	// ErrMalformed marks content that does not decode into the schema.
	ErrMalformed = errors.New("database malformed")
	// ErrUnwritable marks a failed save.
	ErrUnwritable = errors.New("database unwritable")
	// ErrUnsupportedExtension marks a path that selects no codec.
	ErrUnsupportedExtension = errors.New("unsupported database extension (use .json, .yml, or .yaml)")

	// ErrDuplicateFeed is returned by AddFeed when the URL is already present.
	ErrDuplicateFeed = errors.New("feed already exists")
	// ErrIndexOutOfRange is returned by mutations addressing a missing feed.
	ErrIndexOutOfRange = errors.New("feed index out of range")
)

// Load reads and decodes the database at path. The file extension selects
// the codec: .json for JSON, .yml/.yaml for YAML.
func Load(path string) (*Database, error) {
	codec, err := codecFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrUnreadable, path, err)
	}

	var db Database
	if err := codec.unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", ErrMalformed, path, err)
	}
	return &db, nil
}

// LoadOrInit loads the database at path, treating a missing file as an
// empty database. Used at session start so a fresh install works without
// any setup.
func LoadOrInit(path string) (*Database, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if _, cerr := codecFor(path); cerr != nil {
			return nil, cerr
		}
		return &Database{}, nil
	}
	return Load(path)
}

// Save encodes db and writes it to path atomically: the document lands in a
// temp file in the same directory and is renamed over the target, so a crash
// mid-write never corrupts the previous valid file.
func Save(path string, db *Database) error {
	codec, err := codecFor(path)
	if err != nil {
		return err
	}

	data, err := codec.marshal(db)
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %v", ErrUnwritable, path, err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file in %s: %v", ErrUnwritable, dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing %s: %v", ErrUnwritable, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing %s: %v", ErrUnwritable, tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replacing %s: %v", ErrUnwritable, path, err)
	}
	return nil
}

// AddFeed appends a feed with no items. Adding a URL that is already present
// is a no-op reported as ErrDuplicateFeed.
func (db *Database) AddFeed(title, url string) error {
	for _, f := range db.Feeds {
		if f.URL == url {
			return fmt.Errorf("%w: %s", ErrDuplicateFeed, url)
		}
	}
	db.Feeds = append(db.Feeds, Feed{Title: title, URL: url, Items: []Item{}})
	return nil
}

// RemoveFeed deletes the feed at the given display index.
func (db *Database) RemoveFeed(index int) error {
	if index < 0 || index >= len(db.Feeds) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	db.Feeds = append(db.Feeds[:index], db.Feeds[index+1:]...)
	return nil
}

// ReplaceItems overwrites the item list of the feed at index. Used after a
// refresh; the old items are discarded, never merged.
func (db *Database) ReplaceItems(index int, items []Item) error {
	if index < 0 || index >= len(db.Feeds) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	db.Feeds[index].Items = items
	return nil
}

// SetTitle updates the display title of the feed at index.
func (db *Database) SetTitle(index int, title string) error {
	if index < 0 || index >= len(db.Feeds) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	db.Feeds[index].Title = title
	return nil
}

// FindFeed returns the index of the feed with the given URL, or -1.
func (db *Database) FindFeed(url string) int {
	for i, f := range db.Feeds {
		if f.URL == url {
			return i
		}
	}
	return -1
}

type codec struct {
	marshal   func(any) ([]byte, error)
	unmarshal func([]byte, any) error
}

func codecFor(path string) (codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return codec{
			marshal: func(v any) ([]byte, error) {
				data, err := json.MarshalIndent(v, "", "  ")
				if err != nil {
					return nil, err
				}
				return append(data, '\n'), nil
			},
			unmarshal: json.Unmarshal,
		}, nil
	case ".yml", ".yaml":
		return codec{
			marshal:   yaml.Marshal,
			unmarshal: yaml.Unmarshal,
		}, nil
	default:
		return codec{}, fmt.Errorf("%w: %s", ErrUnsupportedExtension, path)
	}
}
