package feed

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedterm/internal/config"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Example Feed</title>
    <link>https://example.com</link>
    <item>
      <title>First Post</title>
      <link>https://example.com/1</link>
      <pubDate>Thu, 02 Jan 2025 10:00:00 GMT</pubDate>
    </item>
    <item>
      <link>https://example.com/2</link>
    </item>
  </channel>
</rss>`

func TestFetcher_Fetch(t *testing.T) {
	tests := []struct {
		name           string
		serverResponse func(w http.ResponseWriter, r *http.Request)
		wantErr        error
		check          func(t *testing.T, result *Result)
	}{
		{
			name: "successful fetch",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "feedterm-test/1.0", r.Header.Get("User-Agent"))
				assert.Contains(t, r.Header.Get("Accept"), "application/rss+xml")
				w.Header().Set("Content-Type", "application/rss+xml")
				w.Write([]byte(sampleRSS))
			},
			check: func(t *testing.T, result *Result) {
				assert.Equal(t, "Example Feed", result.Title)
				require.Len(t, result.Items, 2)
				assert.Equal(t, "First Post", result.Items[0].Title)
				assert.Equal(t, "https://example.com/1", result.Items[0].Link)
				assert.Equal(t, "2025-01-02T10:00:00Z", result.Items[0].Published)
				// Entries without a title get a placeholder, without a
				// date an empty published field.
				assert.Equal(t, "Untitled", result.Items[1].Title)
				assert.Empty(t, result.Items[1].Published)
			},
		},
		{
			name: "not found",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantErr: ErrHTTP,
		},
		{
			name: "server error",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr: ErrHTTP,
		},
		{
			name: "body is not a feed",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html><body>nope</body></html>"))
			},
			wantErr: ErrParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(tt.serverResponse))
			defer server.Close()

			fetcher := NewFetcher(config.TestConfig())
			result, err := fetcher.Fetch(server.URL)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			tt.check(t, result)
		})
	}
}

func TestFetcher_FetchUnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	fetcher := NewFetcher(config.TestConfig())
	_, err := fetcher.Fetch(url)

	assert.ErrorIs(t, err, ErrNetwork)
}

func TestFetchErrorsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrNetwork, ErrHTTP))
	assert.False(t, errors.Is(ErrHTTP, ErrParse))
}
