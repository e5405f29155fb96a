package validation

import (
	"fmt"
	"net/url"
	"strings"
)

const maxURLLength = 2048

// ValidateFeedURL checks and normalizes a user-entered feed URL. A missing
// scheme defaults to https. Returns the normalized URL.
func ValidateFeedURL(input string) (string, error) {
	input = strings.TrimSpace(input)

	if input == "" {
		return "", fmt.Errorf("URL cannot be empty")
	}
	if len(input) > maxURLLength {
		return "", fmt.Errorf("URL too long (max %d characters)", maxURLLength)
	}
	if strings.ContainsAny(input, "<>\"'` ") {
		return "", fmt.Errorf("URL contains invalid characters")
	}

	if !strings.HasPrefix(input, "http://") && !strings.HasPrefix(input, "https://") {
		input = "https://" + input
	}

	parsed, err := url.Parse(input)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("URL has no host")
	}

	return parsed.String(), nil
}

// HostOf extracts the host from a URL for use as a placeholder feed title.
// Falls back to the raw input when it does not parse.
func HostOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return rawURL
	}
	return parsed.Host
}
