package tui

// truncate shortens s to at most limit characters, appending an ellipsis
// if truncation occurs. Counts runes, not bytes, so multibyte titles are
// never cut mid-character. Handles negative or tiny limits gracefully.
func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if limit <= 1 {
		return "…"
	}
	return string(r[:limit-1]) + "…"
}
