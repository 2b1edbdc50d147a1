package utils

import (
	"net/url"
	"strings"
)

// IsValidHTTPURL reports whether raw parses as an absolute http or https URL.
func IsValidHTTPURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	return parsed.Host != ""
}

// NormalizeTitle trims whitespace and lowercases a title for case-insensitive
// uniqueness comparisons.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// SanitizeSortOrder restricts a sort direction to asc/desc, defaulting to desc.
func SanitizeSortOrder(order string) string {
	if order == "asc" || order == "desc" {
		return order
	}
	return "desc"
}

// SanitizeSortBy restricts a sort column to a whitelist, defaulting to
// created_at. Column names reach the SQL ORDER BY clause, so nothing outside
// the whitelist may pass.
func SanitizeSortBy(column string, allowed map[string]bool) string {
	if allowed[column] {
		return column
	}
	return "created_at"
}
