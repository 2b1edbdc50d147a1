package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidHTTPURL(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"https://example.com/demo", true},
		{"http://example.com", true},
		{"ftp://example.com", false},
		{"example.com", false},
		{"https://", false},
		{"", false},
		{"javascript:alert(1)", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidHTTPURL(tt.raw))
		})
	}
}

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "solar charger", NormalizeTitle("  Solar Charger "))
	assert.Equal(t, "solar charger", NormalizeTitle("SOLAR CHARGER"))
	assert.Equal(t, "", NormalizeTitle("   "))
}

func TestSanitizeSortOrder(t *testing.T) {
	assert.Equal(t, "asc", SanitizeSortOrder("asc"))
	assert.Equal(t, "desc", SanitizeSortOrder("desc"))
	assert.Equal(t, "desc", SanitizeSortOrder("ASC"))
	assert.Equal(t, "desc", SanitizeSortOrder("; DROP TABLE ideas"))
	assert.Equal(t, "desc", SanitizeSortOrder(""))
}

func TestSanitizeSortBy(t *testing.T) {
	allowed := map[string]bool{"created_at": true, "title": true}

	assert.Equal(t, "title", SanitizeSortBy("title", allowed))
	assert.Equal(t, "created_at", SanitizeSortBy("created_at", allowed))
	assert.Equal(t, "created_at", SanitizeSortBy("password", allowed))
	assert.Equal(t, "created_at", SanitizeSortBy("", allowed))
}
