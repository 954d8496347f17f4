package wpa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	assert.Equal(t, "\"candy\"", quote("candy"))
	assert.Equal(t, "\"\"", quote(""))
}

func TestUnquote(t *testing.T) {
	assert.Equal(t, "candy", unquote("\"candy\""))
	assert.Equal(t, "", unquote("\"\""))

	// Unquoted values pass through untouched.
	assert.Equal(t, "candy", unquote("candy"))
	assert.Equal(t, "\"", unquote("\""))
}
