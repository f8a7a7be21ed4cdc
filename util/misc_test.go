package util

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestFixURL(t *testing.T) {
	assert.Equal(t,
		"https://preview.redd.it/a.jpg?width=640&s=abc",
		FixURL("https://preview.redd.it/a.jpg?width=640&amp;s=abc"))
	assert.Equal(t, "https://example.com/plain", FixURL("https://example.com/plain"))
	assert.Equal(t, "", FixURL(""))
}

func TestNormalizeSubreddit(t *testing.T) {
	assert.Equal(t, "golang", NormalizeSubreddit("golang"))
	assert.Equal(t, "golang", NormalizeSubreddit("r/Golang"))
	assert.Equal(t, "golang", NormalizeSubreddit("  GoLang  "))
	assert.Equal(t, "", NormalizeSubreddit(""))
}

func TestGetLastError(t *testing.T) {
	root := errors.New("root cause")
	wrapped := fmt.Errorf("outer: %w", fmt.Errorf("middle: %w", root))
	assert.Equal(t, root, GetLastError(wrapped))
	assert.Equal(t, root, GetLastError(root))
}
