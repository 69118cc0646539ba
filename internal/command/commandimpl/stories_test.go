package commandimpl

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestParseDraft(t *testing.T) {
	draft, ok := parseDraft("My Title | Ada L | https://news.example.com/a")
	assert.Equal(t, true, ok)
	assert.Equal(t, "My Title", draft.Title)
	assert.Equal(t, "Ada L", draft.Author)
	assert.Equal(t, "https://news.example.com/a", draft.URL)
}

func TestParseDraftRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"just a title",
		"title | author",
		"title | author | url | extra",
		" | author | url",
		"title |  | url",
		"title | author |   ",
	}

	for _, input := range cases {
		_, ok := parseDraft(input)
		assert.Equal(t, false, ok)
	}
}
