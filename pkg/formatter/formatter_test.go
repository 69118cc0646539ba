package formatter

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
	"github.com/snoozelabs/snooze-bot/internal/domain"
)

func TestStoryLine(t *testing.T) {
	story := domain.Story{
		StoryID:  "s1",
		Title:    "Go at scale",
		Author:   "Ada L",
		URL:      "https://blog.example.com/go",
		Username: "ada",
	}

	line := StoryLine(1, story, true)

	assert.Equal(t, true, strings.Contains(line, "1.★ Go at scale"))
	assert.Equal(t, true, strings.Contains(line, "(blog.example.com)"))
	assert.Equal(t, true, strings.Contains(line, "by Ada L, posted by ada"))
}

func TestStoryLineSkipsBadHostname(t *testing.T) {
	story := domain.Story{StoryID: "s1", Title: "No link", Author: "a", URL: "not-a-url", Username: "u"}

	line := StoryLine(2, story, false)

	assert.Equal(t, false, strings.Contains(line, "("))
	assert.Equal(t, true, strings.Contains(line, "2.  No link"))
}

func TestStoryList(t *testing.T) {
	stories := []domain.Story{
		{StoryID: "a", Title: "First", URL: "https://one.test/x"},
		{StoryID: "b", Title: "Second", URL: "https://two.test/y"},
	}

	out := StoryList(stories, func(s domain.Story) bool { return s.StoryID == "b" })

	assert.Equal(t, true, strings.Contains(out, "1.  First"))
	assert.Equal(t, true, strings.Contains(out, "2.★ Second"))
}

func TestEscapeMarkdownV2(t *testing.T) {
	assert.Equal(t, "a\\.b\\*c", EscapeMarkdownV2("a.b*c"))
	assert.Equal(t, "plain", EscapeMarkdownV2("plain"))
}
