package formatter

import (
	"fmt"
	"strings"

	"github.com/snoozelabs/snooze-bot/internal/domain"
)

// StoryLine renders one story as a numbered plain-text line, mirroring the
// web layout: title, hostname in parentheses, author and poster. The
// hostname is skipped when the stored URL cannot be parsed.
func StoryLine(index int, story domain.Story, favorite bool) string {
	var b strings.Builder

	marker := " "
	if favorite {
		marker = "★"
	}

	fmt.Fprintf(&b, "%d.%s %s", index, marker, story.Title)

	if host, err := story.Hostname(); err == nil {
		fmt.Fprintf(&b, " (%s)", host)
	}

	fmt.Fprintf(&b, "\n    by %s, posted by %s", story.Author, story.Username)
	if story.URL != "" {
		fmt.Fprintf(&b, "\n    %s", story.URL)
	}

	return b.String()
}

// StoryList renders a numbered list of stories, one StoryLine per entry.
// favorite reports whether a given story should carry the favorite marker;
// a nil func renders without markers.
func StoryList(stories []domain.Story, favorite func(domain.Story) bool) string {
	var b strings.Builder
	for i, story := range stories {
		if i > 0 {
			b.WriteString("\n")
		}
		fav := false
		if favorite != nil {
			fav = favorite(story)
		}
		b.WriteString(StoryLine(i+1, story, fav))
	}
	return b.String()
}

// EscapeMarkdownV2 escapes special characters in Markdown V2 format
func EscapeMarkdownV2(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '_', '*', '[', ']', '(', ')', '~', '`', '>', '#', '+', '-', '=', '|', '{', '}', '.', '!':
			sb.WriteRune('\\')
			sb.WriteRune(r)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
