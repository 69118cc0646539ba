package domain

import (
	"testing"

	"github.com/go-playground/assert/v2"
	apperrors "github.com/snoozelabs/snooze-bot/pkg/errors"
)

func TestHostname(t *testing.T) {
	story := Story{StoryID: "s1", URL: "https://news.example.com/a/b"}

	host, err := story.Hostname()

	assert.Equal(t, nil, err)
	assert.Equal(t, "news.example.com", host)
}

func TestHostnameStripsPort(t *testing.T) {
	story := Story{StoryID: "s1", URL: "http://localhost:8080/x"}

	host, err := story.Hostname()

	assert.Equal(t, nil, err)
	assert.Equal(t, "localhost", host)
}

func TestHostnameRejectsRelativeURL(t *testing.T) {
	story := Story{StoryID: "s1", URL: "not-a-url"}

	_, err := story.Hostname()

	assert.Equal(t, true, apperrors.IsInvalidURL(err))
}

func TestHostnameRejectsEmptyURL(t *testing.T) {
	story := Story{StoryID: "s1"}

	_, err := story.Hostname()

	assert.Equal(t, true, apperrors.IsInvalidURL(err))
}
