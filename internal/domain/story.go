package domain

import (
	"fmt"
	"net/url"
	"time"

	apperrors "github.com/snoozelabs/snooze-bot/pkg/errors"
)

// Story is one shared story record as the service returns it. Instances are
// value objects: a changed story arrives as a replacement, never as a
// mutation of an existing one.
type Story struct {
	StoryID   string
	Title     string
	Author    string
	URL       string
	Username  string
	CreatedAt time.Time
}

// StoryDraft carries the three user-supplied fields of a story submission.
// The service assigns StoryID, Username and CreatedAt on creation.
type StoryDraft struct {
	Title  string
	Author string
	URL    string
}

// Hostname extracts the host part of the story URL for display. The URL must
// be absolute; anything else fails with ErrInvalidURL.
func (s Story) Hostname() (string, error) {
	u, err := url.Parse(s.URL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return "", apperrors.WrapWithCode(
			apperrors.ErrInvalidURL,
			"INVALID_URL",
			fmt.Sprintf("cannot derive hostname from %q", s.URL),
		)
	}
	return u.Hostname(), nil
}
