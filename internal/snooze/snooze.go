// Package snooze defines the client contract for the hosted story-sharing
// service. All calls are independent request/response exchanges; the service
// is the source of truth for story IDs and user profiles, while local state
// lives in the stories and session packages.
package snooze

import (
	"context"

	"github.com/snoozelabs/snooze-bot/internal/domain"
)

type Client interface {
	// FetchStories returns every story the service holds, in server order.
	FetchStories(ctx context.Context) ([]domain.Story, error)

	// CreateStory submits a draft under the given token and returns the
	// stored story with its server-assigned ID.
	CreateStory(ctx context.Context, token string, draft domain.StoryDraft) (domain.Story, error)

	// Signup registers a new account and returns the profile plus an issued
	// login token.
	Signup(ctx context.Context, username, password, name string) (domain.User, string, error)

	// Login authenticates existing credentials and returns the profile plus
	// an issued login token.
	Login(ctx context.Context, username, password string) (domain.User, string, error)

	// GetUser fetches a profile using a previously issued token.
	GetUser(ctx context.Context, token, username string) (domain.User, error)

	AddFavorite(ctx context.Context, token, username, storyID string) error
	RemoveFavorite(ctx context.Context, token, username, storyID string) error
}
