// Package session holds the authenticated actor's local state: profile,
// login token, favorites and own stories. Favorite changes apply locally
// first and are confirmed with the service in the background; local state
// stays authoritative whatever the remote outcome.
package session

import (
	"context"
	"sync"

	"github.com/snoozelabs/snooze-bot/internal/domain"
	"github.com/snoozelabs/snooze-bot/internal/snooze"
	"github.com/snoozelabs/snooze-bot/pkg/logger"
)

type Session struct {
	mu     sync.RWMutex
	user   domain.User
	token  string
	client snooze.Client
	logger logger.Logger
}

func newSession(user domain.User, token string, client snooze.Client, log logger.Logger) *Session {
	return &Session{
		user:   user,
		token:  token,
		client: client,
		logger: log.WithComponent("Session"),
	}
}

// Signup registers a new account and returns a live session for it.
func Signup(ctx context.Context, client snooze.Client, log logger.Logger, username, password, name string) (*Session, error) {
	user, token, err := client.Signup(ctx, username, password, name)
	if err != nil {
		return nil, err
	}
	return newSession(user, token, client, log), nil
}

// Login authenticates existing credentials and returns a live session.
func Login(ctx context.Context, client snooze.Client, log logger.Logger, username, password string) (*Session, error) {
	user, token, err := client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return newSession(user, token, client, log), nil
}

// Restore re-authenticates a previously issued token. Unlike Signup and
// Login it never reports an error: restore is a best-effort startup check,
// so any failure is logged and answered with nil, meaning "no valid
// session".
func Restore(ctx context.Context, client snooze.Client, log logger.Logger, token, username string) *Session {
	if token == "" || username == "" {
		return nil
	}

	user, err := client.GetUser(ctx, token, username)
	if err != nil {
		log.Warn("Session restore failed, continuing logged out",
			"username", username,
			"error", err)
		return nil
	}

	return newSession(user, token, client, log)
}

func (s *Session) Username() string {
	return s.user.Username
}

func (s *Session) Name() string {
	return s.user.Name
}

// Token returns the opaque credential issued at login. Needed by callers
// that attach it to mutating service calls or persist it for restore.
func (s *Session) Token() string {
	return s.token
}

// Favorites returns a snapshot of the favorites sequence.
func (s *Session) Favorites() []domain.Story {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Story(nil), s.user.Favorites...)
}

// OwnStories returns a snapshot of the stories this user submitted,
// newest-first.
func (s *Session) OwnStories() []domain.Story {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Story(nil), s.user.OwnStories...)
}

// PrependOwnStory records a freshly created story as the newest own story.
func (s *Session) PrependOwnStory(story domain.Story) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user.OwnStories = append([]domain.Story{story}, s.user.OwnStories...)
}

// IsFavorite reports whether a story with the same StoryID is currently
// favorited. Pure local query, no service call.
func (s *Session) IsFavorite(story domain.Story) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOfFavorite(story.StoryID) >= 0
}

// AddFavorite marks a story as favorite. The local insert happens
// immediately and is idempotent; the service confirmation runs detached and
// a failure there is only logged, never rolled back.
func (s *Session) AddFavorite(story domain.Story) {
	s.mu.Lock()
	if s.indexOfFavorite(story.StoryID) >= 0 {
		s.mu.Unlock()
		return
	}
	s.user.Favorites = append(s.user.Favorites, story)
	username, token := s.user.Username, s.token
	s.mu.Unlock()

	go func() {
		if err := s.client.AddFavorite(context.Background(), token, username, story.StoryID); err != nil {
			s.logger.Warn("Failed to confirm favorite with the story service",
				"storyId", story.StoryID,
				"username", username,
				"error", err)
		}
	}()
}

// RemoveFavorite drops any favorite with a matching StoryID. Same contract
// as AddFavorite: local removal is immediate, remote failure is only logged.
func (s *Session) RemoveFavorite(story domain.Story) {
	s.mu.Lock()
	idx := s.indexOfFavorite(story.StoryID)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.user.Favorites = append(s.user.Favorites[:idx], s.user.Favorites[idx+1:]...)
	username, token := s.user.Username, s.token
	s.mu.Unlock()

	go func() {
		if err := s.client.RemoveFavorite(context.Background(), token, username, story.StoryID); err != nil {
			s.logger.Warn("Failed to confirm unfavorite with the story service",
				"storyId", story.StoryID,
				"username", username,
				"error", err)
		}
	}()
}

// caller must hold mu
func (s *Session) indexOfFavorite(storyID string) int {
	for i, fav := range s.user.Favorites {
		if fav.StoryID == storyID {
			return i
		}
	}
	return -1
}
