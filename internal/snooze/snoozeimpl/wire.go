package snoozeimpl

import (
	"time"

	"github.com/snoozelabs/snooze-bot/internal/domain"
)

// Wire shapes of the story service. The service is loose about the field
// carrying authored stories (`stories` on auth responses, `ownStories` on
// profile reads), so normalization to domain.User happens here and nowhere
// else.

type storyPayload struct {
	StoryID   string `json:"storyId"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	URL       string `json:"url"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
}

func (p storyPayload) toDomain() domain.Story {
	createdAt, err := time.Parse(time.RFC3339, p.CreatedAt)
	if err != nil {
		createdAt = time.Time{}
	}

	return domain.Story{
		StoryID:   p.StoryID,
		Title:     p.Title,
		Author:    p.Author,
		URL:       p.URL,
		Username:  p.Username,
		CreatedAt: createdAt,
	}
}

func toDomainStories(payloads []storyPayload) []domain.Story {
	stories := make([]domain.Story, 0, len(payloads))
	for _, p := range payloads {
		stories = append(stories, p.toDomain())
	}
	return stories
}

type userPayload struct {
	Username   string         `json:"username"`
	Name       string         `json:"name"`
	CreatedAt  string         `json:"createdAt"`
	Favorites  []storyPayload `json:"favorites"`
	Stories    []storyPayload `json:"stories"`
	OwnStories []storyPayload `json:"ownStories"`
}

func (p userPayload) toDomain() domain.User {
	createdAt, err := time.Parse(time.RFC3339, p.CreatedAt)
	if err != nil {
		createdAt = time.Time{}
	}

	own := p.OwnStories
	if len(own) == 0 {
		own = p.Stories
	}

	return domain.User{
		Username:   p.Username,
		Name:       p.Name,
		CreatedAt:  createdAt,
		Favorites:  toDomainStories(p.Favorites),
		OwnStories: toDomainStories(own),
	}
}

type storiesResponse struct {
	Stories []storyPayload `json:"stories"`
}

type storyResponse struct {
	Story storyPayload `json:"story"`
}

type authResponse struct {
	User  userPayload `json:"user"`
	Token string      `json:"token"`
}

type userResponse struct {
	User userPayload `json:"user"`
}

type storyDraftPayload struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
}

type createStoryRequest struct {
	Token string            `json:"token"`
	Story storyDraftPayload `json:"story"`
}

type signupRequest struct {
	User signupUserPayload `json:"user"`
}

type signupUserPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	User loginUserPayload `json:"user"`
}

type loginUserPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenRequest struct {
	Token string `json:"token"`
}
