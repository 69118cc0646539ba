package snoozeimpl

import (
	"context"
	"net/http"

	"github.com/snoozelabs/snooze-bot/internal/domain"
)

// FetchStories reads the full story list, preserving server order.
func (c *SnoozeImpl) FetchStories(ctx context.Context) ([]domain.Story, error) {
	var resp storiesResponse
	if err := c.do(ctx, http.MethodGet, "/stories", nil, nil, &resp); err != nil {
		return nil, err
	}

	return toDomainStories(resp.Stories), nil
}

// CreateStory submits a draft and returns the stored story. The service
// assigns the canonical StoryID, so there is nothing to insert locally until
// this call has succeeded.
func (c *SnoozeImpl) CreateStory(ctx context.Context, token string, draft domain.StoryDraft) (domain.Story, error) {
	req := createStoryRequest{
		Token: token,
		Story: storyDraftPayload{
			Title:  draft.Title,
			Author: draft.Author,
			URL:    draft.URL,
		},
	}

	var resp storyResponse
	if err := c.do(ctx, http.MethodPost, "/stories", nil, req, &resp); err != nil {
		return domain.Story{}, err
	}

	return resp.Story.toDomain(), nil
}
