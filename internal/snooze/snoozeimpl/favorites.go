package snoozeimpl

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

func (c *SnoozeImpl) AddFavorite(ctx context.Context, token, username, storyID string) error {
	return c.do(ctx, http.MethodPost, favoritePath(username, storyID), nil, tokenRequest{Token: token}, nil)
}

func (c *SnoozeImpl) RemoveFavorite(ctx context.Context, token, username, storyID string) error {
	return c.do(ctx, http.MethodDelete, favoritePath(username, storyID), nil, tokenRequest{Token: token}, nil)
}

func favoritePath(username, storyID string) string {
	return fmt.Sprintf("/users/%s/favorites/%s", url.PathEscape(username), url.PathEscape(storyID))
}
