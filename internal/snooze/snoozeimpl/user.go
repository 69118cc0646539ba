package snoozeimpl

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/snoozelabs/snooze-bot/internal/domain"
)

func (c *SnoozeImpl) Signup(ctx context.Context, username, password, name string) (domain.User, string, error) {
	req := signupRequest{
		User: signupUserPayload{
			Username: username,
			Password: password,
			Name:     name,
		},
	}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/signup", nil, req, &resp); err != nil {
		return domain.User{}, "", err
	}

	return resp.User.toDomain(), resp.Token, nil
}

func (c *SnoozeImpl) Login(ctx context.Context, username, password string) (domain.User, string, error) {
	req := loginRequest{
		User: loginUserPayload{
			Username: username,
			Password: password,
		},
	}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/login", nil, req, &resp); err != nil {
		return domain.User{}, "", err
	}

	return resp.User.toDomain(), resp.Token, nil
}

func (c *SnoozeImpl) GetUser(ctx context.Context, token, username string) (domain.User, error) {
	query := url.Values{}
	query.Set("token", token)

	var resp userResponse
	path := fmt.Sprintf("/users/%s", url.PathEscape(username))
	if err := c.do(ctx, http.MethodGet, path, query, nil, &resp); err != nil {
		return domain.User{}, err
	}

	return resp.User.toDomain(), nil
}
