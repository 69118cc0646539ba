package stories_test

import (
	"context"
	"testing"

	"github.com/go-playground/assert/v2"
	"github.com/snoozelabs/snooze-bot/internal/domain"
	"github.com/snoozelabs/snooze-bot/internal/session"
	"github.com/snoozelabs/snooze-bot/internal/stories"
	apperrors "github.com/snoozelabs/snooze-bot/pkg/errors"
	"github.com/snoozelabs/snooze-bot/pkg/logger"
)

type fakeClient struct {
	stories   []domain.Story
	fetchErr  error
	created   domain.Story
	createErr error
}

func (f *fakeClient) FetchStories(ctx context.Context) ([]domain.Story, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.stories, nil
}

func (f *fakeClient) CreateStory(ctx context.Context, token string, draft domain.StoryDraft) (domain.Story, error) {
	if f.createErr != nil {
		return domain.Story{}, f.createErr
	}
	return f.created, nil
}

func (f *fakeClient) Signup(ctx context.Context, username, password, name string) (domain.User, string, error) {
	return domain.User{Username: username, Name: name}, "tok", nil
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (domain.User, string, error) {
	return domain.User{Username: username}, "tok", nil
}

func (f *fakeClient) GetUser(ctx context.Context, token, username string) (domain.User, error) {
	return domain.User{Username: username}, nil
}

func (f *fakeClient) AddFavorite(ctx context.Context, token, username, storyID string) error {
	return nil
}

func (f *fakeClient) RemoveFavorite(ctx context.Context, token, username, storyID string) error {
	return nil
}

func story(id string) domain.Story {
	return domain.Story{
		StoryID:  id,
		Title:    "Story " + id,
		Author:   "Ada L",
		URL:      "https://news.example.com/" + id,
		Username: "ada",
	}
}

func loggedIn(t *testing.T, client *fakeClient) *session.Session {
	t.Helper()
	sess, err := session.Login(context.Background(), client, logger.New(logger.Opts{}), "ada", "x")
	assert.Equal(t, nil, err)
	return sess
}

func TestFetchAllKeepsServerOrder(t *testing.T) {
	client := &fakeClient{stories: []domain.Story{story("a"), story("b"), story("c")}}

	coll, err := stories.FetchAll(context.Background(), client)

	assert.Equal(t, nil, err)
	assert.Equal(t, 3, coll.Len())
	got := coll.Stories()
	assert.Equal(t, "a", got[0].StoryID)
	assert.Equal(t, "b", got[1].StoryID)
	assert.Equal(t, "c", got[2].StoryID)
}

func TestFetchAllPropagatesFailure(t *testing.T) {
	client := &fakeClient{fetchErr: apperrors.WrapWithCode(apperrors.ErrNetwork, "NETWORK", "down")}

	coll, err := stories.FetchAll(context.Background(), client)

	assert.Equal(t, true, apperrors.IsNetwork(err))
	assert.Equal(t, true, coll == nil)
}

func TestAddStoryPrependsToCollectionAndSession(t *testing.T) {
	client := &fakeClient{created: story("fresh")}
	sess := loggedIn(t, client)

	coll := stories.NewCollection()
	coll.Replace([]domain.Story{story("old")})

	created, err := coll.AddStory(context.Background(), client, sess, domain.StoryDraft{
		Title:  "Fresh",
		Author: "Ada L",
		URL:    "https://news.example.com/fresh",
	})

	assert.Equal(t, nil, err)
	assert.Equal(t, "fresh", created.StoryID)

	got := coll.Stories()
	assert.Equal(t, 2, len(got))
	assert.Equal(t, "fresh", got[0].StoryID)
	assert.Equal(t, "old", got[1].StoryID)

	own := sess.OwnStories()
	assert.Equal(t, 1, len(own))
	assert.Equal(t, "fresh", own[0].StoryID)
}

func TestAddStoryFailureLeavesStateUntouched(t *testing.T) {
	client := &fakeClient{createErr: apperrors.WrapWithCode(apperrors.ErrValidation, "422", "missing title")}
	sess := loggedIn(t, client)

	coll := stories.NewCollection()
	coll.Replace([]domain.Story{story("old")})

	_, err := coll.AddStory(context.Background(), client, sess, domain.StoryDraft{})

	assert.Equal(t, true, apperrors.IsValidation(err))
	assert.Equal(t, 1, coll.Len())
	assert.Equal(t, 0, len(sess.OwnStories()))
}

func TestAddStoryWithoutSession(t *testing.T) {
	client := &fakeClient{created: story("fresh")}
	coll := stories.NewCollection()

	_, err := coll.AddStory(context.Background(), client, nil, domain.StoryDraft{Title: "t"})

	assert.Equal(t, true, apperrors.IsUnauthorized(err))
	assert.Equal(t, 0, coll.Len())
}

func TestReplaceDropsDuplicateIDsKeepingFirst(t *testing.T) {
	first := story("dup")
	second := story("dup")
	second.Title = "Later copy"

	coll := stories.NewCollection()
	coll.Replace([]domain.Story{first, second, story("other")})

	got := coll.Stories()
	assert.Equal(t, 2, len(got))
	assert.Equal(t, "Story dup", got[0].Title)
	assert.Equal(t, "other", got[1].StoryID)
}

func TestRemoveIsLocalOnly(t *testing.T) {
	coll := stories.NewCollection()
	coll.Replace([]domain.Story{story("a"), story("b")})

	assert.Equal(t, true, coll.Remove("a"))
	assert.Equal(t, false, coll.Remove("a"))
	assert.Equal(t, 1, coll.Len())

	_, ok := coll.Get("a")
	assert.Equal(t, false, ok)
}

func TestGetAndAt(t *testing.T) {
	coll := stories.NewCollection()
	coll.Replace([]domain.Story{story("a"), story("b")})

	got, ok := coll.Get("b")
	assert.Equal(t, true, ok)
	assert.Equal(t, "Story b", got.Title)

	got, ok = coll.At(0)
	assert.Equal(t, true, ok)
	assert.Equal(t, "a", got.StoryID)

	_, ok = coll.At(2)
	assert.Equal(t, false, ok)
	_, ok = coll.At(-1)
	assert.Equal(t, false, ok)
}

func TestKnownIDs(t *testing.T) {
	coll := stories.NewCollection()
	coll.Replace([]domain.Story{story("a"), story("b")})

	ids := coll.KnownIDs()
	assert.Equal(t, 2, len(ids))
	_, ok := ids["a"]
	assert.Equal(t, true, ok)
}
