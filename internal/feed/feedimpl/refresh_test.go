package feedimpl

import (
	"context"
	"testing"

	"github.com/go-playground/assert/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/snoozelabs/snooze-bot/internal/domain"
	"github.com/snoozelabs/snooze-bot/internal/repositories/chatsession"
	"github.com/snoozelabs/snooze-bot/internal/stories"
	"github.com/snoozelabs/snooze-bot/pkg/config"
	"github.com/snoozelabs/snooze-bot/pkg/logger"
)

type fakeSnooze struct {
	stories []domain.Story
}

func (f *fakeSnooze) FetchStories(ctx context.Context) ([]domain.Story, error) {
	return f.stories, nil
}

func (f *fakeSnooze) CreateStory(ctx context.Context, token string, draft domain.StoryDraft) (domain.Story, error) {
	return domain.Story{}, nil
}

func (f *fakeSnooze) Signup(ctx context.Context, username, password, name string) (domain.User, string, error) {
	return domain.User{}, "", nil
}

func (f *fakeSnooze) Login(ctx context.Context, username, password string) (domain.User, string, error) {
	return domain.User{}, "", nil
}

func (f *fakeSnooze) GetUser(ctx context.Context, token, username string) (domain.User, error) {
	return domain.User{}, nil
}

func (f *fakeSnooze) AddFavorite(ctx context.Context, token, username, storyID string) error {
	return nil
}

func (f *fakeSnooze) RemoveFavorite(ctx context.Context, token, username, storyID string) error {
	return nil
}

type sentMessage struct {
	chatID int64
	text   string
}

type fakeTelegram struct {
	sent []sentMessage
}

func (f *fakeTelegram) GetUpdatesChan(u tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return nil
}

func (f *fakeTelegram) StopReceivingUpdates() {}

func (f *fakeTelegram) SendMessage(chatID int64, text string) (int, error) {
	f.sent = append(f.sent, sentMessage{chatID: chatID, text: text})
	return 1, nil
}

func (f *fakeTelegram) SendMarkdown(chatID int64, text string) (int, error) {
	f.sent = append(f.sent, sentMessage{chatID: chatID, text: text})
	return 1, nil
}

func (f *fakeTelegram) SendMessageToAdmin(msg string) {}

type fakeSessionRepo struct {
	subscribed []int64
}

func (f *fakeSessionRepo) Upsert(ctx context.Context, session domain.ChatSession) error {
	return nil
}

func (f *fakeSessionRepo) GetByChatID(ctx context.Context, chatID int64) (*domain.ChatSession, error) {
	return nil, chatsession.ErrNotFound
}

func (f *fakeSessionRepo) GetAll(ctx context.Context) ([]*domain.ChatSession, error) {
	return nil, nil
}

func (f *fakeSessionRepo) SetSubscribed(ctx context.Context, chatID int64, subscribed bool) error {
	return nil
}

func (f *fakeSessionRepo) GetSubscribedChatIDs(ctx context.Context) ([]int64, error) {
	return f.subscribed, nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, chatID int64) error {
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

func newTestFeed(snoozeClient *fakeSnooze, tg *fakeTelegram, repo *fakeSessionRepo) *FeedImpl {
	cfg := &config.Config{}
	cfg.Feed.RefreshMinutes = 10

	return &FeedImpl{
		Snooze:      snoozeClient,
		Telegram:    tg,
		Collection:  stories.NewCollection(),
		SessionRepo: repo,
		Logger:      logger.New(logger.Opts{}),
		Config:      cfg,
	}
}

func TestRefreshFirstLoadDoesNotAnnounce(t *testing.T) {
	snoozeClient := &fakeSnooze{stories: []domain.Story{story("a"), story("b")}}
	tg := &fakeTelegram{}
	repo := &fakeSessionRepo{subscribed: []int64{42}}
	f := newTestFeed(snoozeClient, tg, repo)

	err := f.Refresh(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, f.Collection.Len())
	assert.Equal(t, 0, len(tg.sent))
}

func TestRefreshAnnouncesOnlyNewStories(t *testing.T) {
	snoozeClient := &fakeSnooze{stories: []domain.Story{story("a")}}
	tg := &fakeTelegram{}
	repo := &fakeSessionRepo{subscribed: []int64{42}}
	f := newTestFeed(snoozeClient, tg, repo)

	assert.Equal(t, nil, f.Refresh(context.Background()))

	snoozeClient.stories = []domain.Story{story("b"), story("a")}
	assert.Equal(t, nil, f.Refresh(context.Background()))

	assert.Equal(t, 2, f.Collection.Len())
	assert.Equal(t, 1, len(tg.sent))
	assert.Equal(t, int64(42), tg.sent[0].chatID)
	assert.MatchRegex(t, tg.sent[0].text, "Story b")
}

func TestRefreshWithoutSubscribersStaysQuiet(t *testing.T) {
	snoozeClient := &fakeSnooze{stories: []domain.Story{story("a")}}
	tg := &fakeTelegram{}
	repo := &fakeSessionRepo{}
	f := newTestFeed(snoozeClient, tg, repo)

	assert.Equal(t, nil, f.Refresh(context.Background()))

	snoozeClient.stories = []domain.Story{story("b"), story("a")}
	assert.Equal(t, nil, f.Refresh(context.Background()))

	assert.Equal(t, 0, len(tg.sent))
}

func TestAnnouncementTextEscapesMarkdown(t *testing.T) {
	s := domain.Story{
		StoryID:  "x",
		Title:    "Big (news) day!",
		Author:   "Ada L",
		URL:      "https://news.example.com/x",
		Username: "ada_dev",
	}

	text := announcementText(s)

	assert.MatchRegex(t, text, `Big \\\(news\\\) day`)
	assert.MatchRegex(t, text, "news\\\\.example\\\\.com")
	assert.MatchRegex(t, text, "ada\\\\_dev")
}
