package feedimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/snoozelabs/snooze-bot/internal/domain"
	"github.com/snoozelabs/snooze-bot/internal/stories"
	"github.com/snoozelabs/snooze-bot/pkg/formatter"
	"github.com/snoozelabs/snooze-bot/pkg/retry"
)

// Refresh fetches the full story list and swaps it into the shared
// collection. Stories that were not cached before the swap are announced to
// subscribed chats, except on the very first load where everything would be
// "new".
func (f *FeedImpl) Refresh(ctx context.Context) error {
	firstLoad := f.Collection.Len() == 0
	known := f.Collection.KnownIDs()

	fetched, err := stories.FetchAll(ctx, f.Snooze)
	if err != nil {
		return fmt.Errorf("feed refresh: %w", err)
	}

	latest := fetched.Stories()
	f.Collection.Replace(latest)
	f.Logger.Info("Story feed refreshed", "count", len(latest))

	if firstLoad {
		return nil
	}

	var fresh []domain.Story
	for _, story := range latest {
		if _, ok := known[story.StoryID]; !ok {
			fresh = append(fresh, story)
		}
	}
	if len(fresh) > 0 {
		f.announce(ctx, fresh)
	}

	return nil
}

func (f *FeedImpl) announce(ctx context.Context, fresh []domain.Story) {
	chatIDs, err := f.SessionRepo.GetSubscribedChatIDs(ctx)
	if err != nil {
		f.Logger.Error("Failed to load subscribed chats", "error", err)
		return
	}
	if len(chatIDs) == 0 {
		return
	}

	for _, story := range fresh {
		text := announcementText(story)
		for _, chatID := range chatIDs {
			chatID := chatID
			send := func() error {
				_, err := f.Telegram.SendMarkdown(chatID, text)
				return err
			}
			if err := retry.Do(ctx, f.Logger, "AnnounceStory", send, retry.DefaultConfig()); err != nil {
				f.Logger.Error("Failed to announce story",
					"chatID", chatID,
					"storyId", story.StoryID,
					"error", err)
			}
		}
	}
}

func announcementText(story domain.Story) string {
	text := fmt.Sprintf("🆕 *%s*", formatter.EscapeMarkdownV2(story.Title))
	if host, err := story.Hostname(); err == nil {
		text += fmt.Sprintf(" \\(%s\\)", formatter.EscapeMarkdownV2(host))
	}
	text += fmt.Sprintf("\nby %s, posted by %s",
		formatter.EscapeMarkdownV2(story.Author),
		formatter.EscapeMarkdownV2(story.Username))
	return text
}

// ScheduleRefresh runs Refresh on a fixed interval until ctx is cancelled.
func (f *FeedImpl) ScheduleRefresh(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create feed scheduler: %w", err)
	}

	interval := time.Duration(f.Config.Feed.RefreshMinutes) * time.Minute

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				f.Logger.Info("Context cancelled, skipping feed refresh")
				return
			}

			if err := f.Refresh(ctx); err != nil {
				f.Logger.Error("Scheduled feed refresh failed", "error", err)
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule feed refresh: %w", err)
	}

	scheduler.Start()
	f.Logger.Info("Feed refresh scheduled", "interval", interval.String())

	go func() {
		<-ctx.Done()
		f.Logger.Info("Stopping feed refresh scheduler")
		if err := scheduler.Shutdown(); err != nil {
			f.Logger.Error("Failed to shut down feed scheduler", "error", err)
		}
	}()

	return nil
}
