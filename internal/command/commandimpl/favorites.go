package commandimpl

import (
	"context"
	"errors"
	"fmt"

	"github.com/snoozelabs/snooze-bot/internal/repositories/chatsession"
	"github.com/snoozelabs/snooze-bot/pkg/formatter"
)

func (c *CommandImpl) handleFav(chatID int64, args string) {
	sess, ok := c.Sessions.Get(chatID)
	if !ok {
		c.Telegram.SendMessage(chatID, "Log in first to manage favorites.")
		return
	}

	story, ok := c.storyAtArg(chatID, args)
	if !ok {
		return
	}

	// Applied locally right away; the service confirmation runs in the
	// background and never blocks or fails this command.
	sess.AddFavorite(story)
	c.Telegram.SendMessage(chatID, fmt.Sprintf("★ Added to favorites: %s", story.Title))
}

func (c *CommandImpl) handleUnfav(chatID int64, args string) {
	sess, ok := c.Sessions.Get(chatID)
	if !ok {
		c.Telegram.SendMessage(chatID, "Log in first to manage favorites.")
		return
	}

	story, ok := c.storyAtArg(chatID, args)
	if !ok {
		return
	}

	sess.RemoveFavorite(story)
	c.Telegram.SendMessage(chatID, fmt.Sprintf("Removed from favorites: %s", story.Title))
}

func (c *CommandImpl) handleFavorites(chatID int64) {
	sess, ok := c.Sessions.Get(chatID)
	if !ok {
		c.Telegram.SendMessage(chatID, "Log in first to see favorites.")
		return
	}

	favorites := sess.Favorites()
	if len(favorites) == 0 {
		c.Telegram.SendMessage(chatID, "No favorites added!")
		return
	}

	c.Telegram.SendMessage(chatID, formatter.StoryList(favorites, nil))
}

func (c *CommandImpl) handleSubscribe(ctx context.Context, chatID int64) {
	err := c.SessionRepo.SetSubscribed(ctx, chatID, true)
	if err != nil {
		if errors.Is(err, chatsession.ErrNotFound) {
			c.Telegram.SendMessage(chatID, "Log in first, then /subscribe.")
		} else {
			c.Logger.Error("Failed to subscribe chat", "chatID", chatID, "error", err)
			c.Telegram.SendMessage(chatID, "Something went wrong. Try again later.")
		}
		return
	}

	c.Telegram.SendMessage(chatID, "✅ Subscribed. New stories will be announced here.")
}

func (c *CommandImpl) handleUnsubscribe(ctx context.Context, chatID int64) {
	err := c.SessionRepo.SetSubscribed(ctx, chatID, false)
	if err != nil {
		if errors.Is(err, chatsession.ErrNotFound) {
			c.Telegram.SendMessage(chatID, "This chat has no subscription.")
		} else {
			c.Logger.Error("Failed to unsubscribe chat", "chatID", chatID, "error", err)
			c.Telegram.SendMessage(chatID, "Something went wrong. Try again later.")
		}
		return
	}

	c.Telegram.SendMessage(chatID, "Unsubscribed. No more announcements in this chat.")
}
