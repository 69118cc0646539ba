package commandimpl

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/snoozelabs/snooze-bot/internal/domain"
	apperrors "github.com/snoozelabs/snooze-bot/pkg/errors"
	"github.com/snoozelabs/snooze-bot/pkg/formatter"
)

func (c *CommandImpl) handleLatest(ctx context.Context, chatID int64) error {
	if c.Collection.Len() == 0 {
		if err := c.Feed.Refresh(ctx); err != nil {
			c.Logger.Error("Failed to fetch stories", "error", err)
			_, err := c.Telegram.SendMessage(chatID, "Could not fetch stories from the service. Try again later.")
			return err
		}
	}

	list := c.Collection.Stories()
	if len(list) == 0 {
		_, err := c.Telegram.SendMessage(chatID, "No stories yet.")
		return err
	}

	var favorite func(domain.Story) bool
	if sess, ok := c.Sessions.Get(chatID); ok {
		favorite = sess.IsFavorite
	}

	_, err := c.Telegram.SendMessage(chatID, formatter.StoryList(list, favorite))
	return err
}

func (c *CommandImpl) handleSubmit(ctx context.Context, chatID int64, args string) error {
	sess, ok := c.Sessions.Get(chatID)
	if !ok {
		_, err := c.Telegram.SendMessage(chatID, "Log in first to submit a story.")
		return err
	}

	draft, ok := parseDraft(args)
	if !ok {
		_, err := c.Telegram.SendMessage(chatID, "Usage: /submit <title> | <author> | <url>")
		return err
	}

	story, err := c.Collection.AddStory(ctx, c.Snooze, sess, draft)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			c.Telegram.SendMessage(chatID, "The service rejected the story, check the fields (the url must be absolute).")
		case apperrors.IsUnauthorized(err):
			c.Telegram.SendMessage(chatID, "Your session token is no longer valid. Log in again.")
		case apperrors.IsNetwork(err):
			c.Telegram.SendMessage(chatID, "Could not reach the story service. Nothing was submitted.")
		default:
			c.Logger.Error("Story submission failed", "chatID", chatID, "error", err)
			c.Telegram.SendMessage(chatID, "Submitting the story failed. Try again later.")
		}
		return nil
	}

	_, err = c.Telegram.SendMessage(chatID, fmt.Sprintf("✅ Story submitted: %s", story.Title))
	return err
}

func (c *CommandImpl) handleMyStories(chatID int64) {
	sess, ok := c.Sessions.Get(chatID)
	if !ok {
		c.Telegram.SendMessage(chatID, "Log in first to see your stories.")
		return
	}

	own := sess.OwnStories()
	if len(own) == 0 {
		c.Telegram.SendMessage(chatID, "You have not submitted any stories yet.")
		return
	}

	c.Telegram.SendMessage(chatID, formatter.StoryList(own, sess.IsFavorite))
}

func (c *CommandImpl) handleHide(chatID int64, args string) {
	story, ok := c.storyAtArg(chatID, args)
	if !ok {
		return
	}

	c.Collection.Remove(story.StoryID)
	c.Telegram.SendMessage(chatID, fmt.Sprintf("Hidden: %s (it returns with the next refresh).", story.Title))
}

// storyAtArg resolves a 1-based list index argument against the current
// collection and reports usage errors to the chat.
func (c *CommandImpl) storyAtArg(chatID int64, args string) (domain.Story, bool) {
	index, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil || index < 1 {
		c.Telegram.SendMessage(chatID, "Give the number of a story from /latest, e.g. 3.")
		return domain.Story{}, false
	}

	story, ok := c.Collection.At(index - 1)
	if !ok {
		c.Telegram.SendMessage(chatID, fmt.Sprintf("There is no story %d in the current list.", index))
		return domain.Story{}, false
	}
	return story, true
}

// parseDraft splits "title | author | url" into a draft. All three parts
// must be non-empty; validation beyond that is the service's call.
func parseDraft(args string) (domain.StoryDraft, bool) {
	parts := strings.Split(args, "|")
	if len(parts) != 3 {
		return domain.StoryDraft{}, false
	}

	draft := domain.StoryDraft{
		Title:  strings.TrimSpace(parts[0]),
		Author: strings.TrimSpace(parts[1]),
		URL:    strings.TrimSpace(parts[2]),
	}
	if draft.Title == "" || draft.Author == "" || draft.URL == "" {
		return domain.StoryDraft{}, false
	}
	return draft, true
}
