package commandimpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/snoozelabs/snooze-bot/internal/domain"
	"github.com/snoozelabs/snooze-bot/internal/session"
	apperrors "github.com/snoozelabs/snooze-bot/pkg/errors"
)

func (c *CommandImpl) handleSignup(ctx context.Context, chatID int64, args string) {
	fields := strings.Fields(args)
	if len(fields) < 3 {
		c.Telegram.SendMessage(chatID, "Usage: /signup <username> <password> <name>")
		return
	}
	username, password := fields[0], fields[1]
	name := strings.Join(fields[2:], " ")

	sess, err := session.Signup(ctx, c.Snooze, c.Logger, username, password, name)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			c.Telegram.SendMessage(chatID, fmt.Sprintf("The service rejected the signup, %q may already be taken.", username))
		case apperrors.IsNetwork(err):
			c.Telegram.SendMessage(chatID, "Could not reach the story service. Try again later.")
		default:
			c.Logger.Error("Signup failed", "username", username, "error", err)
			c.Telegram.SendMessage(chatID, "Signup failed. Try again later.")
		}
		return
	}

	c.storeSession(ctx, chatID, sess)
	c.Telegram.SendMessage(chatID, fmt.Sprintf("✅ Welcome %s! You are now logged in as %s.", sess.Name(), sess.Username()))
}

func (c *CommandImpl) handleLogin(ctx context.Context, chatID int64, args string) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		c.Telegram.SendMessage(chatID, "Usage: /login <username> <password>")
		return
	}
	username, password := fields[0], fields[1]

	sess, err := session.Login(ctx, c.Snooze, c.Logger, username, password)
	if err != nil {
		switch {
		case apperrors.IsUnauthorized(err):
			c.Telegram.SendMessage(chatID, "Wrong username or password.")
		case apperrors.IsNetwork(err):
			c.Telegram.SendMessage(chatID, "Could not reach the story service. Try again later.")
		default:
			c.Logger.Error("Login failed", "username", username, "error", err)
			c.Telegram.SendMessage(chatID, "Login failed. Try again later.")
		}
		return
	}

	c.storeSession(ctx, chatID, sess)
	c.Telegram.SendMessage(chatID, fmt.Sprintf("✅ Logged in as %s.", sess.Username()))
}

func (c *CommandImpl) handleLogout(ctx context.Context, chatID int64) {
	if _, ok := c.Sessions.Get(chatID); !ok {
		c.Telegram.SendMessage(chatID, "You are not logged in.")
		return
	}

	c.Sessions.Delete(chatID)
	if err := c.SessionRepo.Delete(ctx, chatID); err != nil {
		c.Logger.Warn("Failed to delete persisted chat session", "chatID", chatID, "error", err)
	}

	c.Telegram.SendMessage(chatID, "Logged out. The stored credentials for this chat were removed.")
}

func (c *CommandImpl) handleWhoami(chatID int64) {
	sess, ok := c.Sessions.Get(chatID)
	if !ok {
		c.Telegram.SendMessage(chatID, "Nobody is logged in here. Use /login or /signup.")
		return
	}

	c.Telegram.SendMessage(chatID, fmt.Sprintf("Logged in as %s (%s), %d favorites, %d own stories.",
		sess.Username(), sess.Name(), len(sess.Favorites()), len(sess.OwnStories())))
}

// storeSession keeps the live session in memory and persists the credential
// pair so a restart can re-run the best-effort restore for this chat.
func (c *CommandImpl) storeSession(ctx context.Context, chatID int64, sess *session.Session) {
	c.Sessions.Put(chatID, sess)

	record := domain.ChatSession{
		ChatID:   chatID,
		Username: sess.Username(),
		Token:    sess.Token(),
	}
	if err := c.SessionRepo.Upsert(ctx, record); err != nil {
		c.Logger.Warn("Failed to persist chat session", "chatID", chatID, "error", err)
	}
}
