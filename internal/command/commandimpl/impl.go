package commandimpl

import (
	"context"
	"errors"
	"runtime/debug"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/snoozelabs/snooze-bot/internal/command"
	"github.com/snoozelabs/snooze-bot/internal/feed"
	"github.com/snoozelabs/snooze-bot/internal/ratelimit"
	"github.com/snoozelabs/snooze-bot/internal/repositories/chatsession"
	"github.com/snoozelabs/snooze-bot/internal/session"
	"github.com/snoozelabs/snooze-bot/internal/snooze"
	"github.com/snoozelabs/snooze-bot/internal/stories"
	"github.com/snoozelabs/snooze-bot/internal/telegram"
	"github.com/snoozelabs/snooze-bot/pkg/config"
	"github.com/snoozelabs/snooze-bot/pkg/logger"
	"go.uber.org/fx"
)

const helpMessage = `👋 Welcome to the Snooze story bot!

ACCOUNT:
/signup <username> <password> <name> - Register a new account.
/login <username> <password> - Log in to an existing account.
/logout - Forget the session for this chat.
/whoami - Show who is logged in here.

STORIES:
/latest - Show the current story list.
/submit <title> | <author> | <url> - Submit a new story (login required).
/mystories - Show the stories you submitted.
/hide <n> - Hide entry n from this chat's list until the next refresh.

FAVORITES (login required):
/fav <n> - Mark entry n of the list as a favorite.
/unfav <n> - Remove entry n from your favorites.
/favorites - Show your favorites.

FEED:
/subscribe - Announce new stories in this chat as they appear.
/unsubscribe - Stop the announcements.

Type /help at any time to see this guide.`

type Opts struct {
	fx.In

	Telegram    telegram.Client
	Snooze      snooze.Client
	Feed        feed.Client
	Sessions    *session.Manager
	Collection  *stories.Collection
	SessionRepo chatsession.Repository
	Limiter     ratelimit.Limiter
	Logger      logger.Logger
	Config      *config.Config
}

type CommandImpl struct {
	Telegram    telegram.Client
	Snooze      snooze.Client
	Feed        feed.Client
	Sessions    *session.Manager
	Collection  *stories.Collection
	SessionRepo chatsession.Repository
	Limiter     ratelimit.Limiter
	Logger      logger.Logger
	Config      *config.Config
}

func New(opts Opts) *CommandImpl {
	return &CommandImpl{
		Telegram:    opts.Telegram,
		Snooze:      opts.Snooze,
		Feed:        opts.Feed,
		Sessions:    opts.Sessions,
		Collection:  opts.Collection,
		SessionRepo: opts.SessionRepo,
		Limiter:     opts.Limiter,
		Logger:      opts.Logger.WithComponent("Command"),
		Config:      opts.Config,
	}
}

var _ command.Client = (*CommandImpl)(nil)

func (c *CommandImpl) HandleCommand(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := c.Telegram.GetUpdatesChan(u)
	c.Logger.Info("Command handler started, listening for updates.")

	for {
		select {
		case <-ctx.Done():
			c.Logger.Info("Command handler shutting down.")
			c.Telegram.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				c.Logger.Warn("Telegram updates channel closed unexpectedly.")
				return errors.New("telegram updates channel closed")
			}

			go func(u tgbotapi.Update) {
				defer func() {
					if r := recover(); r != nil {
						c.Logger.Error("Panic recovered while processing an update", "panic", r, "stack", string(debug.Stack()))
					}
				}()

				if u.Message == nil {
					return
				}

				if u.Message.IsCommand() {
					if err := c.processCommand(ctx, u); err != nil {
						c.Logger.Error("Error processing command",
							"command", u.Message.Command(),
							"error", err)
					}
				}
			}(update)
		}
	}
}

func (c *CommandImpl) processCommand(ctx context.Context, update tgbotapi.Update) error {
	cmd := update.Message.Command()
	args := update.Message.CommandArguments()
	chatID := update.Message.Chat.ID

	if !c.Limiter.Allow(chatID) {
		_, err := c.Telegram.SendMessage(chatID, "Too many commands, give it a moment.")
		return err
	}

	switch cmd {
	case "start", "help":
		_, err := c.Telegram.SendMessage(chatID, helpMessage)
		return err
	case "signup":
		c.handleSignup(ctx, chatID, args)
		return nil
	case "login":
		c.handleLogin(ctx, chatID, args)
		return nil
	case "logout":
		c.handleLogout(ctx, chatID)
		return nil
	case "whoami":
		c.handleWhoami(chatID)
		return nil
	case "latest":
		return c.handleLatest(ctx, chatID)
	case "submit":
		return c.handleSubmit(ctx, chatID, args)
	case "mystories":
		c.handleMyStories(chatID)
		return nil
	case "hide":
		c.handleHide(chatID, args)
		return nil
	case "fav":
		c.handleFav(chatID, args)
		return nil
	case "unfav":
		c.handleUnfav(chatID, args)
		return nil
	case "favorites":
		c.handleFavorites(chatID)
		return nil
	case "subscribe":
		c.handleSubscribe(ctx, chatID)
		return nil
	case "unsubscribe":
		c.handleUnsubscribe(ctx, chatID)
		return nil
	default:
		_, err := c.Telegram.SendMessage(chatID, "Unknown command. Type /help to see the list of available commands.")
		return err
	}
}
