package feedimpl

import (
	"github.com/snoozelabs/snooze-bot/internal/feed"
	"github.com/snoozelabs/snooze-bot/internal/repositories/chatsession"
	"github.com/snoozelabs/snooze-bot/internal/snooze"
	"github.com/snoozelabs/snooze-bot/internal/stories"
	"github.com/snoozelabs/snooze-bot/internal/telegram"
	"github.com/snoozelabs/snooze-bot/pkg/config"
	"github.com/snoozelabs/snooze-bot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Snooze      snooze.Client
	Telegram    telegram.Client
	Collection  *stories.Collection
	SessionRepo chatsession.Repository
	Logger      logger.Logger
	Config      *config.Config
}

type FeedImpl struct {
	Snooze      snooze.Client
	Telegram    telegram.Client
	Collection  *stories.Collection
	SessionRepo chatsession.Repository
	Logger      logger.Logger
	Config      *config.Config
}

func New(opts Opts) *FeedImpl {
	return &FeedImpl{
		Snooze:      opts.Snooze,
		Telegram:    opts.Telegram,
		Collection:  opts.Collection,
		SessionRepo: opts.SessionRepo,
		Logger:      opts.Logger.WithComponent("Feed"),
		Config:      opts.Config,
	}
}

var _ feed.Client = (*FeedImpl)(nil)
