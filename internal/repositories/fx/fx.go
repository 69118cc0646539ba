package fx

import (
	"github.com/snoozelabs/snooze-bot/internal/repositories/chatsession"
	"go.uber.org/fx"
)

var Module = fx.Options(
	chatsession.Module,
)
