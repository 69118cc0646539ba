package chatsession

import (
	"context"
	"errors"

	"github.com/snoozelabs/snooze-bot/internal/domain"
)

var ErrNotFound = errors.New("chat session not found")

// Repository stores the chat -> credential mapping that lets the bot re-run
// the best-effort session restore after a restart, plus the feed
// subscription flag per chat.
type Repository interface {
	Upsert(ctx context.Context, session domain.ChatSession) error
	GetByChatID(ctx context.Context, chatID int64) (*domain.ChatSession, error)
	GetAll(ctx context.Context) ([]*domain.ChatSession, error)
	SetSubscribed(ctx context.Context, chatID int64, subscribed bool) error
	GetSubscribedChatIDs(ctx context.Context) ([]int64, error)
	Delete(ctx context.Context, chatID int64) error
}
