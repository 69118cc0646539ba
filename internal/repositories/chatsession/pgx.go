package chatsession

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/snoozelabs/snooze-bot/internal/domain"
	"github.com/snoozelabs/snooze-bot/internal/repositories"
	"github.com/snoozelabs/snooze-bot/pkg/logger"

	sq "github.com/Masterminds/squirrel"
)

type PgxRepository struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

func NewPgxRepository(pool *pgxpool.Pool, logger logger.Logger) *PgxRepository {
	return &PgxRepository{
		pool:   pool,
		logger: logger.WithComponent("ChatSessionRepo"),
	}
}

var _ Repository = (*PgxRepository)(nil)

func (r *PgxRepository) Upsert(ctx context.Context, session domain.ChatSession) error {
	query, args, err := repositories.SqBuilder.
		Insert("chat_sessions").
		Columns("chat_id", "username", "token", "subscribed").
		Values(session.ChatID, session.Username, session.Token, session.Subscribed).
		Suffix("ON CONFLICT (chat_id) DO UPDATE SET username = EXCLUDED.username, token = EXCLUDED.token").
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert chat session: %w", err)
	}
	return nil
}

func (r *PgxRepository) GetByChatID(ctx context.Context, chatID int64) (*domain.ChatSession, error) {
	query, args, err := repositories.SqBuilder.
		Select("chat_id", "username", "token", "subscribed", "created_at").
		From("chat_sessions").
		Where(sq.Eq{"chat_id": chatID}).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	var session domain.ChatSession
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&session.ChatID,
		&session.Username,
		&session.Token,
		&session.Subscribed,
		&session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get chat session: %w", err)
	}

	return &session, nil
}

func (r *PgxRepository) GetAll(ctx context.Context) ([]*domain.ChatSession, error) {
	query, args, err := repositories.SqBuilder.
		Select("chat_id", "username", "token", "subscribed", "created_at").
		From("chat_sessions").
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.ChatSession
	for rows.Next() {
		var session domain.ChatSession
		if err := rows.Scan(
			&session.ChatID,
			&session.Username,
			&session.Token,
			&session.Subscribed,
			&session.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan chat session row: %w", err)
		}
		sessions = append(sessions, &session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *PgxRepository) SetSubscribed(ctx context.Context, chatID int64, subscribed bool) error {
	query, args, err := repositories.SqBuilder.
		Update("chat_sessions").
		Set("subscribed", subscribed).
		Where(sq.Eq{"chat_id": chatID}).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update subscription flag: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgxRepository) GetSubscribedChatIDs(ctx context.Context) ([]int64, error) {
	query, args, err := repositories.SqBuilder.
		Select("chat_id").
		From("chat_sessions").
		Where(sq.Eq{"subscribed": true}).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscribed chats: %w", err)
	}
	defer rows.Close()

	var chatIDs []int64
	for rows.Next() {
		var chatID int64
		if err := rows.Scan(&chatID); err != nil {
			return nil, err
		}
		chatIDs = append(chatIDs, chatID)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return chatIDs, nil
}

func (r *PgxRepository) Delete(ctx context.Context, chatID int64) error {
	query, args, err := repositories.SqBuilder.
		Delete("chat_sessions").
		Where(sq.Eq{"chat_id": chatID}).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete chat session: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
