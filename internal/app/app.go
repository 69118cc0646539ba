package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"go.uber.org/fx"

	"github.com/snoozelabs/snooze-bot/internal/command"
	"github.com/snoozelabs/snooze-bot/internal/command/commandimpl"
	"github.com/snoozelabs/snooze-bot/internal/feed"
	"github.com/snoozelabs/snooze-bot/internal/feed/feedimpl"
	_ "github.com/snoozelabs/snooze-bot/internal/migrations"
	"github.com/snoozelabs/snooze-bot/internal/ratelimit"
	"github.com/snoozelabs/snooze-bot/internal/repositories/chatsession"
	repositories "github.com/snoozelabs/snooze-bot/internal/repositories/fx"
	"github.com/snoozelabs/snooze-bot/internal/session"
	"github.com/snoozelabs/snooze-bot/internal/snooze"
	"github.com/snoozelabs/snooze-bot/internal/snooze/snoozeimpl"
	"github.com/snoozelabs/snooze-bot/internal/stories"
	"github.com/snoozelabs/snooze-bot/internal/telegram"
	"github.com/snoozelabs/snooze-bot/internal/telegram/telegramimpl"
	"github.com/snoozelabs/snooze-bot/pkg/config"
	"github.com/snoozelabs/snooze-bot/pkg/logger"
	"github.com/snoozelabs/snooze-bot/pkg/pgx"
)

var App = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
	),
	fx.Provide(
		stories.NewCollection,
		session.NewManager,
		func() ratelimit.Limiter {
			return ratelimit.NewInMemoryLimiter(1, 3*time.Second, 3)
		},
		fx.Annotate(
			telegramimpl.New,
			fx.As(new(telegram.Client)),
		),
		fx.Annotate(
			snoozeimpl.New,
			fx.As(new(snooze.Client)),
		),
		fx.Annotate(
			feedimpl.New,
			fx.As(new(feed.Client)),
		),
		fx.Annotate(
			commandimpl.New,
			fx.As(new(command.Client)),
		),
	),
	repositories.Module,
	fx.Invoke(migrate),
	fx.Invoke(run),
)

// migrate applies the registered goose migrations through a plain
// database/sql handle before anything touches the pool.
func migrate(cfg *config.Config) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	return goose.Up(db, ".")
}

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config, tgClient telegram.Client,
	snoozeClient snooze.Client, feedClient feed.Client, cmdClient command.Client,
	sessions *session.Manager, sessionRepo chatsession.Repository) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {

			go startHttpServer(log, cfg)

			ctx := context.Background()

			restoreSessions(ctx, log, snoozeClient, sessions, sessionRepo)

			if err := feedClient.Refresh(ctx); err != nil {
				log.Error("Initial story fetch failed", "error", err)
				tgClient.SendMessageToAdmin("Initial story fetch failed: " + err.Error())
			}

			if err := feedClient.ScheduleRefresh(ctx); err != nil {
				log.Error("Feed scheduling failed", "error", err)
				tgClient.SendMessageToAdmin("Feed scheduling failed: " + err.Error())
			}

			go func() {
				if err := cmdClient.HandleCommand(ctx); err != nil {
					log.Error("Command handler stopped", "error", err)
				}
			}()

			return nil
		},
	})
}

// restoreSessions re-authenticates every persisted chat credential.
// Restore is best-effort: a chat whose token no longer works simply starts
// logged out, no error surfaces.
func restoreSessions(ctx context.Context, log logger.Logger, client snooze.Client,
	sessions *session.Manager, repo chatsession.Repository) {
	records, err := repo.GetAll(ctx)
	if err != nil {
		log.Error("Failed to load persisted chat sessions", "error", err)
		return
	}

	restored := 0
	for _, record := range records {
		sess := session.Restore(ctx, client, log, record.Token, record.Username)
		if sess == nil {
			continue
		}
		sessions.Put(record.ChatID, sess)
		restored++
	}

	log.Info("Chat sessions restored", "persisted", len(records), "restored", restored)
}

func startHttpServer(log logger.Logger, cfg *config.Config) {
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		healthCheckHandler(w, r, log)
	})

	log.Info(fmt.Sprintf("Starting server on :%d", cfg.App.Port))

	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.App.Port), nil); err != nil {
		log.Error("Server failed to start", "error", err)
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request, logger logger.Logger) {
	logger.Debug("Health check request received", "Method", r.Method, "URL", r.URL.String())
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Error("Failed to write response", "Error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
