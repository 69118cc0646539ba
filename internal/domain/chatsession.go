package domain

import "time"

// ChatSession is the persisted credential pair for one Telegram chat, used
// to re-run the best-effort session restore after a restart. Subscribed
// marks chats that want feed refresh announcements.
type ChatSession struct {
	ChatID     int64
	Username   string
	Token      string
	Subscribed bool
	CreatedAt  time.Time
}
