package feed

import "context"

// Client keeps the shared story collection in step with the service and
// announces newly appeared stories to subscribed chats.
type Client interface {
	// Refresh fetches the full story list and replaces the local cache.
	Refresh(ctx context.Context) error

	// ScheduleRefresh starts the periodic Refresh job and keeps it running
	// until ctx is cancelled.
	ScheduleRefresh(ctx context.Context) error
}
