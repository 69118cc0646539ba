// Package stories maintains the local ordered cache of the service's story
// list. The cache is rebuilt by full fetches and grown at the front by
// confirmed submissions; removal is local-only, matching the way the
// original client only ever deletes rows from its own view.
package stories

import (
	"context"
	"sync"

	"github.com/snoozelabs/snooze-bot/internal/domain"
	"github.com/snoozelabs/snooze-bot/internal/session"
	"github.com/snoozelabs/snooze-bot/internal/snooze"
	apperrors "github.com/snoozelabs/snooze-bot/pkg/errors"
)

// Collection is an ordered sequence of stories with unique StoryIDs.
// Safe for concurrent use: command handlers and the refresh job share it.
type Collection struct {
	mu      sync.RWMutex
	stories []domain.Story
}

func NewCollection() *Collection {
	return &Collection{}
}

// FetchAll reads the full story list from the service and wraps it in a new
// Collection, preserving server order. Fetch failures propagate; no
// half-built collection is returned.
func FetchAll(ctx context.Context, client snooze.Client) (*Collection, error) {
	fetched, err := client.FetchStories(ctx)
	if err != nil {
		return nil, err
	}

	c := NewCollection()
	c.Replace(fetched)
	return c, nil
}

// AddStory submits a draft on behalf of sess and, once the service has
// confirmed it and assigned the canonical StoryID, prepends the new story
// both here and to the session's own stories. On any failure nothing local
// changes: creation is deliberately not optimistic because the ID only
// exists after the round trip.
func (c *Collection) AddStory(ctx context.Context, client snooze.Client, sess *session.Session, draft domain.StoryDraft) (domain.Story, error) {
	if sess == nil {
		return domain.Story{}, apperrors.WrapWithCode(
			apperrors.ErrUnauthorized,
			"NO_SESSION",
			"an authenticated session is required to submit a story",
		)
	}

	story, err := client.CreateStory(ctx, sess.Token(), draft)
	if err != nil {
		return domain.Story{}, err
	}

	c.mu.Lock()
	c.stories = append([]domain.Story{story}, c.stories...)
	c.mu.Unlock()

	sess.PrependOwnStory(story)

	return story, nil
}

// Stories returns a snapshot of the sequence in display order.
func (c *Collection) Stories() []domain.Story {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Story(nil), c.stories...)
}

func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.stories)
}

// Get returns the story with the given ID, if present.
func (c *Collection) Get(storyID string) (domain.Story, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, story := range c.stories {
		if story.StoryID == storyID {
			return story, true
		}
	}
	return domain.Story{}, false
}

// At returns the story at a zero-based display position.
func (c *Collection) At(index int) (domain.Story, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if index < 0 || index >= len(c.stories) {
		return domain.Story{}, false
	}
	return c.stories[index], true
}

// Replace swaps the whole sequence for a freshly fetched one, keeping the
// first occurrence of any duplicated StoryID.
func (c *Collection) Replace(stories []domain.Story) {
	deduped := make([]domain.Story, 0, len(stories))
	seen := make(map[string]struct{}, len(stories))
	for _, story := range stories {
		if _, ok := seen[story.StoryID]; ok {
			continue
		}
		seen[story.StoryID] = struct{}{}
		deduped = append(deduped, story)
	}

	c.mu.Lock()
	c.stories = deduped
	c.mu.Unlock()
}

// Remove drops a story from the local sequence only. The service is not
// told; the story returns with the next full fetch.
func (c *Collection) Remove(storyID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, story := range c.stories {
		if story.StoryID == storyID {
			c.stories = append(c.stories[:i], c.stories[i+1:]...)
			return true
		}
	}
	return false
}

// KnownIDs returns the set of StoryIDs currently cached. The refresh job
// uses it to work out which fetched stories are new.
func (c *Collection) KnownIDs() map[string]struct{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make(map[string]struct{}, len(c.stories))
	for _, story := range c.stories {
		ids[story.StoryID] = struct{}{}
	}
	return ids
}
