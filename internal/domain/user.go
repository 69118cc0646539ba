package domain

import "time"

// User is the profile of the authenticated actor, with the two story
// sequences the service tracks for it. Favorites holds at most one entry per
// StoryID; OwnStories is newest-first.
type User struct {
	Username   string
	Name       string
	CreatedAt  time.Time
	Favorites  []Story
	OwnStories []Story
}
