package services

import (
	"context"
	"testing"
	"time"

	"timepass_server/models"
	"timepass_server/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedStory(t *testing.T, ms *store.MemoryStore, id, userID string, createdAt time.Time) models.Story {
	t.Helper()
	story := models.Story{
		StoryID:   id,
		UserID:    userID,
		Username:  userID,
		MediaURL:  "https://cdn.example.com/" + id + ".jpg",
		CreatedAt: createdAt.UTC().Format(time.RFC3339),
		ExpiresAt: createdAt.UTC().Add(StoryTTL).Format(time.RFC3339),
	}
	require.NoError(t, ms.Put(context.Background(), models.StoriesCollection, id, story))
	return story
}

func TestPublishStorySnapshotsAuthor(t *testing.T) {
	ctx := context.Background()
	ms := store.NewMemoryStore()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ss := &StoryService{Store: ms, Now: func() time.Time { return now }}
	user := seedUser(t, ms, "u1", "alice")
	user.ProfileImageURL = "https://cdn.example.com/alice.jpg"
	require.NoError(t, ms.Put(ctx, models.UsersCollection, "u1", user))

	story, err := ss.PublishStory(ctx, "u1", "https://cdn.example.com/s.jpg")
	require.NoError(t, err)
	assert.Equal(t, "alice", story.Username)
	assert.Equal(t, "https://cdn.example.com/alice.jpg", story.ProfileImageURL)
	assert.Equal(t, "2025-03-01T12:00:00Z", story.CreatedAt)
	assert.Equal(t, "2025-03-02T12:00:00Z", story.ExpiresAt)

	var stored models.Story
	require.NoError(t, ms.Get(ctx, models.StoriesCollection, story.StoryID, &stored))
	assert.Equal(t, story.StoryID, stored.StoryID)
}

func TestPublishStoryRequiresAuthorAndMedia(t *testing.T) {
	ss := &StoryService{Store: store.NewMemoryStore()}

	_, err := ss.PublishStory(context.Background(), "", "https://cdn.example.com/s.jpg")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = ss.PublishStory(context.Background(), "u1", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListActiveExpiryBoundary(t *testing.T) {
	ctx := context.Background()
	ms := store.NewMemoryStore()
	ss := &StoryService{Store: ms}
	published := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	seedStory(t, ms, "s1", "u1", published)
	expiry := published.Add(StoryTTL)

	// one second before expiry the story is visible
	stories, err := ss.ListActive(ctx, expiry.Add(-time.Second))
	require.NoError(t, err)
	assert.Len(t, stories, 1)

	// exactly at expiry the strict inequality hides it
	stories, err = ss.ListActive(ctx, expiry)
	require.NoError(t, err)
	assert.Empty(t, stories)

	stories, err = ss.ListActive(ctx, expiry.Add(time.Second))
	require.NoError(t, err)
	assert.Empty(t, stories)
}

func TestStoryTrayMostRecentPerAuthor(t *testing.T) {
	ctx := context.Background()
	ms := store.NewMemoryStore()
	ss := &StoryService{Store: ms}
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	seedStory(t, ms, "s1", "u1", base)
	seedStory(t, ms, "s2", "u1", base.Add(time.Minute))
	seedStory(t, ms, "s3", "u2", base.Add(2*time.Minute))

	tray, err := ss.StoryTray(ctx, base.Add(3*time.Minute))
	require.NoError(t, err)
	require.Len(t, tray, 2)
	assert.Equal(t, "s3", tray[0].StoryID)
	assert.Equal(t, "s2", tray[1].StoryID)
}

func TestStoriesByAuthorPlaybackOrder(t *testing.T) {
	ctx := context.Background()
	ms := store.NewMemoryStore()
	ss := &StoryService{Store: ms}
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	seedStory(t, ms, "s1", "u1", base)
	seedStory(t, ms, "s2", "u2", base.Add(time.Minute))
	seedStory(t, ms, "s3", "u1", base.Add(2*time.Minute))

	own, err := ss.StoriesByAuthor(ctx, "u1", base.Add(3*time.Minute))
	require.NoError(t, err)
	require.Len(t, own, 2)
	assert.Equal(t, "s1", own[0].StoryID)
	assert.Equal(t, "s3", own[1].StoryID)
}

func TestAddStoryComment(t *testing.T) {
	ctx := context.Background()
	ms := store.NewMemoryStore()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ss := &StoryService{Store: ms, Now: func() time.Time { return now }}
	seedStory(t, ms, "s1", "u1", now.Add(-time.Hour))

	comment, err := ss.AddStoryComment(ctx, "s1", "u2", "  nice!  ")
	require.NoError(t, err)
	assert.Equal(t, "nice!", comment.Text)
	assert.Equal(t, "u2", comment.UserID)

	var story models.Story
	require.NoError(t, ms.Get(ctx, models.StoriesCollection, "s1", &story))
	require.Len(t, story.Comments, 1)
	assert.Equal(t, "nice!", story.Comments[0].Text)

	_, err = ss.AddStoryComment(ctx, "s1", "u2", "   ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteStoryOwnerOnly(t *testing.T) {
	ctx := context.Background()
	ms := store.NewMemoryStore()
	ss := &StoryService{Store: ms}
	seedStory(t, ms, "s1", "u1", time.Now())

	err := ss.DeleteStory(ctx, "s1", "u2")
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, ss.DeleteStory(ctx, "s1", "u1"))
	var story models.Story
	assert.ErrorIs(t, ms.Get(ctx, models.StoriesCollection, "s1", &story), store.ErrNotFound)

	// deleting a missing story is a no-op
	require.NoError(t, ss.DeleteStory(ctx, "s1", "u1"))
}
