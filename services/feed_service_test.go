package services

import (
	"context"
	"testing"

	"timepass_server/models"
	"timepass_server/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFeedNewestFirst(t *testing.T) {
	ctx := context.Background()
	ms := store.NewMemoryStore()
	fs := &FeedService{Store: ms}
	seedPost(t, ms, "p1", "u1", "2025-01-01T00:00:01Z")
	seedPost(t, ms, "p2", "u2", "2025-01-01T00:00:03Z")
	seedPost(t, ms, "p3", "u1", "2025-01-01T00:00:02Z")

	feed, err := fs.LoadFeed(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 3)
	assert.Equal(t, "p2", feed[0].PostID)
	assert.Equal(t, "p3", feed[1].PostID)
	assert.Equal(t, "p1", feed[2].PostID)
}

func TestLoadFeedEmptyCollection(t *testing.T) {
	fs := &FeedService{Store: store.NewMemoryStore()}

	feed, err := fs.LoadFeed(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, feed)
	assert.Empty(t, feed)
}

func TestLoadReelsFiltersVideos(t *testing.T) {
	ctx := context.Background()
	ms := store.NewMemoryStore()
	fs := &FeedService{Store: ms}
	seedPost(t, ms, "p1", "u1", "2025-01-01T00:00:01Z")
	reel := models.Post{
		PostID:    "p2",
		UserID:    "u1",
		MediaURL:  "https://cdn.example.com/p2.mp4",
		MediaType: models.MediaTypeVideo,
		CreatedAt: "2025-01-01T00:00:02Z",
	}
	require.NoError(t, ms.Put(ctx, models.PostsCollection, reel.PostID, reel))

	reels, err := fs.LoadReels(ctx)
	require.NoError(t, err)
	require.Len(t, reels, 1)
	assert.Equal(t, "p2", reels[0].PostID)
}

func TestExploreMatchesUsernameAndCaption(t *testing.T) {
	ctx := context.Background()
	ms := store.NewMemoryStore()
	fs := &FeedService{Store: ms}
	seedUser(t, ms, "u1", "alice")
	seedUser(t, ms, "u2", "bob")
	post := seedPost(t, ms, "p1", "u2", "2025-01-01T00:00:01Z")
	post.Caption = "Alice in the mountains"
	require.NoError(t, ms.Put(ctx, models.PostsCollection, post.PostID, post))
	seedPost(t, ms, "p2", "u2", "2025-01-01T00:00:02Z")

	result, err := fs.Explore(ctx, "ALICE")
	require.NoError(t, err)
	require.Len(t, result.Users, 1)
	assert.Equal(t, "u1", result.Users[0].UserID)
	require.Len(t, result.Posts, 1)
	assert.Equal(t, "p1", result.Posts[0].PostID)
}

func TestExploreBlankTermReturnsEverything(t *testing.T) {
	ctx := context.Background()
	ms := store.NewMemoryStore()
	fs := &FeedService{Store: ms}
	seedUser(t, ms, "u1", "alice")
	seedPost(t, ms, "p1", "u1", "2025-01-01T00:00:01Z")

	result, err := fs.Explore(ctx, "   ")
	require.NoError(t, err)
	assert.Len(t, result.Users, 1)
	assert.Len(t, result.Posts, 1)
}

func TestDeriveViewState(t *testing.T) {
	post := models.Post{PostID: "p1", Likes: []string{"u1", "u2", "u3"}}
	viewer := models.User{UserID: "u2", SavedPosts: []string{"p9", "p1"}}

	state := DeriveViewState(post, viewer)
	assert.True(t, state.IsLiked)
	assert.True(t, state.IsSaved)
	assert.Equal(t, 3, state.LikeCount)

	stranger := models.User{UserID: "u9"}
	state = DeriveViewState(post, stranger)
	assert.False(t, state.IsLiked)
	assert.False(t, state.IsSaved)
	assert.Equal(t, 3, state.LikeCount)
}

func TestViewStateMissingPost(t *testing.T) {
	fs := &FeedService{Store: store.NewMemoryStore()}

	_, err := fs.ViewState(context.Background(), "nope", "u1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
