package services

import (
	"context"
	"fmt"
	"strings"

	"timepass_server/models"
	"timepass_server/store"
)

// FeedService aggregates posts for the home feed, reels and explore views
type FeedService struct {
	Store store.Store
}

// LoadFeed returns all posts ordered by creation time descending. Timestamps
// are fixed-width RFC3339 strings, so string ordering is chronological.
// An empty collection yields an empty slice.
func (fs *FeedService) LoadFeed(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	q := store.Query{OrderBy: "createdAt", Descending: true}
	if err := fs.Store.Query(ctx, models.PostsCollection, q, &posts); err != nil {
		return nil, fmt.Errorf("failed to load feed: %w", err)
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return posts, nil
}

// LoadReels returns video posts, newest first
func (fs *FeedService) LoadReels(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	q := store.Query{
		Equals:     map[string]string{"mediaType": models.MediaTypeVideo},
		OrderBy:    "createdAt",
		Descending: true,
	}
	if err := fs.Store.Query(ctx, models.PostsCollection, q, &posts); err != nil {
		return nil, fmt.Errorf("failed to load reels: %w", err)
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return posts, nil
}

// ExploreResult holds the users and posts matching a search term
type ExploreResult struct {
	Users []models.User `json:"users"`
	Posts []models.Post `json:"posts"`
}

// Explore searches usernames, emails and captions by case-insensitive
// substring. A blank term returns everything.
func (fs *FeedService) Explore(ctx context.Context, term string) (*ExploreResult, error) {
	var users []models.User
	if err := fs.Store.Query(ctx, models.UsersCollection, store.Query{}, &users); err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	var posts []models.Post
	if err := fs.Store.Query(ctx, models.PostsCollection, store.Query{OrderBy: "createdAt", Descending: true}, &posts); err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}

	result := &ExploreResult{Users: []models.User{}, Posts: []models.Post{}}
	term = strings.ToLower(strings.TrimSpace(term))
	for _, u := range users {
		if term == "" || strings.Contains(strings.ToLower(u.Username), term) || strings.Contains(strings.ToLower(u.Email), term) {
			result.Users = append(result.Users, u)
		}
	}
	for _, p := range posts {
		if term == "" || strings.Contains(strings.ToLower(p.Caption), term) {
			result.Posts = append(result.Posts, p)
		}
	}
	return result, nil
}

// ViewState is the viewer-relative derivation over a post: membership in the
// post's likes set, the like count, and membership of the post in the
// viewer's saved set.
type ViewState struct {
	IsLiked   bool `json:"isLiked"`
	LikeCount int  `json:"likeCount"`
	IsSaved   bool `json:"isSaved"`
}

// DeriveViewState computes the viewer-relative flags from already-fetched
// documents. Pure: recompute whenever either document changes.
func DeriveViewState(post models.Post, viewer models.User) ViewState {
	state := ViewState{LikeCount: len(post.Likes)}
	for _, id := range post.Likes {
		if id == viewer.UserID {
			state.IsLiked = true
			break
		}
	}
	for _, id := range viewer.SavedPosts {
		if id == post.PostID {
			state.IsSaved = true
			break
		}
	}
	return state
}

// ViewState fetches the post and viewer documents and derives the flags
func (fs *FeedService) ViewState(ctx context.Context, postID, viewerID string) (*ViewState, error) {
	var post models.Post
	if err := fs.Store.Get(ctx, models.PostsCollection, postID, &post); err != nil {
		return nil, fmt.Errorf("failed to fetch post '%s': %w", postID, err)
	}
	var viewer models.User
	if err := fs.Store.Get(ctx, models.UsersCollection, viewerID, &viewer); err != nil {
		return nil, fmt.Errorf("failed to fetch viewer '%s': %w", viewerID, err)
	}
	state := DeriveViewState(post, viewer)
	return &state, nil
}
