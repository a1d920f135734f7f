package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"timepass_server/models"
	"timepass_server/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// PostService manages post documents and their comment lists
type PostService struct {
	Store store.Store
}

// CreatePost publishes a post. The media has already been uploaded; only its
// URL travels through here.
func (ps *PostService) CreatePost(ctx context.Context, post models.Post) (*models.Post, error) {
	if post.UserID == "" || post.MediaURL == "" {
		return nil, fmt.Errorf("userId and mediaUrl are required: %w", ErrValidation)
	}
	if post.MediaType != models.MediaTypeVideo {
		post.MediaType = models.MediaTypeImage
	}
	post.PostID = uuid.NewString()
	post.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	post.Likes = nil
	post.Comments = nil

	if err := ps.Store.Put(ctx, models.PostsCollection, post.PostID, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	log.Info().Str("component", "posts").Str("postId", post.PostID).Str("userId", post.UserID).Msg("post created")
	return &post, nil
}

// GetPost retrieves a post by id
func (ps *PostService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	var post models.Post
	if err := ps.Store.Get(ctx, models.PostsCollection, postID, &post); err != nil {
		return nil, fmt.Errorf("failed to fetch post '%s': %w", postID, err)
	}
	return &post, nil
}

// PostsByAuthor returns a user's posts, newest first
func (ps *PostService) PostsByAuthor(ctx context.Context, userID string) ([]models.Post, error) {
	var posts []models.Post
	q := store.Query{
		Equals:     map[string]string{"userId": userID},
		OrderBy:    "createdAt",
		Descending: true,
	}
	if err := ps.Store.Query(ctx, models.PostsCollection, q, &posts); err != nil {
		return nil, fmt.Errorf("failed to fetch posts for user '%s': %w", userID, err)
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return posts, nil
}

// AddComment appends a comment to a post. The record embeds a snapshot of the
// author's profile so readers never join back to the users collection.
// Comments are append-only and keep insertion order.
func (ps *PostService) AddComment(ctx context.Context, postID, authorID, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("comment text is required: %w", ErrValidation)
	}
	if _, err := ps.GetPost(ctx, postID); err != nil {
		return nil, err
	}

	var author models.User
	if err := ps.Store.Get(ctx, models.UsersCollection, authorID, &author); err != nil {
		return nil, fmt.Errorf("failed to fetch comment author '%s': %w", authorID, err)
	}

	comment := models.Comment{
		UserID:          author.UserID,
		Username:        author.Username,
		ProfileImageURL: author.ProfileImageURL,
		Text:            text,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}
	if err := ps.Store.AppendToList(ctx, models.PostsCollection, postID, "comments", comment); err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	return &comment, nil
}

// DeletePost removes a post. Only the owning user may delete it.
func (ps *PostService) DeletePost(ctx context.Context, postID, requesterID string) error {
	post, err := ps.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	if post.UserID != requesterID {
		return fmt.Errorf("post '%s' is not owned by '%s': %w", postID, requesterID, ErrForbidden)
	}
	if err := ps.Store.Delete(ctx, models.PostsCollection, postID); err != nil {
		return fmt.Errorf("failed to delete post '%s': %w", postID, err)
	}
	log.Info().Str("component", "posts").Str("postId", postID).Msg("post deleted")
	return nil
}
