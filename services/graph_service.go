package services

import (
	"context"
	"fmt"

	"timepass_server/models"
	"timepass_server/store"

	"github.com/rs/zerolog/log"
)

// GraphService toggles the like/save/follow relations. Each toggle takes the
// caller's cached belief about current membership and issues the matching
// atomic set add or remove; the store's set semantics make stale beliefs
// converge instead of corrupting the field.
type GraphService struct {
	Store store.Store
}

// TogglePostLike adds or removes the viewer from a post's likes set
func (gs *GraphService) TogglePostLike(ctx context.Context, postID, userID string, liked bool) error {
	if err := gs.toggle(ctx, models.PostsCollection, postID, "likes", userID, liked); err != nil {
		return fmt.Errorf("failed to update post like: %w", err)
	}
	return nil
}

// ToggleStoryLike adds or removes the viewer from a story's likes set
func (gs *GraphService) ToggleStoryLike(ctx context.Context, storyID, userID string, liked bool) error {
	if err := gs.toggle(ctx, models.StoriesCollection, storyID, "likes", userID, liked); err != nil {
		return fmt.Errorf("failed to update story like: %w", err)
	}
	return nil
}

// ToggleSavePost adds or removes a post from the viewer's savedPosts set
func (gs *GraphService) ToggleSavePost(ctx context.Context, userID, postID string, saved bool) error {
	if err := gs.toggle(ctx, models.UsersCollection, userID, "savedPosts", postID, saved); err != nil {
		return fmt.Errorf("failed to update saved posts: %w", err)
	}
	return nil
}

// ToggleSaveStory adds or removes a story from the viewer's savedStories set
func (gs *GraphService) ToggleSaveStory(ctx context.Context, userID, storyID string, saved bool) error {
	if err := gs.toggle(ctx, models.UsersCollection, userID, "savedStories", storyID, saved); err != nil {
		return fmt.Errorf("failed to update saved stories: %w", err)
	}
	return nil
}

func (gs *GraphService) toggle(ctx context.Context, collection, id, field, value string, present bool) error {
	if id == "" || value == "" {
		return ErrValidation
	}
	if present {
		return gs.Store.RemoveFromSet(ctx, collection, id, field, value)
	}
	return gs.Store.AddToSet(ctx, collection, id, field, value)
}

// ToggleFollow mirrors the follow relation onto both user documents in a
// single transactional write: followerID enters (or leaves) the target's
// followers set exactly when targetID enters (or leaves) the follower's
// following set. A failure leaves both documents untouched.
func (gs *GraphService) ToggleFollow(ctx context.Context, followerID, targetID string, following bool) error {
	if followerID == "" || targetID == "" || followerID == targetID {
		return fmt.Errorf("invalid follow pair: %w", ErrValidation)
	}

	ops := []store.SetOp{
		{Collection: models.UsersCollection, ID: followerID, Field: "following", Value: targetID, Remove: following},
		{Collection: models.UsersCollection, ID: targetID, Field: "followers", Value: followerID, Remove: following},
	}
	if err := gs.Store.ApplySetOps(ctx, ops...); err != nil {
		return fmt.Errorf("failed to update follow status: %w", err)
	}

	log.Info().Str("component", "graph").
		Str("follower", followerID).Str("target", targetID).Bool("unfollow", following).
		Msg("follow relation updated")
	return nil
}
