package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"timepass_server/models"
	"timepass_server/store"
)

// SuggestionLimit bounds the "people you may know" list
const SuggestionLimit = 10

// NotificationService synthesizes the notification feed on demand. No
// notification document exists anywhere: likes and comments are read off the
// viewer's own posts, follows off the viewer's followers set. Event times are
// borrowed: a like carries the post's creation time and a follow the
// follower's account-creation time, because the triggering moment was never
// recorded.
type NotificationService struct {
	Store store.Store
}

// BuildNotifications scans the viewer's posts and followers and returns the
// merged feed sorted by event time descending. The viewer's own likes and
// comments are excluded. There is no de-duplication beyond the composite key:
// a user who both liked and commented on one post yields two records.
func (ns *NotificationService) BuildNotifications(ctx context.Context, viewerID string) ([]models.Notification, error) {
	var posts []models.Post
	q := store.Query{Equals: map[string]string{"userId": viewerID}}
	if err := ns.Store.Query(ctx, models.PostsCollection, q, &posts); err != nil {
		return nil, fmt.Errorf("failed to fetch viewer posts: %w", err)
	}

	profiles := make(map[string]*models.User)
	lookup := func(userID string) *models.User {
		if u, ok := profiles[userID]; ok {
			return u
		}
		var u models.User
		if err := ns.Store.Get(ctx, models.UsersCollection, userID, &u); err != nil {
			profiles[userID] = nil
			return nil
		}
		profiles[userID] = &u
		return &u
	}

	notifs := []models.Notification{}
	for _, post := range posts {
		for _, likerID := range post.Likes {
			if likerID == viewerID {
				continue
			}
			n := models.Notification{
				ID:        "like_" + likerID + "_" + post.PostID,
				Type:      models.NotificationTypeLike,
				UserID:    likerID,
				Username:  "User",
				PostID:    post.PostID,
				CreatedAt: post.CreatedAt,
			}
			if u := lookup(likerID); u != nil {
				n.Username = u.Username
				n.ProfileImageURL = u.ProfileImageURL
			}
			notifs = append(notifs, n)
		}
		for _, comment := range post.Comments {
			if comment.UserID == viewerID {
				continue
			}
			n := models.Notification{
				ID:          "comment_" + comment.UserID + "_" + post.PostID,
				Type:        models.NotificationTypeComment,
				UserID:      comment.UserID,
				Username:    "User",
				PostID:      post.PostID,
				CommentText: comment.Text,
				CreatedAt:   comment.CreatedAt,
			}
			if u := lookup(comment.UserID); u != nil {
				n.Username = u.Username
				n.ProfileImageURL = u.ProfileImageURL
			}
			notifs = append(notifs, n)
		}
	}

	var viewer models.User
	if err := ns.Store.Get(ctx, models.UsersCollection, viewerID, &viewer); err != nil {
		return nil, fmt.Errorf("failed to fetch viewer profile: %w", err)
	}
	for _, followerID := range viewer.Followers {
		n := models.Notification{
			ID:        "follow_" + followerID,
			Type:      models.NotificationTypeFollow,
			UserID:    followerID,
			Username:  "User",
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		}
		if u := lookup(followerID); u != nil {
			n.Username = u.Username
			n.ProfileImageURL = u.ProfileImageURL
			if u.CreatedAt != "" {
				n.CreatedAt = u.CreatedAt
			}
		}
		notifs = append(notifs, n)
	}

	sort.SliceStable(notifs, func(i, j int) bool {
		return notifs[i].CreatedAt > notifs[j].CreatedAt
	})
	return notifs, nil
}

// Suggestions returns up to SuggestionLimit users the viewer does not follow
// yet, excluding the viewer, in store-return order. No ranking.
func (ns *NotificationService) Suggestions(ctx context.Context, viewerID string) ([]models.User, error) {
	var viewer models.User
	if err := ns.Store.Get(ctx, models.UsersCollection, viewerID, &viewer); err != nil {
		return nil, fmt.Errorf("failed to fetch viewer profile: %w", err)
	}
	following := make(map[string]bool, len(viewer.Following))
	for _, id := range viewer.Following {
		following[id] = true
	}

	var users []models.User
	if err := ns.Store.Query(ctx, models.UsersCollection, store.Query{}, &users); err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	suggestions := []models.User{}
	for _, u := range users {
		if u.UserID == viewerID || following[u.UserID] {
			continue
		}
		suggestions = append(suggestions, u)
		if len(suggestions) == SuggestionLimit {
			break
		}
	}
	return suggestions, nil
}
