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

// StoryTTL is the visibility window of a story after publish
const StoryTTL = 24 * time.Hour

// StoryService manages ephemeral stories. Expiry is enforced by the range
// predicate on reads; expired stories linger in the collection until their
// author deletes them.
type StoryService struct {
	Store store.Store
	Now   func() time.Time
}

func (ss *StoryService) now() time.Time {
	if ss.Now != nil {
		return ss.Now()
	}
	return time.Now()
}

// PublishStory creates a story visible for the next 24 hours. Username and
// profile image are snapshotted from the author's profile at publish time.
func (ss *StoryService) PublishStory(ctx context.Context, authorID, mediaURL string) (*models.Story, error) {
	if authorID == "" || mediaURL == "" {
		return nil, fmt.Errorf("userId and mediaUrl are required: %w", ErrValidation)
	}

	var author models.User
	if err := ss.Store.Get(ctx, models.UsersCollection, authorID, &author); err != nil {
		return nil, fmt.Errorf("failed to fetch story author '%s': %w", authorID, err)
	}

	now := ss.now().UTC()
	story := models.Story{
		StoryID:         uuid.NewString(),
		UserID:          author.UserID,
		Username:        author.Username,
		ProfileImageURL: author.ProfileImageURL,
		MediaURL:        mediaURL,
		CreatedAt:       now.Format(time.RFC3339),
		ExpiresAt:       now.Add(StoryTTL).Format(time.RFC3339),
	}
	if err := ss.Store.Put(ctx, models.StoriesCollection, story.StoryID, story); err != nil {
		return nil, fmt.Errorf("failed to publish story: %w", err)
	}
	log.Info().Str("component", "stories").Str("storyId", story.StoryID).Str("userId", authorID).Msg("story published")
	return &story, nil
}

// ListActive returns stories with expiresAt strictly after now, newest first.
// The bound is pushed to the store as a range predicate; there is no client
// re-filtering, so a story expiring mid-session stays visible until the next
// fetch.
func (ss *StoryService) ListActive(ctx context.Context, now time.Time) ([]models.Story, error) {
	var stories []models.Story
	q := store.Query{
		Range:      &store.Range{Field: "expiresAt", After: now.UTC().Format(time.RFC3339)},
		OrderBy:    "createdAt",
		Descending: true,
	}
	if err := ss.Store.Query(ctx, models.StoriesCollection, q, &stories); err != nil {
		return nil, fmt.Errorf("failed to list active stories: %w", err)
	}
	if stories == nil {
		stories = []models.Story{}
	}
	return stories, nil
}

// StoryTray groups active stories by author, keeping the most recent story
// per author. The tray is ordered by that story's creation time descending.
func (ss *StoryService) StoryTray(ctx context.Context, now time.Time) ([]models.Story, error) {
	stories, err := ss.ListActive(ctx, now)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(stories))
	tray := make([]models.Story, 0, len(stories))
	for _, s := range stories {
		if seen[s.UserID] {
			continue
		}
		seen[s.UserID] = true
		tray = append(tray, s)
	}
	return tray, nil
}

// StoriesByAuthor returns an author's active stories, oldest first, for the
// story viewer's playback order.
func (ss *StoryService) StoriesByAuthor(ctx context.Context, authorID string, now time.Time) ([]models.Story, error) {
	stories, err := ss.ListActive(ctx, now)
	if err != nil {
		return nil, err
	}
	own := make([]models.Story, 0, len(stories))
	for i := len(stories) - 1; i >= 0; i-- {
		if stories[i].UserID == authorID {
			own = append(own, stories[i])
		}
	}
	return own, nil
}

// AddStoryComment appends a comment to a story. Story comments carry only
// the commenter id, not a profile snapshot.
func (ss *StoryService) AddStoryComment(ctx context.Context, storyID, authorID, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("comment text is required: %w", ErrValidation)
	}
	var story models.Story
	if err := ss.Store.Get(ctx, models.StoriesCollection, storyID, &story); err != nil {
		return nil, fmt.Errorf("failed to fetch story '%s': %w", storyID, err)
	}

	comment := models.Comment{
		UserID:    authorID,
		Text:      text,
		CreatedAt: ss.now().UTC().Format(time.RFC3339),
	}
	if err := ss.Store.AppendToList(ctx, models.StoriesCollection, storyID, "comments", comment); err != nil {
		return nil, fmt.Errorf("failed to add story comment: %w", err)
	}
	return &comment, nil
}

// DeleteStory removes a story before its natural expiry. Owner only.
func (ss *StoryService) DeleteStory(ctx context.Context, storyID, requesterID string) error {
	var story models.Story
	if err := ss.Store.Get(ctx, models.StoriesCollection, storyID, &story); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to fetch story '%s': %w", storyID, err)
	}
	if story.UserID != requesterID {
		return fmt.Errorf("story '%s' is not owned by '%s': %w", storyID, requesterID, ErrForbidden)
	}
	if err := ss.Store.Delete(ctx, models.StoriesCollection, storyID); err != nil {
		return fmt.Errorf("failed to delete story '%s': %w", storyID, err)
	}
	log.Info().Str("component", "stories").Str("storyId", storyID).Msg("story deleted")
	return nil
}
