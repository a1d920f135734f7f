package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"timepass_server/models"
	"timepass_server/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// UserService manages user profile documents
type UserService struct {
	Store store.Store
}

// CreateProfile writes the sign-up document for a user. Identity comes from
// the external auth provider, so the caller may supply the user id; a fresh
// one is generated otherwise.
func (us *UserService) CreateProfile(ctx context.Context, user models.User) (*models.User, error) {
	if strings.TrimSpace(user.Username) == "" {
		return nil, fmt.Errorf("username is required: %w", ErrValidation)
	}
	if user.UserID == "" {
		user.UserID = uuid.NewString()
	}
	user.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := us.Store.Put(ctx, models.UsersCollection, user.UserID, user); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	log.Info().Str("component", "users").Str("userId", user.UserID).Msg("profile created")
	return &user, nil
}

// GetProfile retrieves a user profile by id
func (us *UserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	if err := us.Store.Get(ctx, models.UsersCollection, userID, &user); err != nil {
		return nil, fmt.Errorf("failed to fetch profile '%s': %w", userID, err)
	}
	return &user, nil
}

// profileFields are the only profile attributes editable after sign-up.
var profileFields = map[string]bool{
	"username":        true,
	"bio":             true,
	"profileImageUrl": true,
}

// UpdateProfile applies a partial update to the editable profile fields and
// returns the updated document.
func (us *UserService) UpdateProfile(ctx context.Context, userID string, updates map[string]string) (*models.User, error) {
	fields := make(map[string]interface{}, len(updates))
	for k, v := range updates {
		if !profileFields[k] {
			return nil, fmt.Errorf("field '%s' is not editable: %w", k, ErrValidation)
		}
		fields[k] = v
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields to update: %w", ErrValidation)
	}

	if _, err := us.GetProfile(ctx, userID); err != nil {
		return nil, err
	}
	if err := us.Store.UpdateFields(ctx, models.UsersCollection, userID, fields); err != nil {
		return nil, fmt.Errorf("failed to update profile '%s': %w", userID, err)
	}
	return us.GetProfile(ctx, userID)
}

// ListProfiles returns every user profile, in store-return order
func (us *UserService) ListProfiles(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := us.Store.Query(ctx, models.UsersCollection, store.Query{}, &users); err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}
