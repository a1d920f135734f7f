package services

import (
	"context"
	"testing"

	"timepass_server/models"
	"timepass_server/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProfile(t *testing.T) {
	ctx := context.Background()
	us := &UserService{Store: store.NewMemoryStore()}

	user, err := us.CreateProfile(ctx, models.User{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, user.UserID)
	assert.NotEmpty(t, user.CreatedAt)

	got, err := us.GetProfile(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
}

func TestCreateProfileKeepsCallerID(t *testing.T) {
	ctx := context.Background()
	us := &UserService{Store: store.NewMemoryStore()}

	user, err := us.CreateProfile(ctx, models.User{UserID: "auth-123", Username: "bob"})
	require.NoError(t, err)
	assert.Equal(t, "auth-123", user.UserID)
}

func TestCreateProfileRequiresUsername(t *testing.T) {
	us := &UserService{Store: store.NewMemoryStore()}

	_, err := us.CreateProfile(context.Background(), models.User{Username: "   "})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	ms := store.NewMemoryStore()
	us := &UserService{Store: ms}
	seedUser(t, ms, "u1", "alice")

	updated, err := us.UpdateProfile(ctx, "u1", map[string]string{"bio": "hello world"})
	require.NoError(t, err)
	assert.Equal(t, "hello world", updated.Bio)
	assert.Equal(t, "alice", updated.Username)

	_, err = us.UpdateProfile(ctx, "u1", map[string]string{"createdAt": "1999-01-01T00:00:00Z"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = us.UpdateProfile(ctx, "u1", map[string]string{})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = us.UpdateProfile(ctx, "missing", map[string]string{"bio": "x"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}
