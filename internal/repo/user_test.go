package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtneystore/catalog-api/internal/models"
)

func TestFindByUsername_AbsentIsNotAnError(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	user, err := r.FindByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestCreateUser_ThenFind(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	u := models.User{Username: "alice", PasswordHash: "hash"}
	require.NoError(t, r.CreateUser(ctx, &u))
	require.NotZero(t, u.ID)

	found, err := r.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, u.ID, found.ID)
	assert.Equal(t, "hash", found.PasswordHash)
}

func TestCreateUser_DuplicateUsernameRejectedByStore(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.CreateUser(ctx, &models.User{Username: "alice", PasswordHash: "h1"}))
	err := r.CreateUser(ctx, &models.User{Username: "alice", PasswordHash: "h2"})
	require.Error(t, err)
}
