package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/microblog/internal/model"
)

func TestCreatePostSetsAuthorAndIncrementsCount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")

	before, err := env.posts.CountAll(ctx)
	require.NoError(t, err)

	post, fields, err := env.postSvc.Create(ctx, alice.ID, PostInput{Text: "hello"})
	require.NoError(t, err)
	require.Nil(t, fields)
	assert.Equal(t, alice.ID, post.AuthorID)

	after, err := env.posts.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, before+1, after)
}

func TestCreatePostRequiresText(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")

	post, fields, err := env.postSvc.Create(ctx, alice.ID, PostInput{Text: ""})
	require.NoError(t, err)
	assert.Nil(t, post)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "text")

	cnt, err := env.posts.CountAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, cnt)
}

func TestUpdateByNonAuthorIsRefused(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")
	bob := env.user(t, "bob")

	post, _, err := env.postSvc.Create(ctx, alice.ID, PostInput{Text: "original"})
	require.NoError(t, err)

	_, _, err = env.postSvc.Update(ctx, post.ID, bob.ID, PostInput{Text: "hijacked"})
	assert.ErrorIs(t, err, ErrNotAuthor)

	got, _, err := env.postSvc.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Text)
}

func TestUpdateByAuthorKeepsCreated(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")
	golang := env.group(t, "golang")

	post, _, err := env.postSvc.Create(ctx, alice.ID, PostInput{Text: "original"})
	require.NoError(t, err)
	created := post.Created

	updated, fields, err := env.postSvc.Update(ctx, post.ID, alice.ID, PostInput{Text: "edited", GroupID: &golang.ID})
	require.NoError(t, err)
	require.Nil(t, fields)
	assert.Equal(t, "edited", updated.Text)
	require.NotNil(t, updated.GroupID)
	assert.Equal(t, golang.ID, *updated.GroupID)

	var stored model.Post
	require.NoError(t, env.db.First(&stored, post.ID).Error)
	assert.Equal(t, "edited", stored.Text)
	assert.WithinDuration(t, created, stored.Created, 0)
}

func TestUpdateMissingPost(t *testing.T) {
	env := newTestEnv(t)
	alice := env.user(t, "alice")
	_, _, err := env.postSvc.Update(context.Background(), 999, alice.ID, PostInput{Text: "x"})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestGetMissingPost(t *testing.T) {
	env := newTestEnv(t)
	_, _, err := env.postSvc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, ErrPostNotFound)
}
