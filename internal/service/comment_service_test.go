package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/microblog/internal/model"
)

func TestAddCommentOnMissingPost(t *testing.T) {
	env := newTestEnv(t)
	alice := env.user(t, "alice")

	_, _, err := env.comments.Add(context.Background(), 999, alice.ID, "hi")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestAddCommentValidatesText(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")
	post, _, err := env.postSvc.Create(ctx, alice.ID, PostInput{Text: "hello"})
	require.NoError(t, err)

	comment, fields, err := env.comments.Add(ctx, post.ID, alice.ID, "   ")
	require.NoError(t, err)
	assert.Nil(t, comment)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "text")

	var cnt int64
	require.NoError(t, env.db.Model(&model.Comment{}).Count(&cnt).Error)
	assert.Zero(t, cnt)
}

func TestAddCommentAttachesToPostAndAuthor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")
	bob := env.user(t, "bob")
	post, _, err := env.postSvc.Create(ctx, alice.ID, PostInput{Text: "hello"})
	require.NoError(t, err)

	comment, fields, err := env.comments.Add(ctx, post.ID, bob.ID, "nice post")
	require.NoError(t, err)
	require.Nil(t, fields)
	require.NotNil(t, comment.PostID)
	assert.Equal(t, post.ID, *comment.PostID)
	require.NotNil(t, comment.AuthorID)
	assert.Equal(t, bob.ID, *comment.AuthorID)

	_, comments, err := env.postSvc.Get(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "nice post", comments[0].Text)
}
