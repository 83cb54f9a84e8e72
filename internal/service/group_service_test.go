package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupsListedByIDAscending(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.group(t, "zzz")
	env.group(t, "aaa")

	groups, err := env.groups.List(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "zzz", groups[0].Slug)
	assert.Equal(t, "aaa", groups[1].Slug)
}

func TestDeleteGroupBlockedWhileReferenced(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")
	golang := env.group(t, "golang")

	_, _, err := env.postSvc.Create(ctx, alice.ID, PostInput{Text: "hello", GroupID: &golang.ID})
	require.NoError(t, err)

	err = env.groups.Delete(ctx, "golang")
	assert.ErrorIs(t, err, ErrGroupInUse)

	// 帖子清掉社区后即可删除
	require.NoError(t, env.db.Exec("UPDATE posts SET group_id = NULL").Error)
	require.NoError(t, env.groups.Delete(ctx, "golang"))

	err = env.groups.Delete(ctx, "golang")
	assert.ErrorIs(t, err, ErrGroupNotFound)
}
