package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/microblog/internal/model"
)

func TestIndexPaginatesThirteenPosts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	author := env.user(t, "alice")

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 13; i++ {
		p := &model.Post{Text: fmt.Sprintf("post %d", i), AuthorID: author.ID, Created: base.Add(time.Duration(i) * time.Second)}
		require.NoError(t, env.db.Create(p).Error)
	}

	page1, err := env.feeds.Index(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, page1.Posts, 10)
	assert.Equal(t, 2, page1.Page.TotalPages)
	assert.True(t, page1.Page.HasNext)

	page2, err := env.feeds.Index(ctx, "2")
	require.NoError(t, err)
	assert.Len(t, page2.Posts, 3)
	assert.False(t, page2.Page.HasNext)

	// 最新的帖子排最前
	assert.Equal(t, "post 12", page1.Posts[0].Text)
}

func TestGroupPostsUnknownSlug(t *testing.T) {
	env := newTestEnv(t)
	_, _, err := env.feeds.GroupPosts(context.Background(), "missing", "1")
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestProfileUnknownUser(t *testing.T) {
	env := newTestEnv(t)
	_, _, _, err := env.feeds.Profile(context.Background(), "missing", "1", nil)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestProfileFollowingFlag(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.user(t, "alice")
	bob := env.user(t, "bob")

	_, err := env.relations.Follow(ctx, bob.ID, "alice")
	require.NoError(t, err)

	// bob 看 alice：following = true
	_, _, following, err := env.feeds.Profile(ctx, "alice", "1", &bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	// 匿名访问：false
	_, _, following, err = env.feeds.Profile(ctx, "alice", "1", nil)
	require.NoError(t, err)
	assert.False(t, following)
}

// 新帖应出现在：全站、所属社区、作者主页、关注者的关注流；
// 不应出现在别的社区与非关注者的关注流。
func TestNewPostFeedVisibility(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.user(t, "alice")
	bob := env.user(t, "bob")
	carol := env.user(t, "carol")
	golang := env.group(t, "golang")
	env.group(t, "rust")

	_, err := env.relations.Follow(ctx, bob.ID, "alice")
	require.NoError(t, err)

	post, fields, err := env.postSvc.Create(ctx, alice.ID, PostInput{Text: "hello", GroupID: &golang.ID})
	require.NoError(t, err)
	require.Nil(t, fields)

	index, err := env.feeds.Index(ctx, "1")
	require.NoError(t, err)
	require.Len(t, index.Posts, 1)
	assert.Equal(t, post.ID, index.Posts[0].ID)

	_, groupFeed, err := env.feeds.GroupPosts(ctx, "golang", "1")
	require.NoError(t, err)
	assert.Len(t, groupFeed.Posts, 1)

	_, otherFeed, err := env.feeds.GroupPosts(ctx, "rust", "1")
	require.NoError(t, err)
	assert.Empty(t, otherFeed.Posts)

	_, profileFeed, _, err := env.feeds.Profile(ctx, "alice", "1", nil)
	require.NoError(t, err)
	assert.Len(t, profileFeed.Posts, 1)

	followerFeed, err := env.feeds.FollowIndex(ctx, bob.ID, "1")
	require.NoError(t, err)
	assert.Len(t, followerFeed.Posts, 1)

	nonFollowerFeed, err := env.feeds.FollowIndex(ctx, carol.ID, "1")
	require.NoError(t, err)
	assert.Empty(t, nonFollowerFeed.Posts)
}
