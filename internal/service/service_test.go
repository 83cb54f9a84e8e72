package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
	"github.com/d60-Lab/microblog/pkg/database"
)

type testEnv struct {
	db    *gorm.DB
	users repository.UserRepository
	posts repository.PostRepository

	feeds     FeedService
	postSvc   PostService
	comments  CommentService
	relations RelationshipService
	groups    GroupService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, database.Migrate(db))

	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	followRepo := repository.NewFollowRepository(db)

	return &testEnv{
		db:        db,
		users:     userRepo,
		posts:     postRepo,
		feeds:     NewFeedService(postRepo, groupRepo, userRepo, followRepo, 10),
		postSvc:   NewPostService(postRepo, commentRepo),
		comments:  NewCommentService(postRepo, commentRepo),
		relations: NewRelationshipService(followRepo, userRepo),
		groups:    NewGroupService(groupRepo, postRepo),
	}
}

func (e *testEnv) user(t *testing.T, username string) *model.User {
	t.Helper()
	u := &model.User{Username: username, Email: username + "@example.com", Password: "p"}
	require.NoError(t, e.db.Create(u).Error)
	return u
}

func (e *testEnv) group(t *testing.T, slug string) *model.Group {
	t.Helper()
	g := &model.Group{Title: slug, Slug: slug, Description: "d"}
	require.NoError(t, e.db.Create(g).Error)
	return g
}
