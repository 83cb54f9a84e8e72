package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"github.com/d60-Lab/microblog/config"
	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
	"github.com/d60-Lab/microblog/pkg/database"
)

func must[T any](v T, err error) T { if err != nil { panic(err) }; return v }

// 本地演示数据：N 个用户，每人 POSTS 篇帖子，所有人关注 u0
func main() {
	cfg := must(config.Load())
	db := must(database.InitDB(cfg))

	N := 50
	POSTS := 5
	if s := os.Getenv("N"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 { N = n }
	}
	if s := os.Getenv("POSTS"); s != "" {
		if p, err := strconv.Atoi(s); err == nil && p > 0 { POSTS = p }
	}

	hash := must(bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost))

	groups := []model.Group{
		{Title: "General", Slug: "general", Description: "Anything goes"},
		{Title: "Golang", Slug: "golang", Description: "Go talk"},
	}
	_ = db.Create(&groups).Error

	users := make([]model.User, N)
	for i := 0; i < N; i++ {
		name := fmt.Sprintf("u%04d", i)
		users[i] = model.User{Username: name, Email: name + "@example.com", Password: string(hash)}
	}
	_ = db.CreateInBatches(&users, 500).Error

	ctx := context.Background()
	postRepo := repository.NewPostRepository(db)
	followRepo := repository.NewFollowRepository(db)

	for i := range users {
		gid := groups[i%len(groups)].ID
		for p := 0; p < POSTS; p++ {
			_ = postRepo.Create(ctx, &model.Post{
				Text:     fmt.Sprintf("post %d by %s", p, users[i].Username),
				AuthorID: users[i].ID,
				GroupID:  &gid,
			})
		}
		if users[i].ID != users[0].ID {
			_ = followRepo.Create(ctx, users[i].ID, users[0].ID)
		}
	}

	fmt.Printf("seeded %d users, %d groups, %d posts\n", N, len(groups), N*POSTS)
}
