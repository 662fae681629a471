package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/mikiasgoitom/likeboard/pkg/client"
)

func main() {
	baseURL := flag.String("url", "http://localhost:5000", "API base URL")
	postCount := flag.Int("posts", 10, "number of posts to create")
	likers := flag.Int("likers", 5, "number of anonymous clients that like posts")
	flag.Parse()

	gofakeit.Seed(time.Now().UnixNano())
	ctx := context.Background()

	author := client.New(*baseURL, client.NewIdentityResolver(&client.MemoryStorage{}))
	var ids []string
	for i := 0; i < *postCount; i++ {
		post, err := author.CreatePost(ctx, client.NewPost{
			Title:   gofakeit.Sentence(4),
			Content: gofakeit.Paragraph(1, 3, 12, " "),
			Author:  gofakeit.Name(),
		})
		if err != nil {
			log.Fatalf("create post: %v", err)
		}
		ids = append(ids, post.ID)
	}
	log.Printf("created %d posts", len(ids))
	if len(ids) == 0 {
		return
	}

	// each liker is a separate anonymous client
	for i := 0; i < *likers; i++ {
		c := client.New(*baseURL, client.NewIdentityResolver(&client.MemoryStorage{}))
		for n := gofakeit.Number(1, len(ids)); n > 0; n-- {
			id := ids[gofakeit.Number(0, len(ids)-1)]
			res, err := c.ToggleLike(ctx, id)
			if err != nil {
				log.Printf("toggle like on %s: %v", id, err)
				continue
			}
			log.Printf("post %s liked=%t count=%d", res.PostID, res.Liked, res.LikeCount)
		}
	}
}
