package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/likeboard/internal/domain/contract"
	"github.com/mikiasgoitom/likeboard/internal/domain/entity"
	"github.com/mikiasgoitom/likeboard/internal/domain/errs"
)

// PostRepository represents the MongoDB implementation of the IPostRepository interface.
type PostRepository struct {
	collection *mongo.Collection
}

// NewPostRepository creates and returns a new PostRepository instance.
func NewPostRepository(collection *mongo.Collection) *PostRepository {
	return &PostRepository{collection: collection}
}

var _ contract.IPostRepository = (*PostRepository)(nil)

// EnsureIndexes creates the index backing the newest-first listing.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: -1}},
		Options: options.Index().SetName("created_at_desc"),
	})
	if err != nil {
		return fmt.Errorf("failed to create posts index: %w", err)
	}
	return nil
}

// CreatePost inserts a new post record into the database.
func (r *PostRepository) CreatePost(ctx context.Context, post *entity.Post) error {
	if post.LikedBy == nil {
		post.LikedBy = []entity.ClientID{} // liked_by must be an array for the toggle pipeline
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}
	post.UpdatedAt = post.CreatedAt

	if _, err := r.collection.InsertOne(ctx, post); err != nil {
		return errs.Storage("create post", err)
	}
	return nil
}

// GetPostByID retrieves a single post by its unique id.
func (r *PostRepository) GetPostByID(ctx context.Context, postID string) (*entity.Post, error) {
	var post entity.Post
	err := r.collection.FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("post with id '%s': %w", postID, errs.NotFound)
		}
		return nil, errs.Storage("get post", err)
	}
	return &post, nil
}

// ListPosts retrieves every post sorted by creation time, newest first.
func (r *PostRepository) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, errs.Storage("list posts", err)
	}
	defer cursor.Close(ctx)

	posts := []*entity.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, errs.Storage("decode posts", err)
	}
	return posts, nil
}

// DeletePost removes a post together with its embedded likes.
func (r *PostRepository) DeletePost(ctx context.Context, postID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": postID})
	if err != nil {
		return errs.Storage("delete post", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("post with id '%s': %w", postID, errs.NotFound)
	}
	return nil
}

// ToggleLike adds the client to liked_by and increments like_count, or removes
// it and decrements, depending on current membership. Both fields are computed
// from the same pre-update document in one pipeline stage, so the server
// applies the check and the mutation atomically.
func (r *PostRepository) ToggleLike(ctx context.Context, postID string, clientID entity.ClientID) (*entity.Post, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post entity.Post
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": postID}, toggleLikePipeline(clientID), opts).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("post with id '%s': %w", postID, errs.NotFound)
		}
		return nil, errs.Storage("toggle like", err)
	}
	return &post, nil
}

// toggleLikePipeline builds the update. The client id goes through $literal so
// a value starting with "$" is never read as a field path.
func toggleLikePipeline(clientID entity.ClientID) mongo.Pipeline {
	client := bson.M{"$literal": string(clientID)}
	likedBy := bson.M{"$ifNull": bson.A{"$liked_by", bson.A{}}}
	likeCount := bson.M{"$ifNull": bson.A{"$like_count", 0}}
	isMember := bson.M{"$in": bson.A{client, likedBy}}

	return mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "like_count", Value: bson.M{"$cond": bson.A{
				isMember,
				bson.M{"$subtract": bson.A{likeCount, 1}},
				bson.M{"$add": bson.A{likeCount, 1}},
			}}},
			{Key: "liked_by", Value: bson.M{"$cond": bson.A{
				isMember,
				bson.M{"$filter": bson.M{
					"input": likedBy,
					"cond":  bson.M{"$ne": bson.A{"$$this", client}},
				}},
				bson.M{"$concatArrays": bson.A{likedBy, bson.A{client}}},
			}}},
			{Key: "updated_at", Value: "$$NOW"},
		}}},
	}
}
