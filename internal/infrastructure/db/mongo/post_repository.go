package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wildwall/wall-api/internal/core/domain"
)

const postsCollection = "posts"

// PostRepository is the MongoDB-backed wall store. The author's username is
// denormalized onto each post at creation so listings need no lookup.
type PostRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{db: db, coll: db.Collection(postsCollection)}
}

type mongoPost struct {
	ID        int       `bson:"_id"`
	Text      string    `bson:"text"`
	Color     string    `bson:"color"`
	Status    string    `bson:"status"`
	UserID    int       `bson:"user_id"`
	Username  string    `bson:"username"`
	CreatedAt time.Time `bson:"created_at"`
}

func (mp mongoPost) toDomain() *domain.Post {
	return &domain.Post{
		ID:        mp.ID,
		Text:      mp.Text,
		Color:     mp.Color,
		Status:    domain.PostStatus(mp.Status),
		UserID:    mp.UserID,
		Username:  mp.Username,
		CreatedAt: mp.CreatedAt.UTC(),
	}
}

func (r *PostRepository) FindByStatus(ctx context.Context, status domain.PostStatus) ([]*domain.Post, error) {
	// Newest notes first.
	cur, err := r.coll.Find(ctx,
		bson.M{"status": string(status)},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}
	defer cur.Close(ctx)

	var posts []*domain.Post
	for cur.Next(ctx) {
		var mp mongoPost
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		posts = append(posts, mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id int) (*domain.Post, error) {
	var mp mongoPost
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	id, err := nextSequence(ctx, r.db, postsCollection)
	if err != nil {
		return nil, err
	}

	// Resolve the author's username for denormalization.
	var author struct {
		Username string `bson:"username"`
	}
	if err := r.db.Collection(usersCollection).
		FindOne(ctx, bson.M{"_id": post.UserID}).Decode(&author); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("resolve post author: %w", err)
	}

	doc := mongoPost{
		ID:        id,
		Text:      post.Text,
		Color:     post.Color,
		Status:    string(post.Status),
		UserID:    post.UserID,
		Username:  author.Username,
		CreatedAt: post.CreatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	return doc.toDomain(), nil
}

func (r *PostRepository) Update(ctx context.Context, id int, text, color string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"text":       text,
			"color":      color,
			"created_at": time.Now().UTC(),
		}},
	)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *PostRepository) SetStatus(ctx context.Context, id int, status domain.PostStatus) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": string(status)}},
	)
	if err != nil {
		return fmt.Errorf("set post status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id int) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}
