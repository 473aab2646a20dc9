package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vestineo/news-blog-api/internal/model"
)

const (
	postCollection = "posts"

	defaultLimit = 20
	maxLimit     = 100
)

var (
	// ErrNotFound means no post matched the given id.
	ErrNotFound = errors.New("post not found")
	// ErrInvalidID means the id string is not a valid ObjectID.
	ErrInvalidID = errors.New("invalid post id")
)

// PostRepository issues typed queries against the posts collection.
// Every method performs exactly one store call.
type PostRepository struct {
	client *Client
	col    *mongo.Collection
}

func NewPostRepository(c *Client) *PostRepository {
	return &PostRepository{
		client: c,
		col:    c.Collection(postCollection),
	}
}

// Create inserts the post with the id omitted and returns the stored
// post with the id MongoDB assigned.
func (r *PostRepository) Create(ctx context.Context, post model.Post) (model.Post, error) {
	post.ID = primitive.NilObjectID
	opCtx, cancel := r.client.withTimeout(ctx)
	defer cancel()

	res, err := r.col.InsertOne(opCtx, post)
	if err != nil {
		return model.Post{}, fmt.Errorf("insert post: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		post.ID = oid
	}
	return post, nil
}

// GetByID returns the post with the given hex id. A malformed id yields
// ErrInvalidID without touching the store; a missing document yields
// ErrNotFound.
func (r *PostRepository) GetByID(ctx context.Context, id string) (model.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Post{}, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	opCtx, cancel := r.client.withTimeout(ctx)
	defer cancel()

	var post model.Post
	err = r.col.FindOne(opCtx, bson.M{"_id": oid}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Post{}, ErrNotFound
	}
	if err != nil {
		return model.Post{}, fmt.Errorf("find post: %w", err)
	}
	return post, nil
}

// List returns one page of posts sorted by date descending.
func (r *PostRepository) List(ctx context.Context, page, limit int64) ([]model.Post, error) {
	return r.find(ctx, bson.D{}, pageOptions(page, limit))
}

// Count returns the total number of posts.
func (r *PostRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, bson.D{})
}

// ListByCategory returns one page of posts whose category starts with
// the given prefix, case-insensitively, sorted by date descending.
func (r *PostRepository) ListByCategory(ctx context.Context, category string, page, limit int64) ([]model.Post, error) {
	return r.find(ctx, prefixFilter("category", category), pageOptions(page, limit))
}

// CountByCategory counts posts under the same prefix filter as ListByCategory.
func (r *PostRepository) CountByCategory(ctx context.Context, category string) (int64, error) {
	return r.count(ctx, prefixFilter("category", category))
}

// ListByAuthor returns one page of posts whose author starts with the
// given prefix, case-insensitively, sorted by date descending.
func (r *PostRepository) ListByAuthor(ctx context.Context, author string, page, limit int64) ([]model.Post, error) {
	return r.find(ctx, prefixFilter("author", author), pageOptions(page, limit))
}

// CountByAuthor counts posts under the same prefix filter as ListByAuthor.
func (r *PostRepository) CountByAuthor(ctx context.Context, author string) (int64, error) {
	return r.count(ctx, prefixFilter("author", author))
}

// Search runs a full-text query against the collection's text index and
// returns all matches ordered by descending relevance score. No
// pagination is applied.
func (r *PostRepository) Search(ctx context.Context, text string) ([]model.Post, error) {
	filter := bson.M{"$text": bson.M{"$search": text}}
	opts := options.Find().SetSort(bson.D{{Key: "score", Value: bson.M{"$meta": "textScore"}}})
	return r.find(ctx, filter, opts)
}

func (r *PostRepository) find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]model.Post, error) {
	opCtx, cancel := r.client.withTimeout(ctx)
	defer cancel()

	cur, err := r.col.Find(opCtx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}
	var posts []model.Post
	if err := cur.All(opCtx, &posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) count(ctx context.Context, filter interface{}) (int64, error) {
	opCtx, cancel := r.client.withTimeout(ctx)
	defer cancel()

	n, err := r.col.CountDocuments(opCtx, filter)
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return n, nil
}

// prefixFilter builds an anchored case-insensitive "starts with" match.
// The prefix is quoted so regex metacharacters in it match literally.
func prefixFilter(field, prefix string) bson.M {
	return bson.M{field: primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(prefix),
		Options: "i",
	}}
}

// pageOptions translates 1-indexed page/limit into skip/limit find
// options with the date-descending sort. Out-of-range values are
// clamped so a negative skip never reaches the store.
func pageOptions(page, limit int64) *options.FindOptions {
	skip, lim := normalizePage(page, limit)
	return options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetSkip(skip).
		SetLimit(lim)
}

func normalizePage(page, limit int64) (skip, lim int64) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return (page - 1) * limit, limit
}
