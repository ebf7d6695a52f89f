package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hawkins/simpletimeclock/internal/core/domain"
)

const collectionUsers = "users"

// UserRepository is a Mongo-backed user store: one document per user,
// keyed by the userId field. Chosen over the flat file when several API
// replicas share state.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

// Create inserts a new user document. An id collision fails with
// domain.ErrUserExists; the unique index makes the check race-free.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("%w: insert user: %v", domain.ErrStorageUnavailable, err)
	}
	return user, nil
}

// Find retrieves a user by id.
func (r *UserRepository) Find(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var user domain.User
	err := r.col.FindOne(ctx, bson.M{"userId": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: find user: %v", domain.ErrStorageUnavailable, err)
	}
	return &user, nil
}

// FindAll returns the full id→user collection.
func (r *UserRepository) FindAll(ctx context.Context) (map[string]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: list users: %v", domain.ErrStorageUnavailable, err)
	}
	defer cur.Close(ctx)

	users := make(map[string]*domain.User)
	for cur.Next(ctx) {
		var user domain.User
		if err := cur.Decode(&user); err != nil {
			return nil, fmt.Errorf("%w: decode user: %v", domain.ErrStorageUnavailable, err)
		}
		users[user.ID] = &user
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate users: %v", domain.ErrStorageUnavailable, err)
	}
	return users, nil
}

// Update replaces an existing user document. Not an upsert.
func (r *UserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"userId": user.ID}, user)
	if err != nil {
		return nil, fmt.Errorf("%w: replace user: %v", domain.ErrStorageUnavailable, err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// EnsureIndexes creates the unique userId index.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
