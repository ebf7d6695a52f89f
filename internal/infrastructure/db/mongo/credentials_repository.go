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

const collectionCredentials = "credentials"

// CredentialsRepository stores login credentials, one document per user id.
type CredentialsRepository struct {
	col *mongo.Collection
}

func NewCredentialsRepository(db *mongo.Database) *CredentialsRepository {
	return &CredentialsRepository{col: db.Collection(collectionCredentials)}
}

func (r *CredentialsRepository) Create(ctx context.Context, creds *domain.Credentials) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, creds)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("%w: insert credentials: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

func (r *CredentialsRepository) FindByUserID(ctx context.Context, userID string) (*domain.Credentials, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var creds domain.Credentials
	err := r.col.FindOne(ctx, bson.M{"userId": userID}).Decode(&creds)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: find credentials: %v", domain.ErrStorageUnavailable, err)
	}
	return &creds, nil
}

// EnsureIndexes creates the unique userId index.
func (r *CredentialsRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
