package auth

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/chaesu44438/emotion-theater/internal/model/auth"
)

// RefreshTokenRepo refresh-token storage over MongoDB.
type RefreshTokenRepo struct {
	collection *mongo.Collection
}

// NewRefreshTokenRepo creates the refresh-token repository.
func NewRefreshTokenRepo(db *mongo.Database) *RefreshTokenRepo {
	return &RefreshTokenRepo{
		collection: db.Collection("refresh_tokens"),
	}
}

// Create inserts a new refresh token.
func (r *RefreshTokenRepo) Create(ctx context.Context, token *auth.RefreshToken) error {
	token.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, token)
	return err
}

// FindByToken looks a refresh token up by its value.
func (r *RefreshTokenRepo) FindByToken(ctx context.Context, token string) (*auth.RefreshToken, error) {
	var refreshToken auth.RefreshToken
	err := r.collection.FindOne(ctx, bson.M{"token": token}).Decode(&refreshToken)
	if err != nil {
		return nil, err
	}
	return &refreshToken, nil
}

// DeleteByToken removes a token by its value.
func (r *RefreshTokenRepo) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"token": token})
	return err
}

// DeleteByUserID removes every token of one user.
func (r *RefreshTokenRepo) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}

// DeleteExpired removes all expired tokens. A TTL index on expires_at
// covers this as well; the explicit sweep keeps tests deterministic.
func (r *RefreshTokenRepo) DeleteExpired(ctx context.Context) error {
	now := time.Now()
	_, err := r.collection.DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lt": now}})
	return err
}
