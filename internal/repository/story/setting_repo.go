package story

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/chaesu44438/emotion-theater/internal/model/story"
	"github.com/chaesu44438/emotion-theater/internal/pkg/cache"
)

// SettingRepo prompt-template storage over MongoDB with an optional
// Redis read-through cache. A missing record resolves to the compiled-in
// default, so the pipeline works on an empty database.
type SettingRepo struct {
	collection *mongo.Collection
	cache      *cache.RedisCache // optional
}

// NewSettingRepo creates the setting repository. cache may be nil.
func NewSettingRepo(db *mongo.Database, c *cache.RedisCache) *SettingRepo {
	return &SettingRepo{
		collection: db.Collection("settings"),
		cache:      c,
	}
}

// defaults maps well-known setting IDs to their compiled-in values.
var defaults = map[string]string{
	story.SettingStoryPrompt:       DefaultStoryPrompt,
	story.SettingImagePromptSystem: DefaultImagePromptSystem,
}

// Get returns a setting value, falling back to the compiled-in default
// when the record is absent or the database is unreachable.
func (r *SettingRepo) Get(ctx context.Context, id string) string {
	if r.cache != nil {
		var cached string
		if err := r.cache.Get(ctx, cache.SettingCacheKey(id), &cached); err == nil {
			return cached
		}
	}

	var s story.Setting
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			log.Warn().Err(err).Str("setting", id).Msg("setting lookup failed, using default")
		}
		return defaults[id]
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, cache.SettingCacheKey(id), s.Value, cache.SettingCacheTTL); err != nil {
			log.Warn().Err(err).Str("setting", id).Msg("setting cache write failed")
		}
	}
	return s.Value
}

// Set stores an operator override and invalidates the cache entry.
func (r *SettingRepo) Set(ctx context.Context, id, value string) error {
	update := bson.M{"$set": bson.M{
		"type":       story.SettingTypePrompt,
		"value":      value,
		"updated_at": time.Now(),
	}}
	opts := options.Update().SetUpsert(true)

	if _, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update, opts); err != nil {
		return err
	}

	if r.cache != nil {
		if err := r.cache.Delete(ctx, cache.SettingCacheKey(id)); err != nil {
			log.Warn().Err(err).Str("setting", id).Msg("setting cache invalidation failed")
		}
	}
	return nil
}

// Reset removes an operator override, restoring the compiled-in default.
func (r *SettingRepo) Reset(ctx context.Context, id string) error {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return err
	}
	if r.cache != nil {
		if err := r.cache.Delete(ctx, cache.SettingCacheKey(id)); err != nil {
			log.Warn().Err(err).Str("setting", id).Msg("setting cache invalidation failed")
		}
	}
	return nil
}

// Default returns the compiled-in value for a well-known setting ID.
func Default(id string) string {
	return defaults[id]
}
