package story

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/chaesu44438/emotion-theater/internal/model/story"
)

// StoryRepo story storage over MongoDB.
type StoryRepo struct {
	collection *mongo.Collection
}

// NewStoryRepo creates the story repository.
func NewStoryRepo(db *mongo.Database) *StoryRepo {
	return &StoryRepo{
		collection: db.Collection("stories"),
	}
}

// Create inserts a new story.
func (r *StoryRepo) Create(ctx context.Context, s *story.Story) error {
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, s)
	return err
}

// FindByID looks a story up by ID.
func (r *StoryRepo) FindByID(ctx context.Context, id string) (*story.Story, error) {
	var s story.Story
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListByUser returns one user's stories, newest first.
func (r *StoryRepo) ListByUser(ctx context.Context, userID string) ([]*story.Story, error) {
	opts := options.Find().SetSort(bson.D{bson.E{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var stories []*story.Story
	if err := cursor.All(ctx, &stories); err != nil {
		return nil, err
	}
	return stories, nil
}

// SetVideoID records the video artifact produced for a story.
func (r *StoryRepo) SetVideoID(ctx context.Context, id, videoID string) error {
	update := bson.M{"$set": bson.M{"video_id": videoID, "updated_at": time.Now()}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

// Delete removes a story owned by userID. Returns
// mongo.ErrNoDocuments when nothing matched.
func (r *StoryRepo) Delete(ctx context.Context, id, userID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
