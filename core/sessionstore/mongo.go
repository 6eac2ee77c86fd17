package sessionstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/innobit-io/lushus-session/core/session"
)

const (
	defaultMongoTTL  = 24 * time.Hour
	mongoKeyAttempts = 5
)

// mongoDocument is the stored shape: the session key is the document id, the
// state keeps its map form so entries stay queryable in the shell.
type mongoDocument struct {
	Key       string            `bson:"_id"`
	State     map[string]string `bson:"state"`
	ExpiresAt time.Time         `bson:"expires_at"`
}

// MongoStore persists session state in a MongoDB collection, one document per
// session keyed by the session key. Expired documents are treated as absent
// on Load; EnsureIndexes installs a TTL index so MongoDB reaps them.
type MongoStore struct {
	collection *mongo.Collection
	ttl        time.Duration
}

// MongoOption configures a MongoStore.
type MongoOption func(*MongoStore)

// WithMongoTTL sets the document lifetime refreshed on every Save.
// The default is 24 hours.
func WithMongoTTL(ttl time.Duration) MongoOption {
	return func(s *MongoStore) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// NewMongoStore creates a store on top of an existing collection handle. The
// caller owns the client's lifecycle.
func NewMongoStore(collection *mongo.Collection, opts ...MongoOption) (*MongoStore, error) {
	if collection == nil {
		return nil, ErrMissingClient
	}

	s := &MongoStore{
		collection: collection,
		ttl:        defaultMongoTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// EnsureIndexes installs the TTL index on expires_at so MongoDB removes
// expired documents itself. Safe to call on every startup.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	}
	if _, err := s.collection.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("create ttl index: %w", err)
	}
	return nil
}

// GenerateKey mints a fresh key and verifies no document uses it.
func (s *MongoStore) GenerateKey(ctx context.Context) (session.Key, error) {
	for i := 0; i < mongoKeyAttempts; i++ {
		key, err := session.NewKey()
		if err != nil {
			return "", err
		}
		n, err := s.collection.CountDocuments(ctx, bson.M{"_id": key.String()})
		if err != nil {
			return "", fmt.Errorf("check key existence: %w", err)
		}
		if n == 0 {
			return key, nil
		}
	}
	return "", ErrKeySpaceExhausted
}

// Load fetches the state for key. Missing and expired documents both return
// (nil, false, nil).
func (s *MongoStore) Load(ctx context.Context, key session.Key) (session.State, bool, error) {
	filter := bson.M{
		"_id":        key.String(),
		"expires_at": bson.M{"$gt": time.Now()},
	}

	var doc mongoDocument
	err := s.collection.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load session state: %w", err)
	}
	return session.State(doc.State), true, nil
}

// Save upserts the whole state under key, refreshing the document's
// expiration.
func (s *MongoStore) Save(ctx context.Context, key session.Key, state session.State) error {
	doc := mongoDocument{
		Key:       key.String(),
		State:     map[string]string(state),
		ExpiresAt: time.Now().Add(s.ttl),
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": doc.Key}, doc, opts); err != nil {
		return fmt.Errorf("save session state: %w", err)
	}
	return nil
}

// Remove deletes the document for key. Removing an absent key is a no-op.
func (s *MongoStore) Remove(ctx context.Context, key session.Key) error {
	if _, err := s.collection.DeleteOne(ctx, bson.M{"_id": key.String()}); err != nil {
		return fmt.Errorf("remove session state: %w", err)
	}
	return nil
}
