package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection names used by the Mongo stores.
const (
	RiderCollection      = "users"
	DriverCollection     = "captains"
	RevocationCollection = "blacklist_tokens"
)

// CollectionFor returns the collection that holds principals of role.
func CollectionFor(role Role) string {
	if role == RoleDriver {
		return DriverCollection
	}
	return RiderCollection
}

type principalDocument struct {
	ID        bson.ObjectID    `bson:"_id"`
	FullName  fullNameDocument `bson:"fullname"`
	Email     string           `bson:"email"`
	Password  string           `bson:"password,omitempty"`
	SocketID  *string          `bson:"socketId,omitempty"`
	Vehicle   *vehicleDocument `bson:"vehicle,omitempty"`
	Status    string           `bson:"status,omitempty"`
	CreatedAt time.Time        `bson:"createdAt"`
}

type fullNameDocument struct {
	FirstName string `bson:"firstname"`
	LastName  string `bson:"lastname,omitempty"`
}

type vehicleDocument struct {
	Color       string `bson:"color"`
	Plate       string `bson:"plate"`
	Capacity    int    `bson:"capacity"`
	VehicleType string `bson:"vehicleType"`
}

func (d principalDocument) toPrincipal(role Role) *Principal {
	p := &Principal{
		ID:        d.ID.Hex(),
		Role:      role,
		FullName:  FullName{FirstName: d.FullName.FirstName, LastName: d.FullName.LastName},
		Email:     d.Email,
		SocketID:  d.SocketID,
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
	}
	if d.Vehicle != nil {
		p.Vehicle = &Vehicle{
			Color:       d.Vehicle.Color,
			Plate:       d.Vehicle.Plate,
			Capacity:    d.Vehicle.Capacity,
			VehicleType: d.Vehicle.VehicleType,
		}
	}
	return p
}

// MongoStore is a CredentialStore backed by one collection per role.
type MongoStore struct {
	coll *mongo.Collection
	role Role
}

// NewMongoStore creates a store for role on db and ensures the unique
// email index exists.
func NewMongoStore(ctx context.Context, db *mongo.Database, role Role) (*MongoStore, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	s := &MongoStore{coll: db.Collection(CollectionFor(role)), role: role}

	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create email index on %s: %w", s.coll.Name(), err)
	}
	return s, nil
}

func (s *MongoStore) Create(ctx context.Context, p *Principal, hash string) error {
	doc := principalDocument{
		ID:        bson.NewObjectID(),
		FullName:  fullNameDocument{FirstName: p.FullName.FirstName, LastName: p.FullName.LastName},
		Email:     p.Email,
		Password:  hash,
		SocketID:  p.SocketID,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
	}
	if p.Vehicle != nil {
		doc.Vehicle = &vehicleDocument{
			Color:       p.Vehicle.Color,
			Plate:       p.Vehicle.Plate,
			Capacity:    p.Vehicle.Capacity,
			VehicleType: p.Vehicle.VehicleType,
		}
	}

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailAlreadyExists
		}
		return err
	}
	p.ID = doc.ID.Hex()
	return nil
}

func (s *MongoStore) GetByID(ctx context.Context, id string) (*Principal, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrPrincipalNotFound
	}

	var doc principalDocument
	opts := options.FindOne().SetProjection(bson.D{{Key: "password", Value: 0}})
	if err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPrincipalNotFound
		}
		return nil, err
	}
	return doc.toPrincipal(s.role), nil
}

func (s *MongoStore) GetCredentialsByEmail(ctx context.Context, email string) (*Principal, string, error) {
	var doc principalDocument
	if err := s.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", ErrPrincipalNotFound
		}
		return nil, "", err
	}
	return doc.toPrincipal(s.role), doc.Password, nil
}

type revocationDocument struct {
	Token     string    `bson:"token"`
	RevokedAt time.Time `bson:"revoked_at"`
	ExpiresAt time.Time `bson:"expires_at"`
}

// MongoRevocationStore keeps revoked tokens in a collection with a TTL
// index on expires_at, so the server prunes them after expiry.
type MongoRevocationStore struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewMongoRevocationStore(ctx context.Context, db *mongo.Database) (*MongoRevocationStore, error) {
	s := &MongoRevocationStore{coll: db.Collection(RevocationCollection), now: time.Now}

	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "token", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("token_unique"),
		},
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0).SetName("expires_at_ttl"),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create revocation indexes: %w", err)
	}
	return s, nil
}

// Revoke is idempotent: revoking the same token twice is not an error.
func (s *MongoRevocationStore) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	_, err := s.coll.InsertOne(ctx, revocationDocument{
		Token:     token,
		RevokedAt: s.now().UTC(),
		ExpiresAt: expiresAt.UTC(),
	})
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return err
	}
	return nil
}

func (s *MongoRevocationStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	// The TTL monitor runs about once a minute, so expiry is checked here too.
	filter := bson.D{
		{Key: "token", Value: token},
		{Key: "expires_at", Value: bson.D{{Key: "$gt", Value: s.now().UTC()}}},
	}
	n, err := s.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
