package auth_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	driver "go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/ridehail/pkg/mongo"
	"github.com/dmitrymomot/ridehail/svc/auth"
)

// newTestDatabase connects to MONGODB_TEST_URL and returns a throwaway
// database that is dropped after the test.
func newTestDatabase(t *testing.T) *driver.Database {
	t.Helper()
	url := os.Getenv("MONGODB_TEST_URL")
	if url == "" {
		t.Skip("MONGODB_TEST_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := mongo.NewWithDatabase(ctx, mongo.Config{
		ConnectionURL:  url,
		Database:       "ridehail_test_" + uuid.NewString()[:8],
		ConnectTimeout: 5 * time.Second,
		RetryAttempts:  1,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = db.Client().Disconnect(context.Background())
	})
	return db
}

func TestMongoStore(t *testing.T) {
	t.Parallel()
	db := newTestDatabase(t)
	ctx := context.Background()

	store, err := auth.NewMongoStore(ctx, db, auth.RoleDriver)
	require.NoError(t, err)

	p := &auth.Principal{
		Email:     "captain@example.com",
		FullName:  auth.FullName{FirstName: "Arjun", LastName: "Mehta"},
		Vehicle:   &auth.Vehicle{Color: "white", Plate: "DL3C 1234", Capacity: 1, VehicleType: auth.VehicleMotorcycle},
		Status:    auth.StatusInactive,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, store.Create(ctx, p, "$2a$10$hash"))
	require.Len(t, p.ID, 24)

	t.Run("duplicate email", func(t *testing.T) {
		err := store.Create(ctx, &auth.Principal{Email: "captain@example.com"}, "x")
		require.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
	})

	t.Run("get by id omits the password", func(t *testing.T) {
		got, err := store.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p.Email, got.Email)
		assert.Equal(t, auth.RoleDriver, got.Role)
		assert.Equal(t, "DL3C 1234", got.Vehicle.Plate)

		var raw bson.M
		require.NoError(t, db.Collection(auth.DriverCollection).FindOne(ctx, bson.D{{Key: "email", Value: p.Email}}).Decode(&raw))
		assert.Equal(t, "$2a$10$hash", raw["password"])
	})

	t.Run("get credentials by email", func(t *testing.T) {
		got, hash, err := store.GetCredentialsByEmail(ctx, p.Email)
		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)
		assert.Equal(t, "$2a$10$hash", hash)
	})

	t.Run("unknown and malformed ids", func(t *testing.T) {
		_, err := store.GetByID(ctx, bson.NewObjectID().Hex())
		require.ErrorIs(t, err, auth.ErrPrincipalNotFound)
		_, err = store.GetByID(ctx, "not-an-object-id")
		require.ErrorIs(t, err, auth.ErrPrincipalNotFound)
	})
}

func TestMongoRevocationStore(t *testing.T) {
	t.Parallel()
	db := newTestDatabase(t)
	ctx := context.Background()

	store, err := auth.NewMongoRevocationStore(ctx, db)
	require.NoError(t, err)

	require.NoError(t, store.Revoke(ctx, "live", time.Now().Add(time.Hour)))
	require.NoError(t, store.Revoke(ctx, "live", time.Now().Add(time.Hour)))
	require.NoError(t, store.Revoke(ctx, "stale", time.Now().Add(-time.Minute)))

	revoked, err := store.IsRevoked(ctx, "live")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = store.IsRevoked(ctx, "stale")
	require.NoError(t, err)
	assert.False(t, revoked)

	revoked, err = store.IsRevoked(ctx, "never")
	require.NoError(t, err)
	assert.False(t, revoked)
}
