package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymtrack/gymtrack/internal/config"
	"github.com/gymtrack/gymtrack/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() { mr.Close() })

	cfg := config.RedisConnection{
		AddressRedis: mr.Addr(),
		Password:     "",
		DB:           0,
		User:         "",
	}

	store, err := InitServer(context.Background(), cfg, "gymtrack-members")
	require.NoError(t, err)
	return store
}

func testMember(name string) models.Member {
	return models.Member{
		ID:               uuid.New().String(),
		Name:             name,
		Email:            name + "@example.com",
		RegistrationDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC).Format(models.DateLayout),
		Plan: models.Plan{
			ID:        uuid.New().String(),
			Name:      "Mensual",
			Duration:  1,
			Price:     30,
			StartDate: "2024-01-15",
			EndDate:   "2024-02-15",
		},
		Status: models.StatusActive,
	}
}

func TestStore_LoadMembers_MissingKey(t *testing.T) {
	store := setupTestStore(t)

	members, err := store.LoadMembers(context.Background())
	require.NoError(t, err)
	assert.Nil(t, members, "отсутствие ключа означает пустую коллекцию")
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	expected := []models.Member{testMember("Ana"), testMember("Luis")}
	err := store.SaveMembers(ctx, expected)
	require.NoError(t, err)

	actual, err := store.LoadMembers(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}

func TestStore_SaveMembers_Overwrites(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveMembers(ctx, []models.Member{testMember("Ana"), testMember("Luis")}))

	second := []models.Member{testMember("Carlos")}
	require.NoError(t, store.SaveMembers(ctx, second))

	actual, err := store.LoadMembers(ctx)
	require.NoError(t, err)
	require.Len(t, actual, 1)
	assert.Equal(t, second[0].ID, actual[0].ID)
}

func TestStore_PreservesOrder(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	members := []models.Member{testMember("Ana"), testMember("Luis"), testMember("Carlos")}
	require.NoError(t, store.SaveMembers(ctx, members))

	actual, err := store.LoadMembers(ctx)
	require.NoError(t, err)
	require.Len(t, actual, 3)
	for i := range members {
		assert.Equal(t, members[i].ID, actual[i].ID)
	}
}

func TestStore_LoadMembers_CorruptedValue(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	err := store.Db.Set(ctx, store.Key, "not-json", 0).Err()
	require.NoError(t, err)

	_, err = store.LoadMembers(ctx)
	require.Error(t, err)
}
