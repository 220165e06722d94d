package credstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "credentials")
	store, err := New(path)
	require.NoError(t, err)

	return store, path
}

func TestSaveAndLoadAuthData(t *testing.T) {
	store, _ := setupTestStore(t)

	require.NoError(t, store.SaveAuthData("tok123", "u1", "duffin", "d@example.com"))

	data, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &AuthData{
		Token:    "tok123",
		UserID:   "u1",
		Username: "duffin",
		Email:    "d@example.com",
	}, data)
	assert.True(t, store.IsLoggedIn(context.Background()))
}

func TestClearAuthDataRemovesWholeGroup(t *testing.T) {
	store, _ := setupTestStore(t)

	require.NoError(t, store.SaveAuthData("tok123", "u1", "duffin", "d@example.com"))
	require.NoError(t, store.ClearAuthData())

	data, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &AuthData{}, data)
	assert.False(t, store.IsLoggedIn(context.Background()))
}

func TestCredentialsSurviveReopen(t *testing.T) {
	store, path := setupTestStore(t)
	require.NoError(t, store.SaveAuthData("tok123", "u1", "duffin", "d@example.com"))

	reopened, err := New(path)
	require.NoError(t, err)

	token, err := reopened.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)
}

func TestMissingFileIsEmptyStore(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "does-not-exist-yet"))
	require.NoError(t, err)

	assert.False(t, store.IsLoggedIn(context.Background()))
}

func TestExpiredContextReadsAsLoggedOut(t *testing.T) {
	store, _ := setupTestStore(t)
	require.NoError(t, store.SaveAuthData("tok123", "u1", "duffin", "d@example.com"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Token(ctx)
	assert.Error(t, err)
	assert.False(t, store.IsLoggedIn(ctx))
}

func TestTokenAbsenceIsNotAnError(t *testing.T) {
	store, _ := setupTestStore(t)

	token, err := store.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestInMemoryStore(t *testing.T) {
	store, err := New("")
	require.NoError(t, err)

	require.NoError(t, store.SaveAuthData("tok", "u", "n", "e"))
	assert.True(t, store.IsLoggedIn(context.Background()))
}
