package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGetDestroy(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Close()
	ctx := context.Background()

	token := NewToken()
	require.NoError(t, store.Set(ctx, token, Session{UserID: 42, Name: "Ana", Role: "USER"}))

	got, err := store.Get(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(42), got.UserID)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, "USER", got.Role)

	require.NoError(t, store.Destroy(ctx, token))
	got, err = store.Get(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, got, "después de Destroy la sesión no debe existir")
}

func TestMemoryStore_TokenDesconocido(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Close()

	got, err := store.Get(context.Background(), NewToken())
	require.NoError(t, err)
	assert.Nil(t, got, "un token nunca registrado devuelve nil sin error")
}

func TestMemoryStore_Expiracion(t *testing.T) {
	store := NewMemoryStore(5 * time.Millisecond)
	defer store.Close()
	ctx := context.Background()

	token := NewToken()
	require.NoError(t, store.Set(ctx, token, Session{UserID: 1, Name: "Ana", Role: "USER"}))

	time.Sleep(20 * time.Millisecond)

	got, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, got, "una sesión expirada debe comportarse como inexistente")
}

func TestMemoryStore_DestroyIdempotente(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Close()

	assert.NoError(t, store.Destroy(context.Background(), NewToken()),
		"destruir un token inexistente no es un error")
}

func TestNewToken_Unicos(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok := NewToken()
		assert.NotEmpty(t, tok)
		assert.False(t, seen[tok], "los tokens no deben repetirse")
		seen[tok] = true
	}
}
