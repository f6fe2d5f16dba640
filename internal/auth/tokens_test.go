package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRevocationStore is an in-memory RevocationStore for tests.
type memoryRevocationStore struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func newMemoryRevocationStore() *memoryRevocationStore {
	return &memoryRevocationStore{revoked: map[string]bool{}}
}

func (s *memoryRevocationStore) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[tokenID] = true
	return nil
}

func (s *memoryRevocationStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revoked[tokenID], nil
}

func newTestManager(t *testing.T, store RevocationStore) *TokenManager {
	t.Helper()
	return NewTokenManager("test-secret", time.Hour, store, zerolog.Nop())
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	manager := newTestManager(t, NoopRevocationStore{})
	userID := uuid.New()

	token, err := manager.Issue(userID, "customer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "customer", claims.Role)
}

func TestTokenManager_VerifyRejectsGarbage(t *testing.T) {
	manager := newTestManager(t, NoopRevocationStore{})

	_, err := manager.Verify(context.Background(), "not-a-token")
	require.Error(t, err)
}

func TestTokenManager_VerifyRejectsWrongSecret(t *testing.T) {
	manager := newTestManager(t, NoopRevocationStore{})
	other := NewTokenManager("other-secret", time.Hour, NoopRevocationStore{}, zerolog.Nop())

	token, err := other.Issue(uuid.New(), "customer")
	require.NoError(t, err)

	_, err = manager.Verify(context.Background(), token)
	require.Error(t, err)
}

func TestTokenManager_VerifyRejectsExpired(t *testing.T) {
	manager := NewTokenManager("test-secret", -time.Minute, NoopRevocationStore{}, zerolog.Nop())

	token, err := manager.Issue(uuid.New(), "customer")
	require.NoError(t, err)

	_, err = manager.Verify(context.Background(), token)
	require.Error(t, err)
}

func TestTokenManager_RevokeInvalidatesToken(t *testing.T) {
	store := newMemoryRevocationStore()
	manager := newTestManager(t, store)
	ctx := context.Background()

	token, err := manager.Issue(uuid.New(), "admin")
	require.NoError(t, err)

	_, err = manager.Verify(ctx, token)
	require.NoError(t, err)

	manager.Revoke(ctx, token)

	_, err = manager.Verify(ctx, token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "revoked")
}

func TestTokenManager_RevokeUnparseableTokenIsNoop(t *testing.T) {
	store := newMemoryRevocationStore()
	manager := newTestManager(t, store)

	manager.Revoke(context.Background(), "garbage")

	assert.Empty(t, store.revoked)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	require.NotEqual(t, "hunter22", hash)

	assert.True(t, CheckPassword(hash, "hunter22"))
	assert.False(t, CheckPassword(hash, "hunter23"))
}
