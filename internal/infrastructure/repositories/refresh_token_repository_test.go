package repositories

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/Forbidden-Duck/ecommerce-backend/domain"
)

// setupTestRedis creates an in-memory Redis instance for testing
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(func() {
		mr.Close()
	})

	return redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
}

func newTestToken(token, userID string) *domain.RefreshToken {
	return &domain.RefreshToken{
		Token:     token,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
}

func TestRefreshTokenRepositoryImpl_CreateAndFind(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewRefreshTokenRepository(client, 30*24*time.Hour)
	ctx := context.Background()

	token := newTestToken("token_abc", "user-1")
	if err := repo.Create(ctx, token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.Find(ctx, "token_abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != "user-1" {
		t.Errorf("expected user id %q, got %q", "user-1", found.UserID)
	}

	// Store-level expiry must be armed on the record itself
	ttl := client.TTL(ctx, "refresh_token:token_abc").Val()
	if ttl <= 0 {
		t.Error("expected a TTL on the refresh token key")
	}

	if _, err := repo.Find(ctx, "no_such_token"); err != domain.ErrRefreshTokenNotFound {
		t.Errorf("expected ErrRefreshTokenNotFound, got %v", err)
	}
}

func TestRefreshTokenRepositoryImpl_RedeemOnce(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewRefreshTokenRepository(client, 30*24*time.Hour)
	ctx := context.Background()

	if err := repo.Create(ctx, newTestToken("token_once", "user-1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	record, err := repo.Redeem(ctx, "token_once")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.UserID != "user-1" {
		t.Errorf("expected user id %q, got %q", "user-1", record.UserID)
	}

	// Second redemption must observe the record already gone
	if _, err := repo.Redeem(ctx, "token_once"); err != domain.ErrRefreshTokenNotFound {
		t.Errorf("expected ErrRefreshTokenNotFound, got %v", err)
	}
	if _, err := repo.Find(ctx, "token_once"); err != domain.ErrRefreshTokenNotFound {
		t.Errorf("expected ErrRefreshTokenNotFound, got %v", err)
	}
}

func TestRefreshTokenRepositoryImpl_ConcurrentRedeem(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewRefreshTokenRepository(client, 30*24*time.Hour)
	ctx := context.Background()

	if err := repo.Create(ctx, newTestToken("token_race", "user-1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const racers = 16
	var wg sync.WaitGroup
	results := make(chan error, racers)

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Redeem(ctx, "token_race")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, losses int
	for err := range results {
		switch err {
		case nil:
			wins++
		case domain.ErrRefreshTokenNotFound:
			losses++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if wins != 1 {
		t.Errorf("expected exactly one successful redemption, got %d", wins)
	}
	if losses != racers-1 {
		t.Errorf("expected %d losers, got %d", racers-1, losses)
	}
}

func TestRefreshTokenRepositoryImpl_Delete(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewRefreshTokenRepository(client, 30*24*time.Hour)
	ctx := context.Background()

	if err := repo.Create(ctx, newTestToken("token_del", "user-1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Wrong owner is a no-op
	if err := repo.Delete(ctx, "token_del", "user-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.Find(ctx, "token_del"); err != nil {
		t.Fatalf("token should survive a non-matching delete: %v", err)
	}

	// Matching pair removes the record
	if err := repo.Delete(ctx, "token_del", "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.Find(ctx, "token_del"); err != domain.ErrRefreshTokenNotFound {
		t.Errorf("expected ErrRefreshTokenNotFound, got %v", err)
	}

	// Deleting an absent token is a no-op
	if err := repo.Delete(ctx, "token_del", "user-1"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRefreshTokenRepositoryImpl_DeleteAllForUser(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewRefreshTokenRepository(client, 30*24*time.Hour)
	ctx := context.Background()

	for _, token := range []string{"token_a", "token_b", "token_c"} {
		if err := repo.Create(ctx, newTestToken(token, "user-1")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := repo.Create(ctx, newTestToken("token_other", "user-2")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := repo.DeleteAllForUser(ctx, "user-1", "token_b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, token := range []string{"token_a", "token_c"} {
		if _, err := repo.Find(ctx, token); err != domain.ErrRefreshTokenNotFound {
			t.Errorf("expected %s to be revoked, got %v", token, err)
		}
	}
	if _, err := repo.Find(ctx, "token_b"); err != nil {
		t.Errorf("spared token should survive, got %v", err)
	}
	if _, err := repo.Find(ctx, "token_other"); err != nil {
		t.Errorf("other user's token should survive, got %v", err)
	}

	// No tokens at all is a no-op
	if err := repo.DeleteAllForUser(ctx, "user-3", ""); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
