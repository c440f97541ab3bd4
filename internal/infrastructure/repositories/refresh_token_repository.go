package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Forbidden-Duck/ecommerce-backend/domain"
)

// RefreshTokenRepositoryImpl implements domain.RefreshTokenRepository
// using Redis. Records carry a store-level TTL so stale tokens expire
// without application involvement; a per-user index set supports bulk
// revocation.
type RefreshTokenRepositoryImpl struct {
	client *redis.Client
	prefix string
	index  string
	ttl    time.Duration
}

// NewRefreshTokenRepository creates a new refresh token repository
func NewRefreshTokenRepository(client *redis.Client, ttl time.Duration) domain.RefreshTokenRepository {
	return &RefreshTokenRepositoryImpl{
		client: client,
		prefix: "refresh_token:",
		index:  "user_tokens:",
		ttl:    ttl,
	}
}

func (r *RefreshTokenRepositoryImpl) key(token string) string {
	return r.prefix + token
}

func (r *RefreshTokenRepositoryImpl) indexKey(userID string) string {
	return r.index + userID
}

// Create implements domain.RefreshTokenRepository. Storage failures
// propagate to the caller; they are never retried here.
func (r *RefreshTokenRepositoryImpl) Create(ctx context.Context, token *domain.RefreshToken) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal refresh token: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.key(token.Token), data, r.ttl)
	pipe.SAdd(ctx, r.indexKey(token.UserID), token.Token)
	pipe.Expire(ctx, r.indexKey(token.UserID), r.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

// Find implements domain.RefreshTokenRepository
func (r *RefreshTokenRepositoryImpl) Find(ctx context.Context, token string) (*domain.RefreshToken, error) {
	data, err := r.client.Get(ctx, r.key(token)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrRefreshTokenNotFound
		}
		return nil, err
	}
	return r.unmarshal(data)
}

// Redeem implements domain.RefreshTokenRepository. GETDEL is a single
// atomic operation against the store, so concurrent redeemers of the
// same token can never both observe the record.
func (r *RefreshTokenRepositoryImpl) Redeem(ctx context.Context, token string) (*domain.RefreshToken, error) {
	data, err := r.client.GetDel(ctx, r.key(token)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrRefreshTokenNotFound
		}
		return nil, err
	}

	record, err := r.unmarshal(data)
	if err != nil {
		return nil, err
	}
	r.client.SRem(ctx, r.indexKey(record.UserID), token)
	return record, nil
}

// Delete implements domain.RefreshTokenRepository. An absent record or
// a token owned by a different user is a no-op.
func (r *RefreshTokenRepositoryImpl) Delete(ctx context.Context, token, userID string) error {
	data, err := r.client.Get(ctx, r.key(token)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil
		}
		return err
	}

	record, err := r.unmarshal(data)
	if err != nil {
		return err
	}
	if record.UserID != userID {
		return nil
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, r.key(token))
	pipe.SRem(ctx, r.indexKey(userID), token)
	_, err = pipe.Exec(ctx)
	return err
}

// DeleteAllForUser implements domain.RefreshTokenRepository
func (r *RefreshTokenRepositoryImpl) DeleteAllForUser(ctx context.Context, userID, exceptToken string) error {
	tokens, err := r.client.SMembers(ctx, r.indexKey(userID)).Result()
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return nil
	}

	pipe := r.client.TxPipeline()
	for _, token := range tokens {
		if token == exceptToken {
			continue
		}
		pipe.Del(ctx, r.key(token))
		pipe.SRem(ctx, r.indexKey(userID), token)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (r *RefreshTokenRepositoryImpl) unmarshal(data string) (*domain.RefreshToken, error) {
	var record domain.RefreshToken
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal refresh token: %w", err)
	}
	return &record, nil
}
