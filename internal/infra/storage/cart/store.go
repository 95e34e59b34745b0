package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

const keyPrefix = "cart:"

// Store хранилище сессий корзины в Redis
// Каждая сессия - JSON под ключом cart:<id> с TTL, который продлевается при записи
type Store struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewStore создает хранилище корзин
func NewStore(client redis.UniversalClient, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Get загружает сессию
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*domain.CartSession, error) {
	raw, err := s.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", ErrStore, id, err)
	}

	var session domain.CartSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return &session, nil
}

// Save сохраняет сессию и продлевает TTL
func (s *Store) Save(ctx context.Context, session *domain.CartSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if err := s.client.Set(ctx, key(session.ID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrStore, session.ID, err)
	}

	return nil
}

// Delete удаляет сессию
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	removed, err := s.client.Del(ctx, key(id)).Result()
	if err != nil {
		return fmt.Errorf("%w: del %s: %v", ErrStore, id, err)
	}
	if removed == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func key(id uuid.UUID) string {
	return keyPrefix + id.String()
}
