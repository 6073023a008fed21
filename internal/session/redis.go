// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-gtd/internal/utils"
	"github.com/MKhiriev/go-gtd/models"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each session as a JSON string with a Redis TTL, so
// expiry needs no janitor.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
	ids    *utils.UUIDGenerator
	now    func() time.Time
}

func NewRedisStore(client redis.UniversalClient, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
	}
}

func (s *RedisStore) Create(ctx context.Context, userID int64, login string) (models.Session, error) {
	now := s.now()
	sess := models.Session{
		ID:        s.ids.Generate(),
		UserID:    userID,
		Login:     login,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	raw, err := json.Marshal(sess)
	if err != nil {
		return models.Session{}, fmt.Errorf("error encoding session: %w", err)
	}
	if err := s.client.Set(ctx, key(sess.ID), raw, s.ttl).Err(); err != nil {
		return models.Session{}, fmt.Errorf("error storing session: %w", err)
	}
	return sess, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (models.Session, error) {
	if id == "" {
		return models.Session{}, ErrSessionNotFound
	}

	raw, err := s.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("error loading session: %w", err)
	}

	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidSessionID, err)
	}
	if sess.Expired(s.now()) {
		return models.Session{}, ErrSessionNotFound
	}
	return sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

func (s *RedisStore) Touch(ctx context.Context, id string) error {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	sess.ExpiresAt = s.now().Add(s.ttl)
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("error encoding session: %w", err)
	}
	if err := s.client.Set(ctx, key(id), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("error storing session: %w", err)
	}
	return nil
}
