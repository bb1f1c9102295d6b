package redis

import (
	"context"
	"sync"
	"time"

	"flashlight-portfolio/internal/app"
	"github.com/redis/go-redis/v9"
)

// SessionStore is a Redis-aware implementation of app.SessionRepository.
// Games and their timers live in the local map; Redis only carries a
// liveness marker per mounted game so other instances can count them.
// Every lookup of a live game pushes the marker's expiry forward.
type SessionStore struct {
	client   *redis.Client
	ttl      time.Duration
	mu       sync.RWMutex
	sessions map[string]*app.Game
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client:   client,
		ttl:      ttl,
		sessions: make(map[string]*app.Game),
	}
}

func (s *SessionStore) Add(game *app.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[game.ID()] = game
	// best-effort liveness marker
	_ = s.client.Set(context.Background(), s.key(game.ID()), "1", s.ttl).Err()
}

func (s *SessionStore) Get(id string) (*app.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.sessions[id]
	if ok {
		s.touch(id)
	}
	return game, ok
}

func (s *SessionStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return
	}
	delete(s.sessions, id)
	_ = s.client.Del(context.Background(), s.key(id)).Err()
}

func (s *SessionStore) touch(id string) {
	ctx := context.Background()
	// The marker may have expired while the game was idle; recreate it.
	if n, err := s.client.Expire(ctx, s.key(id), s.ttl).Result(); err == nil && !n {
		_ = s.client.Set(ctx, s.key(id), "1", s.ttl).Err()
	}
}

func (s *SessionStore) key(id string) string {
	return "game:session:" + id
}
