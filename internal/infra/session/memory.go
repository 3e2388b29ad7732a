package session

import (
	"context"
	"sync"
	"time"
)

// pruneInterval как часто Save вычищает истёкшие сессии
const pruneInterval = time.Minute

type memoryEntry struct {
	userID    int64
	expiresAt time.Time
}

// MemoryStore хранилище сессий в памяти процесса (когда Redis выключен)
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
	// время последней чистки истёкших записей
	prunedAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// WithClock подменяет источник времени (для тестов)
func (s *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	s.now = now
	return s
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, userID int64, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.prunedAt) >= pruneInterval {
		s.pruneExpired(now)
	}

	s.entries[sessionID] = memoryEntry{userID: userID, expiresAt: now.Add(ttl)}
	return nil
}

// pruneExpired удаляет сессии, до которых клиент больше не дошёл; вызывается под mu
func (s *MemoryStore) pruneExpired(now time.Time) {
	for id, entry := range s.entries {
		if !now.Before(entry.expiresAt) {
			delete(s.entries, id)
		}
	}
	s.prunedAt = now
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[sessionID]
	if !ok {
		return 0, ErrSessionNotFound
	}
	if !s.now().Before(entry.expiresAt) {
		delete(s.entries, sessionID)
		return 0, ErrSessionNotFound
	}
	return entry.userID, nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)
	return nil
}

// Close ничего не освобождает, нужен для общего интерфейса с RedisStore
func (s *MemoryStore) Close() error {
	return nil
}
