package ratelimiter

import (
	"errors"
	"sync"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"golang.org/x/time/rate"
)

type Store interface {
	Increment(key string) (int, error)
	Stats() map[string]int
}

// InMemoryStore keeps one token bucket per key. Buckets idle longer than the
// expire duration are swept out so the map does not grow with every
// application ever seen.
type InMemoryStore struct {
	maxAmount      int
	validDuration  time.Duration
	expireDuration time.Duration
	storage        map[string]*entry
	logger         lager.Logger
	sync.RWMutex
}

type entry struct {
	limiter   *rate.Limiter
	expiredAt time.Time
}

func (e *entry) Expired() bool {
	return time.Now().After(e.expiredAt)
}

func NewStore(maxAmount int, validDuration time.Duration, expireDuration time.Duration, logger lager.Logger) Store {
	store := &InMemoryStore{
		maxAmount:      maxAmount,
		validDuration:  validDuration,
		expireDuration: expireDuration,
		logger:         logger,
		storage:        make(map[string]*entry),
	}
	store.expiryCycle()
	return store
}

func (s *InMemoryStore) newEntry() *entry {
	return &entry{
		limiter: rate.NewLimiter(rate.Every(s.validDuration/time.Duration(s.maxAmount)), s.maxAmount),
	}
}

func (s *InMemoryStore) Increment(key string) (int, error) {
	v, ok := s.get(key)
	if !ok {
		v = s.newEntry()
	}
	v.expiredAt = time.Now().Add(s.expireDuration)
	if !v.limiter.Allow() {
		s.set(key, v)
		return 0, errors.New("empty bucket")
	}
	s.set(key, v)
	return int(v.limiter.Tokens()), nil
}

func (s *InMemoryStore) get(key string) (*entry, bool) {
	s.RLock()
	defer s.RUnlock()
	v, ok := s.storage[key]
	return v, ok
}

func (s *InMemoryStore) set(key string, value *entry) {
	s.Lock()
	defer s.Unlock()
	s.storage[key] = value
}

func (s *InMemoryStore) expiryCycle() {
	ticker := time.NewTicker(30 * time.Second)
	go func() {
		for range ticker.C {
			s.Lock()
			for k, v := range s.storage {
				if v.Expired() {
					s.logger.Debug("removing-expired-key", lager.Data{"key": k})
					delete(s.storage, k)
				}
			}
			s.Unlock()
		}
	}()
}

func (s *InMemoryStore) Stats() map[string]int {
	m := make(map[string]int)
	s.RLock()
	for k, v := range s.storage {
		m[k] = int(v.limiter.Tokens())
	}
	s.RUnlock()
	return m
}
