package syncstate

import (
	"strings"
	"sync"
	"time"

	"bitbucket.org/mmdatafocus/dynamics_connector/config"
	"bitbucket.org/mmdatafocus/dynamics_connector/result"
	"github.com/bsm/redislock"
)

// Store is the persisted key/value contract the watermark service
// runs on. Absence of a key is reported as an empty value, not a
// failure.
type Store interface {
	ReadString(key string) result.Result[string]
	WriteString(key string, value string) result.Result[result.Unit]
}

// RedisStore persists watermarks in redis. Each read/write takes a
// per-key lock so concurrent syncs cannot corrupt a single key.
type RedisStore struct {
	lockTTL time.Duration
}

func NewRedisStore() *RedisStore {
	return &RedisStore{lockTTL: 5 * time.Second}
}

func (s *RedisStore) ReadString(key string) result.Result[string] {
	if strings.TrimSpace(key) == "" {
		return result.Err[string]("argument 'key' must be a valid string")
	}

	release, err := s.obtainLock(key)
	if err != nil {
		return result.Err[string](err.Error())
	}
	defer release()

	val, _, err := config.GetRedisValue(key)
	if err != nil {
		return result.Err[string](err.Error())
	}
	return result.Ok(val)
}

func (s *RedisStore) WriteString(key string, value string) result.Result[result.Unit] {
	if strings.TrimSpace(key) == "" {
		return result.ErrUnit("argument 'key' must be a valid string")
	}

	release, err := s.obtainLock(key)
	if err != nil {
		return result.ErrUnit(err.Error())
	}
	defer release()

	if err := config.SetRedisValue(key, value, 0); err != nil {
		return result.ErrUnit(err.Error())
	}
	return result.OkUnit()
}

func (s *RedisStore) obtainLock(key string) (func(), error) {
	locker := config.GetRedisLock()
	if locker == nil {
		return func() {}, nil
	}
	ctx := config.GetRedisContext()
	lock, err := locker.Obtain(ctx, "lock:"+key, s.lockTTL, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(100*time.Millisecond), 10),
	})
	if err != nil {
		return nil, err
	}
	return func() { _ = lock.Release(ctx) }, nil
}

// MemStore is an in-process store used by tests and as a fallback
// when no redis address is configured (watermarks then last only for
// the process lifetime).
type MemStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{values: map[string]string{}}
}

func (s *MemStore) ReadString(key string) result.Result[string] {
	if strings.TrimSpace(key) == "" {
		return result.Err[string]("argument 'key' must be a valid string")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return result.Ok(s.values[key])
}

func (s *MemStore) WriteString(key string, value string) result.Result[result.Unit] {
	if strings.TrimSpace(key) == "" {
		return result.ErrUnit("argument 'key' must be a valid string")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return result.OkUnit()
}
