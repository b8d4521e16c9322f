package syncstate

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"bitbucket.org/mmdatafocus/dynamics_connector/result"
)

// Watermarks are persisted in this exact fractional-second format and
// parsed back with it; nothing else ever writes these keys.
const timeFormat = "2006-01-02 15:04:05.0000000"

type Clock interface {
	UtcNow() time.Time
}

type systemClock struct{}

func (systemClock) UtcNow() time.Time { return time.Now().UTC() }

func SystemClock() Clock { return systemClock{} }

// Service tracks the last successful sync time per entity type.
type Service struct {
	store Store
	clock Clock
}

func NewService(store Store) *Service {
	return &Service{store: store, clock: systemClock{}}
}

func NewServiceWithClock(store Store, clock Clock) *Service {
	return &Service{store: store, clock: clock}
}

// entityKey derives the storage key from the fully-qualified type
// name, so every entity type owns exactly one watermark slot.
func entityKey[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return t.PkgPath() + "." + t.Name()
}

// GetLastSyncTime returns the stored watermark for T, or nil when
// none has been written yet (meaning: full sync).
func GetLastSyncTime[T any](s *Service) result.Result[*time.Time] {
	read := s.store.ReadString(entityKey[T]())
	if read.IsErr() {
		return result.ErrAs[string, *time.Time](read)
	}
	if strings.TrimSpace(read.Value()) == "" {
		return result.Ok[*time.Time](nil)
	}

	parsed, err := time.Parse(timeFormat, read.Value())
	if err != nil {
		return result.Err[*time.Time](fmt.Sprintf("malformed sync time for %s: %v", entityKey[T](), err))
	}
	parsed = parsed.UTC()
	return result.Ok(&parsed)
}

// SetSyncTime advances the watermark for T to the current UTC time.
func SetSyncTime[T any](s *Service) result.Result[result.Unit] {
	return s.store.WriteString(entityKey[T](), s.clock.UtcNow().Format(timeFormat))
}
