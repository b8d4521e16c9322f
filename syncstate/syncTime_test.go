package syncstate

import (
	"testing"
	"time"

	"bitbucket.org/mmdatafocus/dynamics_connector/canonical"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) UtcNow() time.Time { return c.now }

func TestGetLastSyncTime_AbsentMeansFullSync(t *testing.T) {
	svc := NewService(NewMemStore())
	out := GetLastSyncTime[canonical.Vendor](svc)
	if out.IsErr() {
		t.Fatalf("unexpected failure: %s", out.Error())
	}
	if out.Value() != nil {
		t.Fatalf("expected nil watermark, got %v", out.Value())
	}
}

func TestSetThenGet_RoundTripsExactly(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 45, 123456700, time.UTC)
	svc := NewServiceWithClock(NewMemStore(), fixedClock{now: now})

	if set := SetSyncTime[canonical.Vendor](svc); set.IsErr() {
		t.Fatalf("set failed: %s", set.Error())
	}
	got := GetLastSyncTime[canonical.Vendor](svc)
	if got.IsErr() {
		t.Fatalf("get failed: %s", got.Error())
	}
	if got.Value() == nil || !got.Value().Equal(now) {
		t.Fatalf("expected %v, got %v", now, got.Value())
	}
}

func TestWatermarks_AreScopedPerEntityType(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := NewServiceWithClock(NewMemStore(), fixedClock{now: now})

	SetSyncTime[canonical.Vendor](svc)

	codes := GetLastSyncTime[canonical.EnterpriseCode](svc)
	if codes.Value() != nil {
		t.Fatalf("enterprise code watermark should be untouched, got %v", codes.Value())
	}
}

func TestGetLastSyncTime_MalformedValueFails(t *testing.T) {
	store := NewMemStore()
	store.WriteString(entityKey[canonical.Vendor](), "not a timestamp")
	svc := NewService(store)

	out := GetLastSyncTime[canonical.Vendor](svc)
	if out.IsOk() {
		t.Fatal("expected failure on malformed stored value")
	}
}

func TestStore_RejectsBlankKey(t *testing.T) {
	store := NewMemStore()
	if store.ReadString("  ").IsOk() {
		t.Fatal("expected blank key read to fail")
	}
	if store.WriteString("", "x").IsOk() {
		t.Fatal("expected blank key write to fail")
	}
}
