package caltrainlive

import (
	"testing"
	"time"
)

func TestTTLCacheServesFreshValue(t *testing.T) {
	c := newTTLCache[int](time.Hour)
	builds := 0
	build := func(bool) (int, bool) {
		builds++
		return 42, true
	}

	for i := 0; i < 3; i++ {
		v, ok := c.GetOrRefresh(build)
		if !ok || v != 42 {
			t.Fatalf("GetOrRefresh = %d, %v", v, ok)
		}
	}
	if builds != 1 {
		t.Errorf("build ran %d times within the TTL, want 1", builds)
	}
}

func TestTTLCacheRebuildsAfterExpiry(t *testing.T) {
	c := newTTLCache[int](time.Nanosecond)
	builds := 0
	build := func(bool) (int, bool) {
		builds++
		return builds, true
	}

	c.GetOrRefresh(build)
	time.Sleep(time.Millisecond)
	v, ok := c.GetOrRefresh(build)
	if !ok || v != 2 {
		t.Fatalf("GetOrRefresh after expiry = %d, %v", v, ok)
	}
	if builds != 2 {
		t.Errorf("build ran %d times, want 2", builds)
	}
}

func TestTTLCacheServesStaleOnFailedRebuild(t *testing.T) {
	c := newTTLCache[string](time.Nanosecond)

	c.GetOrRefresh(func(bool) (string, bool) { return "good", true })
	time.Sleep(time.Millisecond)

	var sawStale bool
	v, ok := c.GetOrRefresh(func(hasStale bool) (string, bool) {
		sawStale = hasStale
		return "", false
	})
	if !ok || v != "good" {
		t.Fatalf("GetOrRefresh = %q, %v; want the stale value", v, ok)
	}
	if !sawStale {
		t.Error("builder should see that a stale value exists")
	}
}

func TestTTLCacheEmptyAndFailing(t *testing.T) {
	c := newTTLCache[string](time.Hour)

	v, ok := c.GetOrRefresh(func(hasStale bool) (string, bool) {
		if hasStale {
			t.Error("no stale value should exist on first build")
		}
		return "", false
	})
	if ok || v != "" {
		t.Fatalf("GetOrRefresh = %q, %v; want zero value and false", v, ok)
	}
	if _, known := c.Age(); known {
		t.Error("age should be unknown after a failed first build")
	}
}

func TestTTLCacheAge(t *testing.T) {
	c := newTTLCache[int](time.Hour)
	if _, ok := c.Age(); ok {
		t.Fatal("age known before any build")
	}
	c.GetOrRefresh(func(bool) (int, bool) { return 1, true })
	age, ok := c.Age()
	if !ok {
		t.Fatal("age unknown after a build")
	}
	if age < 0 || age > time.Minute {
		t.Errorf("implausible age %v", age)
	}
}
