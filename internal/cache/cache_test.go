package cache

import (
	"testing"
	"time"
)

func TestCacheRoundTrip(t *testing.T) {
	c := New(NewMemoryStore())

	in := map[string]string{"condition": "Clear"}
	if err := c.Set(Key("weather", "Pune", "en"), in, WeatherTTL); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	var out map[string]string
	if !c.Get(Key("weather", "Pune", "en"), &out) {
		t.Fatal("expected hit for fresh entry")
	}
	if out["condition"] != "Clear" {
		t.Errorf("expected condition Clear, got %q", out["condition"])
	}
}

func TestCacheMissOnUnknownKey(t *testing.T) {
	c := New(NewMemoryStore())

	var out map[string]string
	if c.Get("weather_Nowhere_en", &out) {
		t.Error("expected miss for unknown key")
	}
}

func TestCacheLazyExpiry(t *testing.T) {
	store := NewMemoryStore()
	c := New(store)

	base := time.Now()
	c.now = func() time.Time { return base }

	if err := c.Set("weather_Pune_en", "sunny", 15*time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// read at T+20min: entry must report absent and be removed
	c.now = func() time.Time { return base.Add(20 * time.Minute) }

	var out string
	if c.Get("weather_Pune_en", &out) {
		t.Error("expected miss 20 minutes after a 15-minute entry")
	}
	if _, err := store.Get(keyPrefix + "weather_Pune_en"); err != ErrNotFound {
		t.Errorf("expected expired entry deleted from store, got err=%v", err)
	}
}

func TestCacheExpiryBoundary(t *testing.T) {
	c := New(NewMemoryStore())

	base := time.Now()
	c.now = func() time.Time { return base }
	if err := c.Set("alerts_Pune_hi", []string{"storm"}, 30*time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// exactly at expiry the entry is already invalid
	c.now = func() time.Time { return base.Add(30 * time.Minute) }
	var out []string
	if c.Get("alerts_Pune_hi", &out) {
		t.Error("expected miss exactly at expiry instant")
	}
}

func TestCacheDiscardsCorruptEntry(t *testing.T) {
	store := NewMemoryStore()
	c := New(store)

	if err := store.Set(keyPrefix+"schemes_en", []byte("{not json")); err != nil {
		t.Fatalf("seeding store failed: %v", err)
	}

	var out []string
	if c.Get("schemes_en", &out) {
		t.Error("expected miss for corrupt entry")
	}
	if _, err := store.Get(keyPrefix + "schemes_en"); err != ErrNotFound {
		t.Errorf("expected corrupt entry discarded, got err=%v", err)
	}
}

func TestKeyNamespacing(t *testing.T) {
	if got := Key("weather", "Pune", "hi"); got != "weather_Pune_hi" {
		t.Errorf("unexpected key %q", got)
	}
	if got := Key("schemes", "en"); got != "schemes_en" {
		t.Errorf("unexpected key %q", got)
	}
}
