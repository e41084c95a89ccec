package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/threestrands/threestrands/internal/utils"
)

func TestCache_MissWhenEmpty(t *testing.T) {
	clock := &utils.MockClock{FixedNow: time.Unix(1000, 0)}
	cache := NewCache(5*time.Minute, clock)

	_, ok := cache.Get()
	assert.False(t, ok)
}

func TestCache_HitWithinTTL(t *testing.T) {
	clock := &utils.MockClock{FixedNow: time.Unix(1000, 0)}
	cache := NewCache(5*time.Minute, clock)

	payload := &Catalog{UpdatedAt: "2026-05-02T12:00:00Z"}
	cache.Put(payload)

	clock.SetNow(clock.FixedNow.Add(5*time.Minute - time.Second))
	got, ok := cache.Get()
	assert.True(t, ok)
	assert.Same(t, payload, got)
}

func TestCache_MissAfterTTL(t *testing.T) {
	clock := &utils.MockClock{FixedNow: time.Unix(1000, 0)}
	cache := NewCache(5*time.Minute, clock)

	cache.Put(&Catalog{})
	clock.SetNow(clock.FixedNow.Add(5 * time.Minute))

	_, ok := cache.Get()
	assert.False(t, ok, "an entry exactly at the TTL boundary is stale")
}

func TestCache_PutRestartsWindow(t *testing.T) {
	clock := &utils.MockClock{FixedNow: time.Unix(1000, 0)}
	cache := NewCache(5*time.Minute, clock)

	cache.Put(&Catalog{UpdatedAt: "first"})
	clock.SetNow(clock.FixedNow.Add(4 * time.Minute))
	cache.Put(&Catalog{UpdatedAt: "second"})
	clock.SetNow(clock.FixedNow.Add(4 * time.Minute))

	got, ok := cache.Get()
	assert.True(t, ok)
	assert.Equal(t, "second", got.UpdatedAt)
}
