// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cache

import (
	"strconv"
	"sync"
	"testing"
)

// oneShard sends every key to shard 0 so eviction order is deterministic.
func oneShard(string) uint64 { return 0 }

func TestNewSharded(t *testing.T) {
	c := NewSharded[string, int](0, StringHasher)
	if c.Capacity() != DefaultCapacity {
		t.Errorf("Capacity() = %d, want %d", c.Capacity(), DefaultCapacity)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestGetOrCreate(t *testing.T) {
	c := NewSharded[string, int](10, StringHasher)
	calls := 0
	create := func() int {
		calls++
		return 100 + calls
	}

	if v := c.GetOrCreate("skins/cue.png", create); v != 101 {
		t.Errorf("first GetOrCreate = %d, want 101", v)
	}
	if v := c.GetOrCreate("skins/cue.png", create); v != 101 {
		t.Errorf("second GetOrCreate = %d, want cached 101", v)
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}

	st := c.Stats()
	if st.Hits != 1 || st.Misses != 1 || st.Len != 1 {
		t.Errorf("Stats() = %+v, want 1 hit, 1 miss, 1 entry", st)
	}
}

func TestGetDelete(t *testing.T) {
	c := NewSharded[string, int](10, StringHasher)
	c.GetOrCreate("a", func() int { return 1 })

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v; want 1, true", v, ok)
	}
	if _, ok := c.Get("b"); ok {
		t.Error("Get(b) found a missing key")
	}
	if !c.Delete("a") {
		t.Error("Delete(a) = false, want true")
	}
	if c.Delete("a") {
		t.Error("second Delete(a) = true, want false")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after Delete, want 0", c.Len())
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewSharded[string, int](3, oneShard)
	for i, k := range []string{"a", "b", "c"} {
		c.GetOrCreate(k, func() int { return i })
	}
	// Touch "a" so "b" becomes the oldest.
	c.Get("a")
	c.GetOrCreate("d", func() int { return 3 })

	if _, ok := c.Get("b"); ok {
		t.Error("b survived eviction, want it dropped as least recently used")
	}
	for _, k := range []string{"a", "c", "d"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("%s was evicted", k)
		}
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
	if ev := c.Stats().Evictions; ev != 1 {
		t.Errorf("Evictions = %d, want 1", ev)
	}
}

func TestClear(t *testing.T) {
	c := NewSharded[string, int](4, oneShard)
	for i := range 4 {
		c.GetOrCreate(strconv.Itoa(i), func() int { return i })
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", c.Len())
	}
	// The cleared shard accepts a full set of entries again.
	for i := range 4 {
		c.GetOrCreate(strconv.Itoa(i), func() int { return i })
	}
	if c.Len() != 4 || c.Stats().Evictions != 0 {
		t.Errorf("after refill: Len %d, stats %+v", c.Len(), c.Stats())
	}
}

func TestLRUList(t *testing.T) {
	var l lruList[int]
	if _, ok := l.removeOldest(); ok {
		t.Fatal("removeOldest on an empty list succeeded")
	}
	n1 := l.pushFront(1)
	l.pushFront(2)
	n3 := l.pushFront(3)

	l.moveToFront(n1) // 1 3 2
	l.remove(n3)      // 1 2
	if l.len != 2 {
		t.Fatalf("len = %d, want 2", l.len)
	}
	if k, _ := l.removeOldest(); k != 2 {
		t.Errorf("oldest = %d, want 2", k)
	}
	if k, _ := l.removeOldest(); k != 1 {
		t.Errorf("oldest = %d, want 1", k)
	}
	if l.head != nil || l.tail != nil || l.len != 0 {
		t.Error("list not empty after removing every node")
	}
}

func TestConcurrentGetOrCreate(t *testing.T) {
	c := NewSharded[string, int](8, StringHasher)
	var wg sync.WaitGroup
	for g := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				k := strconv.Itoa((g + j) % 50)
				c.GetOrCreate(k, func() int { return j })
				c.Get(k)
			}
		}()
	}
	wg.Wait()
	if n := c.Len(); n == 0 || n > 8*ShardCount {
		t.Errorf("Len() = %d, want between 1 and %d", n, 8*ShardCount)
	}
}
