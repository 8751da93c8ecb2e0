// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

package store

import "testing"

func TestSiteSettingStoreGetFallback(t *testing.T) {
	db := testDB(t)
	s := NewSiteSettingStore(db)

	val, err := s.Get("test.nonexistent-key", "default-value")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if val != "default-value" {
		t.Errorf("expected fallback, got %q", val)
	}
}

func TestSiteSettingStoreSetAndGet(t *testing.T) {
	db := testDB(t)
	s := NewSiteSettingStore(db)

	key := "test.set-and-get"
	t.Cleanup(func() { cleanSettings(t, db, key) })

	if err := s.Set(key, "first"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	val, err := s.Get(key, "fallback")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if val != "first" {
		t.Errorf("got %q, want %q", val, "first")
	}

	// Upsert overwrites.
	if err := s.Set(key, "second"); err != nil {
		t.Fatalf("Set (upsert): %v", err)
	}
	val, _ = s.Get(key, "fallback")
	if val != "second" {
		t.Errorf("after upsert: got %q, want %q", val, "second")
	}
}

func TestSiteSettingStoreEmptyValueFallsBack(t *testing.T) {
	db := testDB(t)
	s := NewSiteSettingStore(db)

	key := "test.empty-value"
	t.Cleanup(func() { cleanSettings(t, db, key) })

	s.Set(key, "")
	val, err := s.Get(key, "fallback")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if val != "fallback" {
		t.Errorf("empty stored value should fall back, got %q", val)
	}
}

func TestSiteSettingStoreSetMany(t *testing.T) {
	db := testDB(t)
	s := NewSiteSettingStore(db)

	keys := []string{"test.many-a", "test.many-b", "test.many-c"}
	t.Cleanup(func() { cleanSettings(t, db, keys...) })

	err := s.SetMany(map[string]string{
		"test.many-a": "1",
		"test.many-b": "2",
		"test.many-c": "3",
	})
	if err != nil {
		t.Fatalf("SetMany: %v", err)
	}

	all, err := s.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	for i, k := range keys {
		want := string(rune('1' + i))
		if all[k] != want {
			t.Errorf("%s: got %q, want %q", k, all[k], want)
		}
	}
}

func TestSiteSettingStoreDelete(t *testing.T) {
	db := testDB(t)
	s := NewSiteSettingStore(db)

	key := "test.delete-me"
	s.Set(key, "value")

	if err := s.Delete(key); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	val, _ := s.Get(key, "gone")
	if val != "gone" {
		t.Errorf("expected fallback after delete, got %q", val)
	}

	// Deleting a missing key is fine.
	if err := s.Delete(key); err != nil {
		t.Errorf("Delete (missing): %v", err)
	}
}
