// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

package store

import (
	"encoding/json"
	"testing"

	"brightsite/internal/models"
)

func TestPageContentStoreFindMissing(t *testing.T) {
	db := testDB(t)
	s := NewPageContentStore(db)

	doc, err := s.Find("test-page-missing")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if doc != nil {
		t.Error("expected nil for a page with no document")
	}
}

func TestPageContentStoreSaveAndFind(t *testing.T) {
	db := testDB(t)
	s := NewPageContentStore(db)

	pageID := "test-page-save"
	t.Cleanup(func() { cleanPageContent(t, db, pageID) })

	content := &models.PageContent{
		Hero: &models.HeroBlock{Title: "Welcome", Subtitle: "To the club"},
		Stats: &models.StatsBlock{
			Title: "Numbers",
			Items: []models.Stat{{Number: "500+", Label: "Members"}},
		},
	}

	if err := s.Save(pageID, content); err != nil {
		t.Fatalf("Save: %v", err)
	}

	doc, err := s.Find(pageID)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if doc == nil {
		t.Fatal("expected document, got nil")
	}
	if doc.Content.Hero == nil || doc.Content.Hero.Title != "Welcome" {
		t.Errorf("hero: got %+v", doc.Content.Hero)
	}
	if doc.Content.Stats == nil || len(doc.Content.Stats.Items) != 1 {
		t.Errorf("stats: got %+v", doc.Content.Stats)
	}
	// Absent blocks stay nil.
	if doc.Content.CTA != nil {
		t.Error("expected nil CTA block")
	}
	if doc.Content.HasBlock("cta") {
		t.Error("HasBlock must be false for absent blocks")
	}
	if !doc.Content.HasBlock("hero") {
		t.Error("HasBlock must be true for present blocks")
	}
}

func TestPageContentStoreSaveOverwrites(t *testing.T) {
	db := testDB(t)
	s := NewPageContentStore(db)

	pageID := "test-page-overwrite"
	t.Cleanup(func() { cleanPageContent(t, db, pageID) })

	s.Save(pageID, &models.PageContent{
		Hero: &models.HeroBlock{Title: "Old"},
		CTA:  &models.CTABlock{Title: "Join now"},
	})
	s.Save(pageID, &models.PageContent{
		Hero: &models.HeroBlock{Title: "New"},
	})

	doc, err := s.Find(pageID)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if doc.Content.Hero.Title != "New" {
		t.Errorf("hero title: got %q, want %q", doc.Content.Hero.Title, "New")
	}
	// Overwrite replaces the whole document, not a merge.
	if doc.Content.CTA != nil {
		t.Error("expected CTA dropped by full overwrite")
	}
}

func TestPageContentStoreRawRoundTrip(t *testing.T) {
	db := testDB(t)
	s := NewPageContentStore(db)

	pageID := "test-page-raw"
	t.Cleanup(func() { cleanPageContent(t, db, pageID) })

	// Unknown top-level blocks must survive a raw round trip.
	raw := json.RawMessage(`{"hero": {"title": "Raw"}, "customBlock": {"x": 1}}`)
	if err := s.SaveRaw(pageID, raw); err != nil {
		t.Fatalf("SaveRaw: %v", err)
	}

	got, err := s.FindRaw(pageID)
	if err != nil {
		t.Fatalf("FindRaw: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(got, &decoded); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}
	if _, ok := decoded["customBlock"]; !ok {
		t.Error("unknown block lost in raw round trip")
	}
}

func TestPageContentStoreSaveRawRejectsInvalidJSON(t *testing.T) {
	db := testDB(t)
	s := NewPageContentStore(db)

	err := s.SaveRaw("test-page-bad", json.RawMessage(`{"hero": `))
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestPageContentStorePageIDs(t *testing.T) {
	db := testDB(t)
	s := NewPageContentStore(db)

	ids := []string{"test-page-ids-a", "test-page-ids-b"}
	t.Cleanup(func() { cleanPageContent(t, db, ids...) })

	for _, id := range ids {
		s.Save(id, &models.PageContent{Hero: &models.HeroBlock{Title: id}})
	}

	all, err := s.PageIDs()
	if err != nil {
		t.Fatalf("PageIDs: %v", err)
	}
	found := 0
	for _, id := range all {
		for _, want := range ids {
			if id == want {
				found++
			}
		}
	}
	if found != len(ids) {
		t.Errorf("expected both test pages listed, found %d", found)
	}
}
