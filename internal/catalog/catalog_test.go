package catalog

import (
	"testing"

	"github.com/danieljhkim/encheck/internal/encoding"
)

func testEntries(t *testing.T) []Entry {
	t.Helper()
	sh1add, err := encoding.ParseToken("0010000----------010-----0110011")
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	scw, err := encoding.New(0x1800202f, 0xf800707f)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return []Entry{
		{ID: "rv_zba/sh1add", Extension: "rv_zba", Name: "sh1add", Pattern: sh1add},
		{ID: "rv_a/sc.w", Extension: "rv_a", Name: "sc.w", Pattern: scw},
	}
}

func TestCatalog_Entries(t *testing.T) {
	cat := New(testEntries(t))

	t.Run("preserves order", func(t *testing.T) {
		entries := cat.Entries()
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}
		if entries[0].ID != "rv_zba/sh1add" || entries[1].ID != "rv_a/sc.w" {
			t.Errorf("unexpected entry order: %s, %s", entries[0].ID, entries[1].ID)
		}
	})

	t.Run("len matches", func(t *testing.T) {
		if cat.Len() != 2 {
			t.Errorf("Len() = %d, want 2", cat.Len())
		}
	})
}

func TestCatalog_Find(t *testing.T) {
	cat := New(testEntries(t))

	t.Run("existing entry", func(t *testing.T) {
		e, ok := cat.Find("rv_a/sc.w")
		if !ok {
			t.Fatal("expected to find rv_a/sc.w")
		}
		if e.Name != "sc.w" {
			t.Errorf("Name = %q, want %q", e.Name, "sc.w")
		}
		if e.Pattern.Match != 0x1800202f || e.Pattern.Mask != 0xf800707f {
			t.Errorf("unexpected pattern: match=0x%08x mask=0x%08x", e.Pattern.Match, e.Pattern.Mask)
		}
	})

	t.Run("missing entry", func(t *testing.T) {
		_, ok := cat.Find("rv_zbb/andn")
		if ok {
			t.Error("expected Find to miss for unknown ID")
		}
	})
}

func TestCatalog_SnapshotIsolation(t *testing.T) {
	entries := testEntries(t)
	cat := New(entries)

	// Mutating the input slice after construction must not leak into the snapshot.
	entries[0].ID = "mutated"

	if got, _ := cat.Find("rv_zba/sh1add"); got.ID != "rv_zba/sh1add" {
		t.Errorf("snapshot was affected by caller mutation: %q", got.ID)
	}
}
