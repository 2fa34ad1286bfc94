package index

import (
	"log/slog"
	"os"
	"testing"

	"github.com/kevinccbsg/twd-principles/internal/storage"
)

func syncTestEnv(t *testing.T) (storage.Provider, *DB, *slog.Logger) {
	t.Helper()
	store, err := storage.NewFS(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return store, testDB(t), logger
}

func TestSync_IndexesNewDocuments(t *testing.T) {
	store, db, logger := syncTestEnv(t)
	_ = store.Write("index.md", []byte("# Home\nSee [the manifesto](/twd-manifesto)."))
	_ = store.Write("twd-manifesto.md", []byte("---\ntitle: TWD Manifesto\n---\nBody."))

	if err := Sync(db, store, "", logger); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	doc, err := db.GetDocument("twd-manifesto.md")
	if err != nil || doc == nil {
		t.Fatalf("GetDocument: %v, %v", doc, err)
	}
	if doc.Title != "TWD Manifesto" || doc.Route != "/twd-manifesto" {
		t.Errorf("row = %+v", doc)
	}

	refs, _ := db.References("/twd-manifesto")
	if len(refs) != 1 || refs[0] != "index.md" {
		t.Errorf("refs = %v, want [index.md]", refs)
	}
}

func TestSync_RemovesStaleEntries(t *testing.T) {
	store, db, logger := syncTestEnv(t)
	_ = store.Write("old.md", []byte("# Old"))
	if err := Sync(db, store, "", logger); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	_ = store.Delete("old.md")
	if err := Sync(db, store, "", logger); err != nil {
		t.Fatalf("second Sync: %v", err)
	}
	cs, _ := db.GetChecksum("old.md")
	if cs != "" {
		t.Error("stale entry not removed")
	}
}

func TestSync_SkipsUnchanged(t *testing.T) {
	store, db, logger := syncTestEnv(t)
	_ = store.Write("a.md", []byte("# A"))
	if err := Sync(db, store, "", logger); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	first, _ := db.GetDocument("a.md")

	if err := Sync(db, store, "", logger); err != nil {
		t.Fatalf("second Sync: %v", err)
	}
	second, _ := db.GetDocument("a.md")
	if !first.UpdatedAt.Equal(second.UpdatedAt) {
		t.Error("unchanged document was re-indexed")
	}
}

func TestSync_NormalisesLinksAgainstBase(t *testing.T) {
	store, db, logger := syncTestEnv(t)
	_ = store.Write("index.md", []byte("[m](/docs/motivation) and [ext](https://example.com)"))

	if err := Sync(db, store, "/docs", logger); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	links, _ := db.AllLinks()
	if len(links) != 1 || links[0].Target != "/motivation" {
		t.Errorf("links = %v, want single /motivation", links)
	}
}
