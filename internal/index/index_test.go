package index

import (
	"os"
	"testing"
	"time"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	f, err := os.CreateTemp("", "twd-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })

	db, err := Open(f.Name())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSchemaCreation(t *testing.T) {
	db := testDB(t)
	var count int
	if err := db.conn.QueryRow(`SELECT count(*) FROM documents`).Scan(&count); err != nil {
		t.Fatalf("documents table missing: %v", err)
	}
	if err := db.conn.QueryRow(`SELECT count(*) FROM links`).Scan(&count); err != nil {
		t.Fatalf("links table missing: %v", err)
	}
}

func TestUpsertAndGetChecksum(t *testing.T) {
	db := testDB(t)
	row := DocRow{
		Path:      "twd-manifesto.md",
		Route:     "/twd-manifesto",
		Title:     "TWD Manifesto",
		Checksum:  "abc123",
		UpdatedAt: time.Now(),
	}
	if err := db.UpsertDocument(row, "The manifesto body.", []string{"/motivation"}); err != nil {
		t.Fatalf("UpsertDocument: %v", err)
	}
	cs, err := db.GetChecksum("twd-manifesto.md")
	if err != nil {
		t.Fatalf("GetChecksum: %v", err)
	}
	if cs != "abc123" {
		t.Errorf("checksum = %q, want abc123", cs)
	}
}

func TestGetChecksum_NotFound(t *testing.T) {
	db := testDB(t)
	cs, err := db.GetChecksum("missing.md")
	if err != nil {
		t.Fatalf("GetChecksum: %v", err)
	}
	if cs != "" {
		t.Errorf("checksum = %q, want empty", cs)
	}
}

func TestUpsertReplacesLinks(t *testing.T) {
	db := testDB(t)
	row := DocRow{Path: "index.md", Route: "/", Checksum: "1", UpdatedAt: time.Now()}
	if err := db.UpsertDocument(row, "v1", []string{"/a", "/b"}); err != nil {
		t.Fatalf("UpsertDocument: %v", err)
	}
	row.Checksum = "2"
	if err := db.UpsertDocument(row, "v2", []string{"/c"}); err != nil {
		t.Fatalf("UpsertDocument: %v", err)
	}
	links, err := db.AllLinks()
	if err != nil {
		t.Fatalf("AllLinks: %v", err)
	}
	if len(links) != 1 || links[0].Target != "/c" {
		t.Errorf("links = %v, want single /c", links)
	}
}

func TestDeleteDocument(t *testing.T) {
	db := testDB(t)
	row := DocRow{Path: "gone.md", Route: "/gone", Checksum: "x", UpdatedAt: time.Now()}
	_ = db.UpsertDocument(row, "body", []string{"/other"})
	if err := db.DeleteDocument("gone.md"); err != nil {
		t.Fatalf("DeleteDocument: %v", err)
	}
	cs, _ := db.GetChecksum("gone.md")
	if cs != "" {
		t.Error("document still indexed after delete")
	}
	links, _ := db.AllLinks()
	if len(links) != 0 {
		t.Errorf("outgoing links not removed: %v", links)
	}
}

func TestGetDocument(t *testing.T) {
	db := testDB(t)
	row := DocRow{
		Path:      "notes/draft.md",
		Route:     "/notes/draft",
		Title:     "Draft",
		Checksum:  "d1",
		Unlisted:  true,
		UpdatedAt: time.Now(),
	}
	_ = db.UpsertDocument(row, "wip", nil)

	got, err := db.GetDocument("notes/draft.md")
	if err != nil {
		t.Fatalf("GetDocument: %v", err)
	}
	if got == nil {
		t.Fatal("expected document")
	}
	if got.Route != "/notes/draft" || got.Title != "Draft" || !got.Unlisted {
		t.Errorf("row = %+v", got)
	}

	missing, err := db.GetDocument("nope.md")
	if err != nil {
		t.Fatalf("GetDocument missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing document, got %+v", missing)
	}
}

func TestReferences(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	_ = db.UpsertDocument(DocRow{Path: "a.md", Route: "/a", Checksum: "1", UpdatedAt: now}, "", []string{"/target"})
	_ = db.UpsertDocument(DocRow{Path: "b.md", Route: "/b", Checksum: "1", UpdatedAt: now}, "", []string{"/target", "/a"})

	refs, err := db.References("/target")
	if err != nil {
		t.Fatalf("References: %v", err)
	}
	if len(refs) != 2 || refs[0] != "a.md" || refs[1] != "b.md" {
		t.Errorf("refs = %v, want [a.md b.md]", refs)
	}
}

func TestListDocuments_Pagination(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	for _, p := range []string{"a.md", "b.md", "c.md"} {
		_ = db.UpsertDocument(DocRow{Path: p, Route: "/" + p, Checksum: "1", UpdatedAt: now}, "", nil)
	}
	rows, total, err := db.ListDocuments(2, 0, "path")
	if err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if len(rows) != 2 || rows[0].Path != "a.md" || rows[1].Path != "b.md" {
		t.Errorf("rows = %+v", rows)
	}
	rows, _, _ = db.ListDocuments(2, 2, "path")
	if len(rows) != 1 || rows[0].Path != "c.md" {
		t.Errorf("second page = %+v", rows)
	}
}

func TestSearch_Fallback(t *testing.T) {
	db := testDB(t)
	row := DocRow{Path: "motivation.md", Route: "/motivation", Title: "Motivation", Checksum: "m", UpdatedAt: time.Now()}
	_ = db.UpsertDocument(row, "Automated tests right after the manual check.", nil)

	results, err := db.Search("manual check", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Path != "motivation.md" {
		t.Errorf("results = %+v", results)
	}
}
