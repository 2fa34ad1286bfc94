// Package docservice coordinates the content store, the document index,
// and navigation resolution for the preview server and the MCP server.
package docservice

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/kevinccbsg/twd-principles/internal/apperr"
	"github.com/kevinccbsg/twd-principles/internal/check"
	"github.com/kevinccbsg/twd-principles/internal/checksum"
	"github.com/kevinccbsg/twd-principles/internal/index"
	"github.com/kevinccbsg/twd-principles/internal/nav"
	"github.com/kevinccbsg/twd-principles/internal/parser"
	"github.com/kevinccbsg/twd-principles/internal/storage"
)

// DocDetail is the full representation of a document.
type DocDetail struct {
	Path        string         `json:"path"`
	Route       string         `json:"route"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Content     string         `json:"content"`
	Checksum    string         `json:"checksum"`
	Unlisted    bool           `json:"unlisted,omitempty"`
	Frontmatter map[string]any `json:"frontmatter,omitempty"`
	References  []string       `json:"references"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// DocListItem is a lightweight item in a list response.
type DocListItem struct {
	Path      string    `json:"path"`
	Route     string    `json:"route"`
	Title     string    `json:"title"`
	Checksum  string    `json:"checksum"`
	Unlisted  bool      `json:"unlisted,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Service coordinates storage, index, and navigation operations.
type Service struct {
	store storage.Provider
	db    *index.DB
	site  nav.Site
}

// NewService creates a new document service.
func NewService(store storage.Provider, db *index.DB, site nav.Site) *Service {
	return &Service{store: store, db: db, site: site}
}

// Site returns the declarative site configuration.
func (s *Service) Site() nav.Site {
	return s.site
}

// GetDocument reads a document from storage, parses it, and enriches it
// with the paths of documents referencing it.
func (s *Service) GetDocument(_ context.Context, path string) (*DocDetail, error) {
	data, err := s.store.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	res, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}
	route := nav.RouteFor(path)
	refs, err := s.db.References(route)
	if err != nil {
		return nil, err
	}
	title := res.Title
	if title == "" {
		title = path
	}
	return &DocDetail{
		Path:        path,
		Route:       route,
		Title:       title,
		Description: res.Description,
		Content:     string(data),
		Checksum:    checksum.Sum(data),
		Unlisted:    res.Unlisted,
		Frontmatter: res.Frontmatter,
		References:  nonNilSlice(refs),
		UpdatedAt:   time.Now(),
	}, nil
}

// ListDocuments returns paginated documents from the index.
func (s *Service) ListDocuments(_ context.Context, limit, offset int, sort string) ([]DocListItem, int, error) {
	rows, total, err := s.db.ListDocuments(limit, offset, sort)
	if err != nil {
		return nil, 0, err
	}
	items := make([]DocListItem, len(rows))
	for i, r := range rows {
		items[i] = DocListItem{
			Path:      r.Path,
			Route:     r.Route,
			Title:     r.Title,
			Checksum:  r.Checksum,
			Unlisted:  r.Unlisted,
			UpdatedAt: r.UpdatedAt,
		}
	}
	return items, total, nil
}

// Search delegates full-text search to the index.
func (s *Service) Search(_ context.Context, query string, limit int) ([]index.SearchResult, error) {
	return s.db.Search(query, limit)
}

// Navigation resolves the site navigation against the indexed documents.
func (s *Service) Navigation(_ context.Context) (nav.Navigation, error) {
	docs, err := s.indexedDocs()
	if err != nil {
		return nav.Navigation{}, err
	}
	return nav.Resolve(s.site, docs), nil
}

// Check runs the pre-build validation pass over the indexed documents.
func (s *Service) Check(_ context.Context) (check.Report, error) {
	docs, err := s.indexedDocs()
	if err != nil {
		return check.Report{}, err
	}
	links, err := s.db.AllLinks()
	if err != nil {
		return check.Report{}, err
	}
	refs := make([]check.Ref, len(links))
	for i, l := range links {
		refs[i] = check.Ref{Source: l.Source, Target: l.Target}
	}
	return check.Run(check.Input{Site: s.site, Docs: docs, Refs: refs}), nil
}

func (s *Service) indexedDocs() ([]nav.Doc, error) {
	rows, err := s.db.AllDocuments()
	if err != nil {
		return nil, err
	}
	docs := make([]nav.Doc, len(rows))
	for i, r := range rows {
		docs[i] = nav.Doc{Path: r.Path, Unlisted: r.Unlisted}
	}
	return docs, nil
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
