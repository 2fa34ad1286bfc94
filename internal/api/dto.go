package api

import (
	"github.com/kevinccbsg/twd-principles/internal/check"
	"github.com/kevinccbsg/twd-principles/internal/docservice"
)

// DocDetail is the full document response type (aliased from the domain layer).
type DocDetail = docservice.DocDetail

// DocListItem is a lightweight item in a list response (aliased from the domain layer).
type DocListItem = docservice.DocListItem

// DocListResponse wraps paginated document listings.
type DocListResponse struct {
	Documents []DocListItem `json:"documents"`
	Total     int           `json:"total"`
}

// SearchResult is a single search hit in the API response.
type SearchResult struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// SearchResponse wraps search results.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

// ValidateResponse wraps the pre-build validation report.
type ValidateResponse struct {
	Problems []check.Problem `json:"problems"`
	Checked  int             `json:"checked"`
	Errors   int             `json:"errors"`
	Warnings int             `json:"warnings"`
}
