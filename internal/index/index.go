package index

// DocumentIndex defines the interface for document indexing operations.
// Consumers should depend on this interface rather than the concrete *DB type
// to facilitate testing with mocks.
type DocumentIndex interface {
	UpsertDocument(d DocRow, body string, linkRoutes []string) error
	DeleteDocument(path string) error
	GetDocument(path string) (*DocRow, error)
	GetChecksum(path string) (string, error)
	AllChecksums() (map[string]string, error)
	AllDocuments() ([]DocRow, error)
	AllLinks() ([]LinkRow, error)
	ListDocuments(limit, offset int, sort string) ([]DocRow, int, error)
	References(route string) ([]string, error)
	Search(query string, limit int) ([]SearchResult, error)
	Close() error
}

// Verify *DB satisfies DocumentIndex at compile time.
var _ DocumentIndex = (*DB)(nil)
