package index

import (
	"log/slog"
	"time"

	"github.com/kevinccbsg/twd-principles/internal/checksum"
	"github.com/kevinccbsg/twd-principles/internal/nav"
	"github.com/kevinccbsg/twd-principles/internal/parser"
	"github.com/kevinccbsg/twd-principles/internal/storage"
)

// Sync walks the content root and brings the index up to date:
//   - new/changed documents are parsed and upserted
//   - documents removed from disk are deleted from the index
//
// base is the site base path, used to normalise in-document link targets.
func Sync(db *DB, store storage.Provider, base string, logger *slog.Logger) error {
	infos, err := store.List("")
	if err != nil {
		return err
	}

	checksums, err := db.AllChecksums()
	if err != nil {
		return err
	}

	disk := make(map[string]struct{}, len(infos))
	for _, info := range infos {
		disk[info.Path] = struct{}{}

		if checksums[info.Path] == info.Checksum {
			continue
		}

		data, err := store.Read(info.Path)
		if err != nil {
			logger.Warn("sync: read failed", slog.String("path", info.Path), slog.String("error", err.Error()))
			continue
		}
		if err := indexFile(db, info.Path, data, base); err != nil {
			logger.Warn("sync: index failed", slog.String("path", info.Path), slog.String("error", err.Error()))
		} else {
			logger.Debug("sync: indexed", slog.String("path", info.Path))
		}
	}

	// Remove stale entries.
	for p := range checksums {
		if _, ok := disk[p]; !ok {
			if err := db.DeleteDocument(p); err != nil {
				logger.Warn("sync: delete failed", slog.String("path", p), slog.String("error", err.Error()))
			} else {
				logger.Debug("sync: removed stale", slog.String("path", p))
			}
		}
	}

	return nil
}

// indexFile parses data and upserts it into the DB. In-document link targets
// are normalised to routes; external and fragment-only links are dropped.
func indexFile(db *DB, path string, data []byte, base string) error {
	res, err := parser.Parse(data)
	if err != nil {
		return err
	}

	var linkRoutes []string
	for _, target := range res.Links {
		if route, ok := nav.ResolveRef(path, target, base); ok {
			linkRoutes = append(linkRoutes, route)
		}
	}

	title := res.Title
	if title == "" {
		title = path
	}

	row := DocRow{
		Path:      path,
		Route:     nav.RouteFor(path),
		Title:     title,
		Checksum:  checksum.Sum(data),
		Unlisted:  res.Unlisted,
		UpdatedAt: time.Now(),
	}
	return db.UpsertDocument(row, res.Body, linkRoutes)
}
