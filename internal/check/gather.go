package check

import (
	"github.com/kevinccbsg/twd-principles/internal/nav"
	"github.com/kevinccbsg/twd-principles/internal/parser"
	"github.com/kevinccbsg/twd-principles/internal/storage"
)

// FromStore builds a validation Input by walking the content store
// directly, so the pass can run without a search index (the `check`
// command). Unreadable or unparseable files are skipped.
func FromStore(store storage.Provider, site nav.Site) (Input, error) {
	infos, err := store.List("")
	if err != nil {
		return Input{}, err
	}

	in := Input{Site: site}
	for _, info := range infos {
		data, err := store.Read(info.Path)
		if err != nil {
			continue
		}
		res, err := parser.Parse(data)
		if err != nil {
			continue
		}
		in.Docs = append(in.Docs, nav.Doc{Path: info.Path, Unlisted: res.Unlisted})
		for _, target := range res.Links {
			if route, ok := nav.ResolveRef(info.Path, target, site.Base); ok {
				in.Refs = append(in.Refs, Ref{Source: info.Path, Target: route})
			}
		}
	}
	return in, nil
}
