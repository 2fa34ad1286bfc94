package nav

// Doc is the minimal view of a document needed for navigation resolution.
type Doc struct {
	Path     string
	Unlisted bool
}

// ResolvedEntry is a navigation entry annotated with its resolution result.
// DocPath is empty for external links and for dangling entries.
type ResolvedEntry struct {
	Label    string `json:"label"`
	Link     string `json:"link"`
	DocPath  string `json:"doc_path,omitempty"`
	External bool   `json:"external,omitempty"`
}

// Dangling reports whether the entry should have resolved but did not.
func (e ResolvedEntry) Dangling() bool {
	return !e.External && e.DocPath == ""
}

// ResolvedGroup is a sidebar group with resolved items, in declaration order.
type ResolvedGroup struct {
	Text  string          `json:"text"`
	Items []ResolvedEntry `json:"items"`
}

// Navigation is the fully resolved navigation tree.
type Navigation struct {
	Nav     []ResolvedEntry `json:"nav"`
	Sidebar []ResolvedGroup `json:"sidebar"`
	Socials []Social        `json:"socials"`
}

// Resolve maps every nav and sidebar entry of the site configuration to a
// document. Declaration order is preserved exactly; resolving the same
// configuration twice yields an identical tree.
func Resolve(site Site, docs []Doc) Navigation {
	routes := Routes(docs)

	resolveOne := func(e Entry) ResolvedEntry {
		route, ok := CleanLink(e.Link, site.Base)
		if !ok {
			return ResolvedEntry{Label: e.Label, Link: e.Link, External: true}
		}
		return ResolvedEntry{Label: e.Label, Link: e.Link, DocPath: routes[route]}
	}

	out := Navigation{Socials: site.Socials}
	for _, e := range site.Nav {
		out.Nav = append(out.Nav, resolveOne(e))
	}
	for _, g := range site.Sidebar {
		rg := ResolvedGroup{Text: g.Text}
		for _, e := range g.Items {
			rg.Items = append(rg.Items, resolveOne(e))
		}
		out.Sidebar = append(out.Sidebar, rg)
	}
	return out
}

// Dangling returns every entry in the tree that failed to resolve.
func (n Navigation) Dangling() []ResolvedEntry {
	var out []ResolvedEntry
	for _, e := range n.Nav {
		if e.Dangling() {
			out = append(out, e)
		}
	}
	for _, g := range n.Sidebar {
		for _, e := range g.Items {
			if e.Dangling() {
				out = append(out, e)
			}
		}
	}
	return out
}

// Listed returns the set of document paths referenced by at least one
// resolved nav or sidebar entry.
func (n Navigation) Listed() map[string]struct{} {
	out := make(map[string]struct{})
	for _, e := range n.Nav {
		if e.DocPath != "" {
			out[e.DocPath] = struct{}{}
		}
	}
	for _, g := range n.Sidebar {
		for _, e := range g.Items {
			if e.DocPath != "" {
				out[e.DocPath] = struct{}{}
			}
		}
	}
	return out
}
