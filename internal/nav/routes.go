package nav

import (
	"path"
	"regexp"
	"strings"
)

// schemeRe matches URI schemes ("https:", "mailto:", ...).
var schemeRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)

// RouteFor derives the served route for a document path.
// "guides/twd.md" → "/guides/twd"; "index.md" and "README.md" serve the
// containing directory's route ("/" at the root).
func RouteFor(docPath string) string {
	p := strings.TrimSuffix(docPath, ".md")
	base := path.Base(p)
	if base == "index" || base == "README" {
		p = path.Dir(p)
		if p == "." {
			p = ""
		}
	}
	return "/" + strings.Trim(p, "/")
}

// Routes maps every document's route to its path. When index.md and
// README.md both exist in a directory, index.md wins.
func Routes(docs []Doc) map[string]string {
	out := make(map[string]string, len(docs))
	for _, d := range docs {
		r := RouteFor(d.Path)
		if prev, ok := out[r]; ok && path.Base(prev) == "index.md" {
			continue
		}
		out[r] = d.Path
	}
	return out
}

// IsExternal reports whether a link target leaves the site: it carries a
// scheme ("https://...", "mailto:...") or is protocol-relative ("//...").
func IsExternal(link string) bool {
	return strings.HasPrefix(link, "//") || schemeRe.MatchString(link)
}

// CleanLink normalises a site link to a route, stripping fragment, query,
// the configured base path, and a ".md" suffix. ok is false when the link
// is external or fragment-only and must not be resolved against the store.
func CleanLink(link, base string) (route string, ok bool) {
	if IsExternal(link) {
		return "", false
	}
	if i := strings.IndexByte(link, '#'); i >= 0 {
		link = link[:i]
	}
	if i := strings.IndexByte(link, '?'); i >= 0 {
		link = link[:i]
	}
	if link == "" {
		return "", false // fragment-only
	}
	// Strip the base only on a whole path segment: with base "/twd",
	// "/twd-manifesto" is a route outside the base, not "/-manifesto".
	if base != "" {
		switch {
		case link == base:
			link = "/"
		case strings.HasPrefix(link, base+"/"):
			link = strings.TrimPrefix(link, base)
		}
	}
	if !strings.HasPrefix(link, "/") {
		link = "/" + link
	}
	link = path.Clean(link)
	link = strings.TrimSuffix(link, ".md")
	if suffix := path.Base(link); suffix == "index" || suffix == "README" {
		link = path.Dir(link)
	}
	if link != "/" {
		link = strings.TrimSuffix(link, "/")
	}
	return link, true
}

// ResolveRef normalises an in-document link target relative to the source
// document. Site-absolute targets behave like config links; relative ones
// are joined against the source's directory.
func ResolveRef(sourcePath, target, base string) (route string, ok bool) {
	if IsExternal(target) {
		return "", false
	}
	if strings.HasPrefix(target, "/") {
		return CleanLink(target, base)
	}
	if i := strings.IndexByte(target, '#'); i >= 0 {
		target = target[:i]
	}
	if target == "" {
		return "", false
	}
	joined := path.Join("/", path.Dir(sourcePath), target)
	return CleanLink(joined, "")
}
