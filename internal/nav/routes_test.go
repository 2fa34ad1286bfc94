package nav

import "testing"

func TestRouteFor(t *testing.T) {
	cases := []struct {
		path, want string
	}{
		{"index.md", "/"},
		{"README.md", "/"},
		{"twd-manifesto.md", "/twd-manifesto"},
		{"guides/index.md", "/guides"},
		{"guides/express-tutorial.md", "/guides/express-tutorial"},
	}
	for _, c := range cases {
		if got := RouteFor(c.path); got != c.want {
			t.Errorf("RouteFor(%q) = %q, want %q", c.path, got, c.want)
		}
	}
}

func TestCleanLink(t *testing.T) {
	cases := []struct {
		link, base, want string
		ok               bool
	}{
		{"/twd-manifesto", "", "/twd-manifesto", true},
		{"/twd-manifesto/", "", "/twd-manifesto", true},
		{"/twd-manifesto.md", "", "/twd-manifesto", true},
		{"/twd-manifesto#goals", "", "/twd-manifesto", true},
		{"/guides/index", "", "/guides", true},
		{"/", "", "/", true},
		{"/docs/motivation", "/docs", "/motivation", true},
		{"/docs", "/docs", "/", true},
		// Base strips only on segment boundaries.
		{"/twd-manifesto", "/twd", "/twd-manifesto", true},
		{"/docsy/page", "/docs", "/docsy/page", true},
		{"motivation", "", "/motivation", true},
		{"https://github.com/kevinccbsg", "", "", false},
		{"//cdn.example.com/x", "", "", false},
		{"mailto:hi@example.com", "", "", false},
		{"#anchor-only", "", "", false},
	}
	for _, c := range cases {
		got, ok := CleanLink(c.link, c.base)
		if ok != c.ok || got != c.want {
			t.Errorf("CleanLink(%q, %q) = (%q, %v), want (%q, %v)", c.link, c.base, got, ok, c.want, c.ok)
		}
	}
}

func TestResolveRef_Relative(t *testing.T) {
	got, ok := ResolveRef("guides/express-tutorial.md", "../motivation.md", "")
	if !ok || got != "/motivation" {
		t.Errorf("got (%q, %v), want (/motivation, true)", got, ok)
	}
	got, ok = ResolveRef("guides/express-tutorial.md", "setup.md", "")
	if !ok || got != "/guides/setup" {
		t.Errorf("got (%q, %v), want (/guides/setup, true)", got, ok)
	}
}

func TestResolveRef_AbsoluteUsesBase(t *testing.T) {
	got, ok := ResolveRef("index.md", "/docs/motivation", "/docs")
	if !ok || got != "/motivation" {
		t.Errorf("got (%q, %v), want (/motivation, true)", got, ok)
	}
}

func TestRoutes_IndexWinsOverReadme(t *testing.T) {
	routes := Routes([]Doc{
		{Path: "guides/index.md"},
		{Path: "guides/README.md"},
	})
	if routes["/guides"] != "guides/index.md" {
		t.Errorf("routes[/guides] = %q, want guides/index.md", routes["/guides"])
	}
}

func TestRoutes_IndexSuffixSibling(t *testing.T) {
	// "reindex.md" must not be mistaken for an index file when it
	// collides with "reindex/index.md" on the /reindex route.
	routes := Routes([]Doc{
		{Path: "reindex.md"},
		{Path: "reindex/index.md"},
	})
	if routes["/reindex"] != "reindex/index.md" {
		t.Errorf("routes[/reindex] = %q, want reindex/index.md", routes["/reindex"])
	}
}
