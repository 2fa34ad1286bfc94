package nav

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func introSite() Site {
	return Site{
		Title:       "Test While Developing",
		Description: "A pragmatic testing philosophy",
		Nav: []Entry{
			{Label: "Home", Link: "/"},
			{Label: "GitHub", Link: "https://github.com/kevinccbsg/twd-principles"},
		},
		Sidebar: []Group{
			{
				Text: "Introduction",
				Items: []Entry{
					{Label: "TWD Manifesto", Link: "/twd-manifesto"},
					{Label: "Rethinking Testing in Web Development", Link: "/motivation"},
				},
			},
		},
		Socials: []Social{{Icon: "github", Link: "https://github.com/kevinccbsg"}},
	}
}

func introDocs() []Doc {
	return []Doc{
		{Path: "index.md"},
		{Path: "twd-manifesto.md"},
		{Path: "motivation.md"},
	}
}

func TestResolve_SidebarOrderAndTargets(t *testing.T) {
	n := Resolve(introSite(), introDocs())

	if len(n.Sidebar) != 1 {
		t.Fatalf("sidebar groups = %d, want 1", len(n.Sidebar))
	}
	want := []ResolvedEntry{
		{Label: "TWD Manifesto", Link: "/twd-manifesto", DocPath: "twd-manifesto.md"},
		{Label: "Rethinking Testing in Web Development", Link: "/motivation", DocPath: "motivation.md"},
	}
	if diff := cmp.Diff(want, n.Sidebar[0].Items); diff != "" {
		t.Errorf("sidebar items mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_ExternalEntriesNotDangling(t *testing.T) {
	n := Resolve(introSite(), introDocs())
	if len(n.Nav) != 2 {
		t.Fatalf("nav entries = %d, want 2", len(n.Nav))
	}
	if n.Nav[0].DocPath != "index.md" {
		t.Errorf("home entry resolved to %q, want index.md", n.Nav[0].DocPath)
	}
	if !n.Nav[1].External {
		t.Error("GitHub entry should be external")
	}
	if d := n.Dangling(); len(d) != 0 {
		t.Errorf("unexpected dangling entries: %v", d)
	}
}

func TestResolve_RemovedDocumentIsDangling(t *testing.T) {
	// Deleting a referenced document without touching the configuration
	// must surface as a dangling entry.
	docs := []Doc{{Path: "index.md"}, {Path: "twd-manifesto.md"}}
	n := Resolve(introSite(), docs)
	d := n.Dangling()
	if len(d) != 1 {
		t.Fatalf("dangling = %v, want exactly one entry", d)
	}
	if d[0].Link != "/motivation" {
		t.Errorf("dangling link = %q, want /motivation", d[0].Link)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	site := introSite()
	docs := introDocs()
	first := Resolve(site, docs)
	second := Resolve(site, docs)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated resolution differs (-first +second):\n%s", diff)
	}
}

func TestResolve_BasePath(t *testing.T) {
	site := introSite()
	site.Base = "/twd"
	site.Sidebar[0].Items[0].Link = "/twd/twd-manifesto"
	n := Resolve(site, introDocs())
	if got := n.Sidebar[0].Items[0].DocPath; got != "twd-manifesto.md" {
		t.Errorf("base-prefixed link resolved to %q, want twd-manifesto.md", got)
	}
}

func TestListed(t *testing.T) {
	n := Resolve(introSite(), introDocs())
	listed := n.Listed()
	for _, p := range []string{"index.md", "twd-manifesto.md", "motivation.md"} {
		if _, ok := listed[p]; !ok {
			t.Errorf("%s should be listed", p)
		}
	}
}
