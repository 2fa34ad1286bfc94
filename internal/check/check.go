// Package check implements the pre-build validation pass over the site
// configuration and content store: dangling navigation links, broken
// in-document links, and orphaned documents.
package check

import (
	"github.com/kevinccbsg/twd-principles/internal/nav"
)

// Problem kinds.
const (
	KindDanglingNavLink = "dangling-nav-link"
	KindBrokenDocLink   = "broken-doc-link"
	KindOrphanDocument  = "orphan-document"
)

// Severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Ref is a normalised in-document link: Source is the document path,
// Target the route it points at.
type Ref struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Input is everything the validation pass needs.
type Input struct {
	Site nav.Site
	Docs []nav.Doc
	Refs []Ref
}

// Problem is a single finding.
type Problem struct {
	Severity string `json:"severity"`
	Kind     string `json:"kind"`
	Path     string `json:"path,omitempty"`  // document the problem lives in
	Link     string `json:"link,omitempty"`  // offending link target
	Label    string `json:"label,omitempty"` // navigation entry label
	Detail   string `json:"detail"`
}

// Report is the full validation result.
type Report struct {
	Problems []Problem `json:"problems"`
	Checked  int       `json:"checked"` // number of documents examined
}

// HasErrors reports whether any error-severity problem was found.
func (r Report) HasErrors() bool {
	for _, p := range r.Problems {
		if p.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Counts returns the number of errors and warnings.
func (r Report) Counts() (errors, warnings int) {
	for _, p := range r.Problems {
		if p.Severity == SeverityError {
			errors++
		} else {
			warnings++
		}
	}
	return
}

// Run executes the validation pass. Findings are ordered: dangling
// navigation entries first (declaration order), then broken document
// links, then orphans.
func Run(in Input) Report {
	report := Report{Checked: len(in.Docs)}
	routes := nav.Routes(in.Docs)
	resolved := nav.Resolve(in.Site, in.Docs)

	// 1. Navigation entries must resolve to an existing document.
	for _, e := range resolved.Dangling() {
		report.Problems = append(report.Problems, Problem{
			Severity: SeverityError,
			Kind:     KindDanglingNavLink,
			Link:     e.Link,
			Label:    e.Label,
			Detail:   "navigation entry " + quoted(e.Label) + " points to " + e.Link + " but no document serves that route",
		})
	}

	// 2. In-document links must resolve to an existing document.
	for _, ref := range in.Refs {
		if _, ok := routes[ref.Target]; ok {
			continue
		}
		report.Problems = append(report.Problems, Problem{
			Severity: SeverityError,
			Kind:     KindBrokenDocLink,
			Path:     ref.Source,
			Link:     ref.Target,
			Detail:   ref.Source + " links to " + ref.Target + " but no document serves that route",
		})
	}

	// 3. Every document should be reachable from navigation or from
	// another document, unless marked unlisted.
	listed := resolved.Listed()
	referenced := make(map[string]struct{}, len(in.Refs))
	for _, ref := range in.Refs {
		if p, ok := routes[ref.Target]; ok && p != ref.Source {
			referenced[p] = struct{}{}
		}
	}
	for _, d := range in.Docs {
		if d.Unlisted {
			continue
		}
		if _, ok := listed[d.Path]; ok {
			continue
		}
		if _, ok := referenced[d.Path]; ok {
			continue
		}
		report.Problems = append(report.Problems, Problem{
			Severity: SeverityWarning,
			Kind:     KindOrphanDocument,
			Path:     d.Path,
			Detail:   d.Path + " is not referenced by any navigation entry or document; mark it unlisted if intentional",
		})
	}

	return report
}

func quoted(s string) string {
	return "\"" + s + "\""
}
