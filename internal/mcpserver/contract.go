package mcpserver

// DocFormatContract describes the canonical document format.
// Exposed both as the get_doc_format tool and the twd://doc-format resource
// so agents can learn the structure before authoring or editing documents.
const DocFormatContract = `# Document Format Contract

Every document is a Markdown file with optional YAML frontmatter:

---
title: Page Title
description: One-line summary shown in listings and search results.
unlisted: true
---

# Page Title

Body content in standard Markdown.

## Rules

- Files use the .md extension and live under the content root.
- The route of a document is its path without the extension, prefixed
  with the site base path. index.md and README.md map to their
  directory route (site/guides/index.md serves /guides).
- title in frontmatter wins over the first # heading. If neither is
  present the file path is used.
- unlisted: true exempts a document from orphan detection. Use it for
  pages that are reached from outside the navigation (landing pages,
  redirect targets).
- Internal links are written as Markdown links to routes (/guides/intro)
  or relative document paths (./intro.md). Both are validated: a link
  whose target does not resolve to an existing document is reported as
  a broken link.
- External links (http://, https://, mailto:, protocol-relative //)
  are never validated.

## Navigation

Documents are surfaced through the site configuration: top navigation
entries and sidebar groups each pair a label with a link. Every link
must resolve to an existing document or the validation pass fails.
Documents not referenced by the navigation or by another document are
reported as orphans unless marked unlisted.
`
