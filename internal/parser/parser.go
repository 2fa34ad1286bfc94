// Package parser extracts frontmatter, links, and titles from Markdown documents.
package parser

import (
	"bytes"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Inline Markdown links: [text](target), [text](target "title").
// Group 1 captures a leading "!" so image embeds can be skipped.
var mdLinkRe = regexp.MustCompile(`(!?)\[[^\]]*\]\(\s*(<[^>]*>|[^)\s]+)(?:\s+"[^"]*")?\s*\)`)

// Result holds the output of parsing a Markdown document.
type Result struct {
	Frontmatter map[string]interface{}
	Body        string
	Links       []string
	Title       string
	Description string
	Unlisted    bool
}

// Parse extracts frontmatter, body, and link targets from raw Markdown bytes.
func Parse(data []byte) (*Result, error) {
	fm, body, err := splitFrontmatter(data)
	if err != nil {
		return nil, err
	}

	return &Result{
		Frontmatter: fm,
		Body:        body,
		Links:       extractLinks(body),
		Title:       deriveTitle(fm, body),
		Description: fmString(fm, "description"),
		Unlisted:    fmBool(fm, "unlisted"),
	}, nil
}

// splitFrontmatter separates YAML frontmatter (between leading --- delimiters)
// from the Markdown body. If no frontmatter is found the entire content is body.
func splitFrontmatter(data []byte) (map[string]interface{}, string, error) {
	const delim = "---"
	trimmed := bytes.TrimLeft(data, "\n\r")

	if !bytes.HasPrefix(trimmed, []byte(delim)) {
		return nil, string(data), nil
	}

	// Find end delimiter.
	rest := trimmed[len(delim):]
	idx := bytes.Index(rest, []byte("\n"+delim))
	if idx < 0 {
		// No closing delimiter — treat everything as body.
		return nil, string(data), nil
	}

	yamlBlock := rest[:idx]
	// Body starts after closing delimiter line.
	afterDelim := rest[idx+1+len(delim):]
	body := strings.TrimLeft(string(afterDelim), "\n\r")

	var fm map[string]interface{}
	if err := yaml.Unmarshal(yamlBlock, &fm); err != nil {
		// Invalid YAML — return body only, no error.
		return nil, string(data), nil
	}

	return fm, body, nil
}

// extractLinks returns deduplicated inline link targets from the body.
// Fenced code blocks are ignored so tutorial snippets containing
// link-shaped text do not produce false targets. Image embeds are skipped.
func extractLinks(body string) []string {
	matches := mdLinkRe.FindAllStringSubmatch(stripFences(body), -1)
	seen := make(map[string]struct{}, len(matches))
	var out []string
	for _, m := range matches {
		if m[1] == "!" {
			continue
		}
		target := strings.TrimSpace(m[2])
		// Angle-bracket form: [text](<target with spaces>).
		target = strings.TrimSuffix(strings.TrimPrefix(target, "<"), ">")
		if target == "" {
			continue
		}
		if _, ok := seen[target]; ok {
			continue
		}
		seen[target] = struct{}{}
		out = append(out, target)
	}
	return out
}

// stripFences drops the contents of fenced code blocks (``` or ~~~).
func stripFences(body string) string {
	var b strings.Builder
	inFence := false
	var fence string
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case !inFence && (strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")):
			inFence = true
			fence = trimmed[:3]
		case inFence && strings.HasPrefix(trimmed, fence):
			inFence = false
		case !inFence:
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// deriveTitle returns the frontmatter "title" if present, otherwise the first
// H1 heading, otherwise empty string.
func deriveTitle(fm map[string]interface{}, body string) string {
	if s := fmString(fm, "title"); s != "" {
		return s
	}
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(trimmed[2:])
		}
	}
	return ""
}

func fmString(fm map[string]interface{}, key string) string {
	if fm == nil {
		return ""
	}
	if v, ok := fm[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func fmBool(fm map[string]interface{}, key string) bool {
	if fm == nil {
		return false
	}
	if v, ok := fm[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}
