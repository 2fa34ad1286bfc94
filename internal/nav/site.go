// Package nav implements the declarative site navigation model and its
// resolution against the content store.
package nav

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Site is the declarative site configuration: identity fields plus the
// ordered navigation structures the renderer consumes.
type Site struct {
	Title       string  `yaml:"title" json:"title"`
	Description string  `yaml:"description" json:"description"`
	Base        string  `yaml:"base" json:"base,omitempty"`
	Nav         []Entry `yaml:"nav" json:"nav"`
	Sidebar     []Group `yaml:"sidebar" json:"sidebar"`
	Socials     []Social `yaml:"socials" json:"socials"`
}

// Entry is a labeled link to a document route.
type Entry struct {
	Label string `yaml:"label" json:"label"`
	Link  string `yaml:"link" json:"link"`
}

// Group is an ordered sequence of entries under a heading.
// Declaration order is display order.
type Group struct {
	Text  string  `yaml:"text" json:"text"`
	Items []Entry `yaml:"items" json:"items"`
}

// Social is an icon-identified external link.
type Social struct {
	Icon string `yaml:"icon" json:"icon"`
	Link string `yaml:"link" json:"link"`
}

// Validate validates the site configuration and normalises the base path.
func (s *Site) Validate() error {
	// Normalise base: "" and "/" both mean the site is served from the root.
	s.Base = strings.TrimSuffix(s.Base, "/")
	if s.Base != "" && !strings.HasPrefix(s.Base, "/") {
		s.Base = "/" + s.Base
	}

	if err := validation.ValidateStruct(s,
		validation.Field(&s.Title, validation.Required),
		validation.Field(&s.Description, validation.Required),
	); err != nil {
		return err
	}
	for _, e := range s.Nav {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	for _, g := range s.Sidebar {
		if err := g.Validate(); err != nil {
			return err
		}
	}
	for _, so := range s.Socials {
		if err := so.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate validates a navigation entry.
func (e Entry) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Label, validation.Required),
		validation.Field(&e.Link, validation.Required),
	)
}

// Validate validates a sidebar group and its items.
func (g Group) Validate() error {
	if err := validation.ValidateStruct(&g,
		validation.Field(&g.Text, validation.Required),
	); err != nil {
		return err
	}
	for _, e := range g.Items {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate validates a social link. Icon identifiers are renderer-defined,
// so only presence is checked.
func (s Social) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Icon, validation.Required),
		validation.Field(&s.Link, validation.Required),
	)
}
