package main

import "time"

// SectionRenderer maps the content document to one page region. Render must
// be pure apart from the instant it is handed.
type SectionRenderer struct {
	Kind   SectionKind
	Render func(doc *ContentDocument, now time.Time) Section
}

// pageLayout is the fixed display order.
var pageLayout = []SectionRenderer{
	{SectionHeader, renderHeader},
	{SectionHero, renderHero},
	{SectionAbout, renderAbout},
	{SectionProjects, renderProjects},
	{SectionAchievements, renderAchievements},
	{SectionTestimonials, renderTestimonials},
	{SectionContact, renderContact},
	{SectionFooter, renderFooter},
}

// PageComposer assembles sections from an injected content document. It keeps
// its own copy, so the caller's value and anything returned by Content can be
// changed without affecting later renders.
type PageComposer struct {
	doc   ContentDocument
	now   func() time.Time
	title string
}

type ComposerOption func(*PageComposer)

// WithClock replaces time.Now. Only the footer reads it.
func WithClock(now func() time.Time) ComposerOption {
	return func(c *PageComposer) {
		c.now = now
	}
}

// WithTitle overrides the document title derived from the profile.
func WithTitle(title string) ComposerOption {
	return func(c *PageComposer) {
		if title != "" {
			c.title = title
		}
	}
}

func NewPageComposer(doc ContentDocument, opts ...ComposerOption) *PageComposer {
	c := &PageComposer{
		doc:   doc.Clone(),
		now:   time.Now,
		title: pageTitle(doc.Profile),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func pageTitle(p Profile) string {
	switch {
	case p.Name == "":
		return p.Title
	case p.Title == "":
		return p.Name
	}
	return p.Name + " | " + p.Title
}

// Content returns a copy of the document the composer renders.
func (c *PageComposer) Content() ContentDocument {
	return c.doc.Clone()
}

// Compose renders every section in layout order. The clock is read once so
// all sections see the same instant.
func (c *PageComposer) Compose() Page {
	now := c.now()
	sections := make([]Section, 0, len(pageLayout))
	for _, r := range pageLayout {
		sections = append(sections, r.Render(&c.doc, now))
	}
	return Page{Title: c.title, Sections: sections}
}

// Section renders a single region by kind.
func (c *PageComposer) Section(kind SectionKind) (Section, bool) {
	for _, r := range pageLayout {
		if r.Kind == kind {
			return r.Render(&c.doc, c.now()), true
		}
	}
	return Section{}, false
}

// SectionKinds lists the layout in order.
func SectionKinds() []SectionKind {
	kinds := make([]SectionKind, 0, len(pageLayout))
	for _, r := range pageLayout {
		kinds = append(kinds, r.Kind)
	}
	return kinds
}
