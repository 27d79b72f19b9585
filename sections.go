package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
)

// navLinks are the header anchors. Each one must match an id emitted
// somewhere on the page.
var navLinks = []struct{ Label, Href string }{
	{"About", "#about"},
	{"Projects", "#projects"},
	{"Achievements", "#achievements"},
	{"Contact", "#contact"},
	{"CV", "#cv"},
}

func mailto(email string) string {
	return "mailto:" + email
}

func renderHeader(doc *ContentDocument, _ time.Time) Section {
	p := doc.Profile
	nav := make([]Node, 0, len(navLinks))
	for _, l := range navLinks {
		nav = append(nav, link(l.Label, l.Href))
	}
	return Section{
		Kind: SectionHeader,
		Nodes: []Node{
			group("brand", icon(IconTerminal), withRole(text(p.Name), "identity")),
			group("nav", nav...),
			withRole(withIcon(link("Contact", mailto(p.Email)), IconMail), "contact"),
		},
	}
}

func renderHero(doc *ContentDocument, _ time.Time) Section {
	p := doc.Profile

	intro := make([]Node, 0, 6)
	if p.Availability != "" {
		intro = append(intro, badge("availability", p.Availability))
	}
	intro = append(intro, heading(1, p.Title), paragraph(p.Blurb))

	meta := group("meta")
	if p.Location != "" {
		meta.Children = append(meta.Children, withIcon(text(p.Location), IconMapPin))
	}
	for _, name := range slices.Sorted(maps.Keys(p.Socials)) {
		platform := platformFor(name)
		meta.Children = append(meta.Children, withIcon(externalLink(platform.Label, p.Socials[name]), platform.Icon))
	}

	skills := group("skills")
	for _, s := range p.Skills {
		skills.Children = append(skills.Children, badge("skill", s))
	}

	cta := group("cta",
		withRole(link("Start a project", "#contact"), "cta-primary"),
		withRole(link("See projects", "#projects"), "cta-secondary"),
	)
	intro = append(intro, meta, skills, cta)

	offerings := card("what-i-do", heading(3, "What I do"))
	for _, o := range doc.Offerings {
		offerings.Children = append(offerings.Children, group("offering",
			icon(o.Icon),
			withRole(text(o.Title), "title"),
			paragraph(o.Text),
		))
	}

	return Section{
		Kind:  SectionHero,
		Nodes: []Node{group("intro", intro...), offerings},
	}
}

func renderAbout(doc *ContentDocument, _ time.Time) Section {
	a := doc.About
	body := group("body", heading(2, a.Heading))
	for _, p := range a.Paragraphs {
		body.Children = append(body.Children, paragraph(p))
	}
	return Section{
		Kind:   SectionAbout,
		Anchor: "about",
		Nodes: []Node{
			body,
			group("highlights", heading(3, a.HighlightsHeading), list("highlights", a.Highlights)),
		},
	}
}

func renderProjects(doc *ContentDocument, _ time.Time) Section {
	head := group("section-head", heading(2, doc.ProjectsCopy.Heading))
	if u := doc.ProjectsCopy.ViewAllURL; u != "" {
		viewAll := externalLink("View all", u)
		// In-page placeholders stay in the same tab.
		viewAll.External = !strings.HasPrefix(u, "#")
		head.Children = append(head.Children, withIcon(viewAll, IconExternalLink))
	}

	cards := make([]Node, 0, len(doc.Projects))
	for _, p := range doc.Projects {
		tags := group("tags")
		for _, t := range p.Tags {
			tags.Children = append(tags.Children, badge("tag", t))
		}
		cards = append(cards, card("project",
			heading(3, p.Title),
			paragraph(p.Description),
			tags,
			withIcon(externalLink("Case study", p.Link), IconExternalLink),
		))
	}

	return Section{
		Kind:   SectionProjects,
		Anchor: "projects",
		Nodes:  []Node{head, {Kind: KindGroup, Role: "grid", Children: cards}},
	}
}

func renderAchievements(doc *ContentDocument, _ time.Time) Section {
	items := make([]Node, 0, len(doc.Achievements))
	for _, a := range doc.Achievements {
		items = append(items, group("achievement",
			icon(a.Icon),
			withRole(text(a.Title), "title"),
			withRole(text(a.Date), "date"),
		))
	}
	return Section{
		Kind:   SectionAchievements,
		Anchor: "achievements",
		Nodes:  []Node{heading(2, "Achievements"), {Kind: KindGroup, Role: "grid", Children: items}},
	}
}

func renderTestimonials(doc *ContentDocument, _ time.Time) Section {
	cards := make([]Node, 0, len(doc.Testimonials))
	for _, t := range doc.Testimonials {
		cards = append(cards, card("testimonial",
			Node{Kind: KindQuote, Text: "“" + t.Quote + "”"},
			withRole(paragraph("— "+t.Author), "attribution"),
		))
	}
	return Section{
		Kind:  SectionTestimonials,
		Nodes: []Node{{Kind: KindGroup, Role: "grid", Children: cards}},
	}
}

func renderContact(doc *ContentDocument, _ time.Time) Section {
	c := doc.Contact
	cta := group("cta", withRole(link("Email me", mailto(doc.Profile.Email)), "cta-primary"))
	if url, ok := doc.Profile.Socials["linkedin"]; ok {
		cta.Children = append(cta.Children, withRole(externalLink("Connect on LinkedIn", url), "cta-secondary"))
	}
	return Section{
		Kind:   SectionContact,
		Anchor: "contact",
		Nodes: []Node{
			group("body", heading(2, c.Heading), paragraph(c.Invitation), cta),
			group("engagements", withRole(text(c.EngagementsHeading), "title"), list("engagements", c.Engagements)),
		},
	}
}

func renderFooter(doc *ContentDocument, now time.Time) Section {
	p := doc.Profile
	return Section{
		Kind: SectionFooter,
		Nodes: []Node{
			withRole(text(fmt.Sprintf("© %d %s. All rights reserved.", now.Year(), p.Name)), "copyright"),
			withID(withIcon(link("Download CV", p.CVPath), IconBriefcase), "cv"),
		},
	}
}
