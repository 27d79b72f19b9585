package main

import (
	"maps"
	"slices"
)

// Profile describes the portfolio owner.
type Profile struct {
	Name         string            `json:"name"`
	Title        string            `json:"title"`
	Blurb        string            `json:"blurb"`
	Location     string            `json:"location"`
	Email        string            `json:"email"`
	Availability string            `json:"availability,omitempty"`
	Socials      map[string]string `json:"socials"`
	Skills       []string          `json:"skills"`
	CVPath       string            `json:"cv_path"`
}

// Project is a single card in the projects grid. Link may be a placeholder like "#".
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Link        string   `json:"link"`
}

// Achievement dates are free text, ranges included.
type Achievement struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Icon  Icon   `json:"icon"`
}

type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

// Offering is one entry of the "What I do" card.
type Offering struct {
	Icon  Icon   `json:"icon"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

type AboutCopy struct {
	Heading           string   `json:"heading"`
	Paragraphs        []string `json:"paragraphs"`
	HighlightsHeading string   `json:"highlights_heading"`
	Highlights        []string `json:"highlights"`
}

type ContactCopy struct {
	Heading            string   `json:"heading"`
	Invitation         string   `json:"invitation"`
	EngagementsHeading string   `json:"engagements_heading"`
	Engagements        []string `json:"engagements"`
}

type ProjectsCopy struct {
	Heading    string `json:"heading"`
	ViewAllURL string `json:"view_all_url"`
}

// ContentDocument is everything the page shows. It is built once at startup
// and handed to the composer; nothing mutates it afterwards.
type ContentDocument struct {
	Profile      Profile       `json:"profile"`
	Offerings    []Offering    `json:"offerings"`
	About        AboutCopy     `json:"about"`
	ProjectsCopy ProjectsCopy  `json:"projects_copy"`
	Projects     []Project     `json:"projects"`
	Achievements []Achievement `json:"achievements"`
	Testimonials []Testimonial `json:"testimonials"`
	Contact      ContactCopy   `json:"contact"`
}

// Clone returns a deep copy so callers can't reach the composer's slices or
// socials map.
func (d ContentDocument) Clone() ContentDocument {
	d.Profile.Socials = maps.Clone(d.Profile.Socials)
	d.Profile.Skills = slices.Clone(d.Profile.Skills)
	d.Offerings = slices.Clone(d.Offerings)
	d.About.Paragraphs = slices.Clone(d.About.Paragraphs)
	d.About.Highlights = slices.Clone(d.About.Highlights)
	d.Projects = slices.Clone(d.Projects)
	for i := range d.Projects {
		d.Projects[i].Tags = slices.Clone(d.Projects[i].Tags)
	}
	d.Achievements = slices.Clone(d.Achievements)
	d.Testimonials = slices.Clone(d.Testimonials)
	d.Contact.Engagements = slices.Clone(d.Contact.Engagements)
	return d
}
