package main

// NodeKind is the semantic role of a display node. Backends decide the markup.
type NodeKind string

const (
	KindHeading   NodeKind = "heading"
	KindParagraph NodeKind = "paragraph"
	KindText      NodeKind = "text"
	KindLink      NodeKind = "link"
	KindBadge     NodeKind = "badge"
	KindIcon      NodeKind = "icon"
	KindList      NodeKind = "list"
	KindItem      NodeKind = "item"
	KindCard      NodeKind = "card"
	KindGroup     NodeKind = "group"
	KindQuote     NodeKind = "quote"
)

// Node is one element of a rendered section. Role is a styling hint
// ("skill", "tag", "cta-primary", ...) that backends may use as a class.
type Node struct {
	Kind     NodeKind `json:"kind"`
	Text     string   `json:"text,omitempty"`
	Level    int      `json:"level,omitempty"`
	Href     string   `json:"href,omitempty"`
	External bool     `json:"external,omitempty"`
	Icon     Icon     `json:"icon,omitempty"`
	ID       string   `json:"id,omitempty"`
	Role     string   `json:"role,omitempty"`
	Children []Node   `json:"children,omitempty"`
}

// SectionKind identifies a page region.
type SectionKind string

const (
	SectionHeader       SectionKind = "header"
	SectionHero         SectionKind = "hero"
	SectionAbout        SectionKind = "about"
	SectionProjects     SectionKind = "projects"
	SectionAchievements SectionKind = "achievements"
	SectionTestimonials SectionKind = "testimonials"
	SectionContact      SectionKind = "contact"
	SectionFooter       SectionKind = "footer"
)

// Section is the output of one SectionRenderer. Anchor is the in-page id, if any.
type Section struct {
	Kind   SectionKind `json:"kind"`
	Anchor string      `json:"anchor,omitempty"`
	Nodes  []Node      `json:"nodes"`
}

// Page is the composed output, sections in display order.
type Page struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

func heading(level int, text string) Node {
	return Node{Kind: KindHeading, Level: level, Text: text}
}

func paragraph(text string) Node {
	return Node{Kind: KindParagraph, Text: text}
}

func text(s string) Node {
	return Node{Kind: KindText, Text: s}
}

func link(label, href string) Node {
	return Node{Kind: KindLink, Text: label, Href: href}
}

func externalLink(label, href string) Node {
	return Node{Kind: KindLink, Text: label, Href: href, External: true}
}

func badge(role, label string) Node {
	return Node{Kind: KindBadge, Role: role, Text: label}
}

func icon(i Icon) Node {
	return Node{Kind: KindIcon, Icon: i}
}

func group(role string, children ...Node) Node {
	return Node{Kind: KindGroup, Role: role, Children: children}
}

func card(role string, children ...Node) Node {
	return Node{Kind: KindCard, Role: role, Children: children}
}

// list always carries a non-nil children slice so empty lists still render.
func list(role string, items []string) Node {
	children := make([]Node, 0, len(items))
	for _, item := range items {
		children = append(children, Node{Kind: KindItem, Text: item})
	}
	return Node{Kind: KindList, Role: role, Children: children}
}

// withIcon prefixes a link with a glyph, the way buttons carry one.
func withIcon(n Node, i Icon) Node {
	n.Icon = i
	return n
}

func withRole(n Node, role string) Node {
	n.Role = role
	return n
}

func withID(n Node, id string) Node {
	n.ID = id
	return n
}
