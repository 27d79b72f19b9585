package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Backend turns a composed page into bytes.
type Backend interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, w io.Writer, page Page) error
}

// HTMLBackend renders pages as standalone HTML documents.
type HTMLBackend struct {
	Stylesheet string
	IconSprite string
}

func NewHTMLBackend() HTMLBackend {
	return HTMLBackend{
		Stylesheet: "/static/site.css",
		IconSprite: "/static/lucide.svg",
	}
}

func (HTMLBackend) Name() string        { return "html" }
func (HTMLBackend) ContentType() string { return "text/html; charset=utf-8" }

func (b HTMLBackend) Render(ctx context.Context, w io.Writer, page Page) error {
	return b.Document(page).Render(ctx, w)
}

// Document is the full page: head plus every section in order.
func (b HTMLBackend) Document(page Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
		hw.raw("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n<title>")
		hw.escaped(page.Title)
		hw.raw("</title>\n")
		if b.Stylesheet != "" {
			hw.raw("<link rel=\"stylesheet\"")
			hw.href(b.Stylesheet)
			hw.raw(">\n")
		}
		hw.raw("</head>\n<body>\n")
		if hw.err != nil {
			return hw.err
		}
		for _, s := range page.Sections {
			if err := b.Section(s).Render(ctx, w); err != nil {
				return err
			}
		}
		hw.raw("</body>\n</html>\n")
		return hw.err
	})
}

// Section renders one region on its own, usable as a fragment.
func (b HTMLBackend) Section(s Section) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		tag := "section"
		switch s.Kind {
		case SectionHeader:
			tag = "header"
		case SectionFooter:
			tag = "footer"
		}
		hw := &htmlWriter{w: w}
		hw.raw("<" + tag)
		if s.Anchor != "" {
			hw.attr("id", s.Anchor)
		}
		hw.attr("class", "section section-"+string(s.Kind))
		hw.attr("data-section", string(s.Kind))
		hw.raw(">\n")
		for _, n := range s.Nodes {
			b.node(hw, n)
		}
		hw.raw("</" + tag + ">\n")
		if hw.err != nil {
			return fmt.Errorf("render %s section: %w", s.Kind, hw.err)
		}
		return nil
	})
}

func (b HTMLBackend) node(hw *htmlWriter, n Node) {
	switch n.Kind {
	case KindHeading:
		level := min(max(n.Level, 1), 6)
		b.leaf(hw, "h"+strconv.Itoa(level), n)
	case KindParagraph:
		b.leaf(hw, "p", n)
	case KindText:
		b.leaf(hw, "span", n)
	case KindBadge:
		b.leaf(hw, "span", n)
	case KindItem:
		b.leaf(hw, "li", n)
	case KindQuote:
		b.leaf(hw, "blockquote", n)
	case KindIcon:
		b.glyph(hw, n.Icon)
	case KindLink:
		hw.raw("<a")
		hw.href(n.Href)
		b.commonAttrs(hw, n)
		if n.External {
			hw.raw(` target="_blank" rel="noreferrer"`)
		}
		hw.raw(">")
		b.glyph(hw, n.Icon)
		hw.escaped(n.Text)
		hw.raw("</a>")
	case KindList:
		b.container(hw, "ul", n)
	case KindCard, KindGroup:
		b.container(hw, "div", n)
	}
	hw.raw("\n")
}

func (b HTMLBackend) leaf(hw *htmlWriter, tag string, n Node) {
	hw.raw("<" + tag)
	b.commonAttrs(hw, n)
	hw.raw(">")
	b.glyph(hw, n.Icon)
	hw.escaped(n.Text)
	hw.raw("</" + tag + ">")
}

func (b HTMLBackend) container(hw *htmlWriter, tag string, n Node) {
	hw.raw("<" + tag)
	b.commonAttrs(hw, n)
	hw.raw(">\n")
	for _, child := range n.Children {
		b.node(hw, child)
	}
	hw.raw("</" + tag + ">")
}

func (HTMLBackend) commonAttrs(hw *htmlWriter, n Node) {
	if n.ID != "" {
		hw.attr("id", n.ID)
	}
	if class := classFor(n); class != "" {
		hw.attr("class", class)
	}
}

func (b HTMLBackend) glyph(hw *htmlWriter, i Icon) {
	if i == IconNone {
		return
	}
	hw.raw(`<svg class="icon" aria-hidden="true"><use`)
	hw.href(b.IconSprite + "#" + LucideSymbolID(LucideNameOrDefault(i)))
	hw.raw("></use></svg>")
}

func classFor(n Node) string {
	switch n.Kind {
	case KindBadge, KindCard:
		if n.Role == "" {
			return string(n.Kind)
		}
		return string(n.Kind) + " " + string(n.Kind) + "-" + n.Role
	}
	return n.Role
}

// htmlWriter keeps the first write error so rendering code can stay linear.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

func (hw *htmlWriter) escaped(s string) {
	hw.raw(templ.EscapeString(s))
}

func (hw *htmlWriter) attr(name, value string) {
	hw.raw(" " + name + `="`)
	hw.escaped(value)
	hw.raw(`"`)
}

func (hw *htmlWriter) href(u string) {
	hw.attr("href", string(templ.URL(u)))
}

// JSONBackend dumps the node tree.
type JSONBackend struct{}

func (JSONBackend) Name() string        { return "json" }
func (JSONBackend) ContentType() string { return "application/json; charset=utf-8" }

func (JSONBackend) Render(_ context.Context, w io.Writer, page Page) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(page); err != nil {
		return fmt.Errorf("encode page: %w", err)
	}
	return nil
}
