package main

import (
	"time"
)

func fixedClock(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.June, 1, 12, 0, 0, 0, time.UTC)
	}
}

func minimalDoc() ContentDocument {
	return ContentDocument{
		Profile: Profile{
			Name:   "X",
			Email:  "a@b.com",
			CVPath: "/my_cv.pdf",
		},
	}
}

func collect(nodes []Node, match func(Node) bool) []Node {
	var out []Node
	for _, n := range nodes {
		if match(n) {
			out = append(out, n)
		}
		out = append(out, collect(n.Children, match)...)
	}
	return out
}

func byRole(role string) func(Node) bool {
	return func(n Node) bool { return n.Role == role }
}

func byKind(kind NodeKind) func(Node) bool {
	return func(n Node) bool { return n.Kind == kind }
}

func byText(s string) func(Node) bool {
	return func(n Node) bool { return n.Text == s }
}
