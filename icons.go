package main

import "fmt"

// Icon names a glyph without saying how it is drawn. The HTML backend maps
// each one to a Lucide sprite symbol.
type Icon uint8

const (
	IconNone Icon = iota
	IconTerminal
	IconMail
	IconMapPin
	IconGitHub
	IconLinkedIn
	IconLink
	IconExternalLink
	IconAward
	IconBriefcase
	IconRocket
	IconStar
	IconCalendar
)

const lucideSymbolPrefix = "lucide-"

var lucideIconNames = map[Icon]string{
	IconTerminal:     "terminal",
	IconMail:         "mail",
	IconMapPin:       "map-pin",
	IconGitHub:       "github",
	IconLinkedIn:     "linkedin",
	IconLink:         "link",
	IconExternalLink: "external-link",
	IconAward:        "award",
	IconBriefcase:    "briefcase",
	IconRocket:       "rocket",
	IconStar:         "star",
	IconCalendar:     "calendar",
}

// LucideName returns the Lucide icon name for an icon.
func LucideName(icon Icon) (string, bool) {
	name, ok := lucideIconNames[icon]
	return name, ok
}

// LucideNameOrDefault provides a stable Lucide name even when the icon is unknown.
func LucideNameOrDefault(icon Icon) string {
	if name, ok := lucideIconNames[icon]; ok {
		return name
	}
	return "sparkle"
}

// LucideSymbolID returns the sprite symbol ID for a Lucide icon name.
func LucideSymbolID(name string) string {
	return lucideSymbolPrefix + name
}

func (i Icon) String() string {
	if i == IconNone {
		return ""
	}
	return LucideNameOrDefault(i)
}

func (i Icon) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Icon) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*i = IconNone
		return nil
	}
	for icon, name := range lucideIconNames {
		if name == string(text) {
			*i = icon
			return nil
		}
	}
	return fmt.Errorf("unknown icon %q", text)
}

type socialPlatform struct {
	Label string
	Icon  Icon
}

var socialPlatforms = map[string]socialPlatform{
	"github":   {Label: "GitHub", Icon: IconGitHub},
	"linkedin": {Label: "LinkedIn", Icon: IconLinkedIn},
}

// platformFor falls back to the raw key and a generic link glyph.
func platformFor(name string) socialPlatform {
	if p, ok := socialPlatforms[name]; ok {
		return p
	}
	return socialPlatform{Label: name, Icon: IconLink}
}
