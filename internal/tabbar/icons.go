package tabbar

// Icon names the filled and outline icon for a route plus its label.
type Icon struct {
	Key        string
	OutlineKey string
	Label      string
}

// DefaultIcon is used for routes missing from a table.
var DefaultIcon = Icon{Key: "ellipse", OutlineKey: "ellipse-outline"}

// Icons maps route names to icons.
type Icons map[string]Icon

// IconFor returns the icon for a route name, falling back to DefaultIcon.
func (t Icons) IconFor(name string) Icon {
	if icon, ok := t[name]; ok {
		return icon
	}
	return DefaultIcon
}

// Variant returns the key to draw for the active or inactive state.
func (i Icon) Variant(active bool) string {
	if active || i.OutlineKey == "" {
		return i.Key
	}
	return i.OutlineKey
}

const defaultGlyph = "•"

var glyphs = map[string]string{
	"home":                        "■",
	"home-outline":                "□",
	"heart":                       "♥",
	"heart-outline":               "♡",
	"add":                         "+",
	"chatbubble-ellipses":         "◆",
	"chatbubble-ellipses-outline": "◇",
	"person":                      "●",
	"person-outline":              "○",
	"business":                    "▲",
	"business-outline":            "△",
	"people":                      "★",
	"people-outline":              "☆",
	"settings":                    "✦",
	"settings-outline":            "✧",
	"ellipse":                     "•",
	"ellipse-outline":             "◦",
}

// Glyph returns the terminal glyph for an icon key.
func Glyph(key string) string {
	if g, ok := glyphs[key]; ok {
		return g
	}
	return defaultGlyph
}

var userIcons = Icons{
	"index":    {Key: "home", OutlineKey: "home-outline", Label: "Home"},
	"saved":    {Key: "heart", OutlineKey: "heart-outline", Label: "Favorite"},
	"add":      {Key: "add", OutlineKey: "add", Label: "Add"},
	"messages": {Key: "chatbubble-ellipses", OutlineKey: "chatbubble-ellipses-outline", Label: "Chat"},
	"profile":  {Key: "person", OutlineKey: "person-outline", Label: "Profile"},
}

var adminIcons = Icons{
	"index":      {Key: "home", OutlineKey: "home-outline", Label: "Dashboard"},
	"properties": {Key: "business", OutlineKey: "business-outline", Label: "Properties"},
	"users":      {Key: "people", OutlineKey: "people-outline", Label: "Users"},
	"settings":   {Key: "settings", OutlineKey: "settings-outline", Label: "Settings"},
}
