package models

// TagIcons is the fixed set of icon identifiers a tag may use. The icon
// picker is driven by this list instead of enumerating a UI icon library at
// runtime; unknown identifiers are rejected at write time and absent
// metadata falls back to DefaultTagIcon at render time.
var TagIcons = []string{
	"tag", "star", "heart", "book", "bookmark", "flag",
	"fire", "leaf", "moon", "sun", "globe", "pencil",
	"lightbulb", "music", "coffee", "home",
}

// DefaultTagIcon is rendered for tag names that have no stored metadata.
const DefaultTagIcon = "tag"

// DefaultTagColorClass is the fallback color class for undecorated tags.
const DefaultTagColorClass = "gray"

// ValidTagIcon reports whether icon is a member of [TagIcons].
func ValidTagIcon(icon string) bool {
	for _, known := range TagIcons {
		if icon == known {
			return true
		}
	}
	return false
}

// TagMetadata is optional per-owner decoration (icon, color class) for a tag
// name. Tag names themselves live only as strings inside entries; metadata
// is created, edited and deleted independently and may not exist for a tag
// currently in use.
type TagMetadata struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"-"`

	Name       string `json:"name"`
	Icon       string `json:"icon"`
	ColorClass string `json:"color_class"`
}
