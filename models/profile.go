package models

// Profile holds per-user preferences. A row is created lazily on first
// update; readers fall back to defaults when no row exists.
type Profile struct {
	UserID int64 `json:"-"`

	Username       string `json:"username,omitempty"`
	NativeLanguage string `json:"native_language,omitempty"`

	// Theme is the stored theme preference ("light", "dark", "system").
	// Rendering is a client concern; the server only persists the choice.
	Theme string `json:"theme,omitempty"`

	// SortPreference is the word-list ordering applied when a listing
	// request does not specify one explicitly.
	SortPreference SortOrder `json:"sort_preference,omitempty"`
}

// DefaultProfile returns the preferences used before a user has saved any.
func DefaultProfile(userID int64) Profile {
	return Profile{
		UserID:         userID,
		Theme:          "system",
		SortPreference: SortDateDesc,
	}
}
