package models

import "time"

// Language is a target language a user studies. Word entries reference a
// language; translation entries do not.
type Language struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"-"`

	// Name is the display name chosen by the user, e.g. "German".
	Name string `json:"name"`

	// ISOCode is an optional short code ("de", "fr") used as a URL slug by
	// clients. When present it must be unique per owner; a duplicate is
	// reported as a conflict, never silently ignored.
	ISOCode string `json:"iso_code,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
