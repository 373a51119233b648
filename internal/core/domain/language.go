package domain

// Language is one entry in the heroes page's language menu.
type Language struct {
	// Name is the human-readable language name (e.g. "Deutsch").
	Name string `json:"name"`

	// Tag is the query parameter the site expects (e.g. "german").
	// The empty tag is the site default, English.
	Tag string `json:"tag"`
}
