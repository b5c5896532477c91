package model

// System describes one emulated platform directory inside the site root.
type System struct {
	ID   string
	Name string
	Logo string
	Dir  string
}

// GameRecord is the normalized view of one gamelist entry, ready for page generation.
type GameRecord struct {
	Name        string
	Path        string
	Stem        string
	Description string

	Image    string
	ImageURL string
	Video    string
	VideoURL string

	// Art is the explicit thumbnail source from the descriptor, if any.
	Art string
	// Thumb is the resolved thumbnail reference, either a derived raster
	// relative to the system directory or the placeholder.
	Thumb string

	Developer   string
	Publisher   string
	Genres      []string
	ReleaseDate string
	Rating      string
	Players     string

	Hidden bool
}
