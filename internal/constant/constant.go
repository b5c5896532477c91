package constant

const (
	// DefaultGamelistFile is the descriptor file expected inside every system directory.
	DefaultGamelistFile = "gamelist.xml"

	// ThumbnailHeight is the fixed height of derived thumbnails; width scales proportionally.
	ThumbnailHeight = 100

	// PlaceholderThumb is the fallback thumbnail reference, relative to a system directory.
	PlaceholderThumb = "../assets/placeholder.png"
)
