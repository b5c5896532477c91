package metadata

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
)

// GamelistDocument is the parsed form of a per-system gamelist.xml descriptor.
type GamelistDocument struct {
	Provider ProviderInfo
	Games    []GamelistEntry
}

// ProviderInfo describes metadata about the gamelist file creator/source.
type ProviderInfo struct {
	System   string
	Software string
	Database string
	Web      string
}

// GamelistEntry holds the fields of a single <game> element that the site
// builder cares about. Hidden is kept as the raw string so that only the
// literal value "true" marks a game hidden.
type GamelistEntry struct {
	Path        string   `xml:"path"`
	Name        string   `xml:"name"`
	Description string   `xml:"desc"`
	Image       string   `xml:"image"`
	Thumbnail   string   `xml:"thumbnail"`
	Video       string   `xml:"video"`
	Developer   string   `xml:"developer"`
	Publisher   string   `xml:"publisher"`
	Genres      []string `xml:"genre"`
	ReleaseDate string   `xml:"releasedate"`
	Rating      string   `xml:"rating"`
	Players     string   `xml:"players"`
	Hidden      string   `xml:"hidden"`
}

type providerXML struct {
	SystemUpper string `xml:"System"`
	SystemLower string `xml:"system"`
	Software    string `xml:"software"`
	Database    string `xml:"database"`
	Web         string `xml:"web"`
}

// ParseGamelistFile reads and parses a gamelist.xml descriptor. The root
// element may contain a single game element or a list of them.
func ParseGamelistFile(path string) (*GamelistDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gamelist %s: %w", path, err)
	}
	defer f.Close()

	var doc struct {
		Provider providerXML     `xml:"provider"`
		Games    []GamelistEntry `xml:"game"`
	}
	decoder := xml.NewDecoder(f)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode gamelist %s: %w", path, err)
	}

	for i := range doc.Games {
		entry := &doc.Games[i]
		entry.Path = strings.TrimSpace(entry.Path)
		entry.Name = strings.TrimSpace(entry.Name)
		entry.Description = strings.TrimSpace(entry.Description)
		entry.Image = strings.TrimSpace(entry.Image)
		entry.Thumbnail = strings.TrimSpace(entry.Thumbnail)
		entry.Video = strings.TrimSpace(entry.Video)
		entry.Developer = strings.TrimSpace(entry.Developer)
		entry.Publisher = strings.TrimSpace(entry.Publisher)
		entry.ReleaseDate = strings.TrimSpace(entry.ReleaseDate)
		entry.Rating = strings.TrimSpace(entry.Rating)
		entry.Players = strings.TrimSpace(entry.Players)
		entry.Hidden = strings.TrimSpace(entry.Hidden)
		for j := range entry.Genres {
			entry.Genres[j] = strings.TrimSpace(entry.Genres[j])
		}
	}

	systemValue := strings.TrimSpace(doc.Provider.SystemUpper)
	if systemValue == "" {
		systemValue = strings.TrimSpace(doc.Provider.SystemLower)
	}
	provider := ProviderInfo{
		System:   strings.ToLower(systemValue),
		Software: strings.TrimSpace(doc.Provider.Software),
		Database: strings.TrimSpace(doc.Provider.Database),
		Web:      strings.TrimSpace(doc.Provider.Web),
	}

	return &GamelistDocument{
		Provider: provider,
		Games:    doc.Games,
	}, nil
}
