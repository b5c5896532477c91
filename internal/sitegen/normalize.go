package sitegen

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xxxsen/retroweb/internal/metadata"
	"github.com/xxxsen/retroweb/internal/model"
)

// DedupeEntries removes entries whose exact path string occurred again later
// in the list. The last occurrence wins and keeps its original position, so
// a duplicate submission further down a descriptor overrides an earlier one.
func DedupeEntries(entries []metadata.GamelistEntry) []metadata.GamelistEntry {
	last := make(map[string]int, len(entries))
	for i, e := range entries {
		last[e.Path] = i
	}
	out := make([]metadata.GamelistEntry, 0, len(last))
	for i, e := range entries {
		if last[e.Path] == i {
			out = append(out, e)
		}
	}
	return out
}

// NormalizeEntry builds the normalized record for one deduplicated gamelist
// entry. It is a pure transform over the entry and the owning system
// directory; the only error is a fatal stem sanitization failure.
func NormalizeEntry(systemDir string, e metadata.GamelistEntry) (model.GameRecord, error) {
	cleaned := cleanRelPath(e.Path)

	name := e.Name
	if name == "" {
		name = filepath.Base(filepath.Join(systemDir, cleaned))
	}

	stem, err := Sanitize(cleaned)
	if err != nil {
		return model.GameRecord{}, fmt.Errorf("stem for %q: %w", e.Path, err)
	}

	rec := model.GameRecord{
		Name:        name,
		Path:        cleaned,
		Stem:        stem,
		Description: e.Description,
		Art:         cleanRelPath(e.Thumbnail),
		Developer:   e.Developer,
		Publisher:   e.Publisher,
		Genres:      e.Genres,
		ReleaseDate: e.ReleaseDate,
		Rating:      e.Rating,
		Players:     e.Players,
		Hidden:      e.Hidden == "true",
	}

	if e.Image != "" {
		rec.Image = cleanRelPath(e.Image)
		rec.ImageURL = EncodePath(rec.Image)
	}
	if e.Video != "" {
		rec.Video = cleanRelPath(e.Video)
		rec.VideoURL = EncodePath(rec.Video)
	}
	return rec, nil
}

// cleanRelPath strips a single leading "./" from a descriptor path.
func cleanRelPath(p string) string {
	return strings.TrimPrefix(p, "./")
}
