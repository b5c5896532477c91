package sitegen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/retroweb/internal/constant"
	"github.com/xxxsen/retroweb/internal/metadata"
	"github.com/xxxsen/retroweb/internal/model"
	"github.com/xxxsen/retroweb/internal/render"
	"go.uber.org/zap"
)

type gamePageData struct {
	System model.System
	Game   model.GameRecord
}

type systemPageData struct {
	System model.System
	Games  []model.GameRecord
}

// ProcessSystem builds all pages for one system directory: a detail page per
// game (hidden ones included, reachable by direct link only) followed by the
// system index listing visible games sorted by display name.
func ProcessSystem(ctx context.Context, r render.Renderer, sys model.System) error {
	logger := logutil.GetLogger(ctx).With(zap.String("system", sys.ID))

	doc, err := metadata.ParseGamelistFile(filepath.Join(sys.Dir, constant.DefaultGamelistFile))
	if err != nil {
		return err
	}

	entries := DedupeEntries(doc.Games)
	records := make([]model.GameRecord, 0, len(entries))
	for _, entry := range entries {
		rec, err := NormalizeEntry(sys.Dir, entry)
		if err != nil {
			logger.Error("cannot normalize game entry", zap.String("raw_path", entry.Path), zap.Error(err))
			return err
		}
		rec.Thumb = DeriveThumbnail(ctx, sys.Dir, &rec)

		page, err := r.Render("game", gamePageData{System: sys, Game: rec})
		if err != nil {
			return fmt.Errorf("render game page %s/%s: %w", sys.ID, rec.Stem, err)
		}
		dest := filepath.Join(sys.Dir, rec.Stem+".html")
		if err := os.WriteFile(dest, []byte(page), 0o644); err != nil {
			return fmt.Errorf("write game page %s: %w", dest, err)
		}
		records = append(records, rec)
	}

	visible := make([]model.GameRecord, 0, len(records))
	for _, rec := range records {
		if !rec.Hidden {
			visible = append(visible, rec)
		}
	}
	sort.Slice(visible, func(i, j int) bool {
		return visible[i].Name < visible[j].Name
	})

	page, err := r.Render("system", systemPageData{System: sys, Games: visible})
	if err != nil {
		return fmt.Errorf("render system index %s: %w", sys.ID, err)
	}
	dest := filepath.Join(sys.Dir, "index.html")
	if err := os.WriteFile(dest, []byte(page), 0o644); err != nil {
		return fmt.Errorf("write system index %s: %w", dest, err)
	}

	logger.Info("system processed",
		zap.Int("games", len(records)),
		zap.Int("visible", len(visible)),
	)
	return nil
}
