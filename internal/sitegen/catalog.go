package sitegen

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/retroweb/internal/constant"
	"github.com/xxxsen/retroweb/internal/model"
	"github.com/xxxsen/retroweb/internal/render"
	"go.uber.org/zap"
)

//go:embed static
var staticFS embed.FS

type homePageData struct {
	Systems []model.System
}

// BuildCatalog walks the target root, processes every recognized system
// directory in sequence and assembles the home page. The systems lookup
// table gates which child directories qualify; everything else is skipped.
func BuildCatalog(ctx context.Context, r render.Renderer, root string, systems map[string]string) error {
	logger := logutil.GetLogger(ctx)

	if err := copyStaticAssets(root); err != nil {
		return err
	}

	children, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("read target root %s: %w", root, err)
	}

	found := make([]model.System, 0, len(children))
	for _, child := range children {
		if !child.IsDir() {
			continue
		}
		displayName, ok := systems[child.Name()]
		if !ok {
			continue
		}
		dir := filepath.Join(root, child.Name())
		f, err := os.Open(filepath.Join(dir, constant.DefaultGamelistFile))
		if err != nil {
			continue
		}
		f.Close()

		sys := model.System{
			ID:   child.Name(),
			Name: displayName,
			Logo: path.Join("assets", "logos", child.Name()+".png"),
			Dir:  dir,
		}
		logger.Info("processing system", zap.String("system", sys.ID), zap.String("name", sys.Name))
		if err := ProcessSystem(ctx, r, sys); err != nil {
			return err
		}
		found = append(found, sys)
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].Name < found[j].Name
	})

	page, err := r.Render("home", homePageData{Systems: found})
	if err != nil {
		return fmt.Errorf("render home page: %w", err)
	}
	dest := filepath.Join(root, "index.html")
	if err := os.WriteFile(dest, []byte(page), 0o644); err != nil {
		return fmt.Errorf("write home page %s: %w", dest, err)
	}

	logger.Info("catalog built", zap.Int("systems", len(found)))
	return nil
}

// copyStaticAssets unpacks the embedded style sheet and asset directory into
// the target root. Runs before system discovery so a rootful of unrecognized
// directories still ends up with a styled, empty home page.
func copyStaticAssets(root string) error {
	return fs.WalkDir(staticFS, "static", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(p, "static")
		rel = strings.TrimPrefix(rel, "/")
		dest := filepath.Join(root, filepath.FromSlash(rel))
		if d.IsDir() {
			if err := os.MkdirAll(dest, 0o755); err != nil {
				return fmt.Errorf("create asset dir %s: %w", dest, err)
			}
			return nil
		}
		data, err := staticFS.ReadFile(p)
		if err != nil {
			return fmt.Errorf("read embedded asset %s: %w", p, err)
		}
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return fmt.Errorf("write asset %s: %w", dest, err)
		}
		return nil
	})
}
