package sitegen

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xxxsen/retroweb/internal/constant"
	"github.com/xxxsen/retroweb/internal/model"
)

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create png: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
}

func TestDeriveThumbnailNoArt(t *testing.T) {
	dir := t.TempDir()
	rec := model.GameRecord{Path: "rom.zip", Stem: "rom.zip"}

	ref := DeriveThumbnail(context.Background(), dir, &rec)
	assert.Equal(t, constant.PlaceholderThumb, ref)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	assert.Empty(t, entries, "no file may be written without source art")
}

func TestDeriveThumbnailMissingSource(t *testing.T) {
	dir := t.TempDir()
	rec := model.GameRecord{Path: "rom.zip", Stem: "rom.zip", Image: "media/rom.png"}

	ref := DeriveThumbnail(context.Background(), dir, &rec)
	assert.Equal(t, constant.PlaceholderThumb, ref)
}

func TestDeriveThumbnailResizesProportionally(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "media", "rom.png"), 400, 200)
	rec := model.GameRecord{Path: "rom.zip", Stem: "rom.zip", Image: "media/rom.png"}

	ref := DeriveThumbnail(context.Background(), dir, &rec)
	assert.Equal(t, "rom.zip-100.png", ref)

	f, err := os.Open(filepath.Join(dir, ref))
	if err != nil {
		t.Fatalf("open derived thumbnail: %v", err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode derived thumbnail: %v", err)
	}
	assert.Equal(t, 100, cfg.Height)
	assert.Equal(t, 200, cfg.Width)
}

func TestDeriveThumbnailPrefersExplicitArt(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "media", "thumb.png"), 50, 50)
	rec := model.GameRecord{
		Path:  "rom.zip",
		Stem:  "rom.zip",
		Art:   "media/thumb.png",
		Image: "media/does-not-exist.png",
	}

	ref := DeriveThumbnail(context.Background(), dir, &rec)
	assert.Equal(t, "rom.zip-100.png", ref)
}

func TestDeriveThumbnailCacheShortCircuits(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "media", "rom.png"), 400, 200)
	cached := []byte("pre-existing bytes, not even a png")
	if err := os.WriteFile(filepath.Join(dir, "rom.zip-100.png"), cached, 0o644); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	rec := model.GameRecord{Path: "rom.zip", Stem: "rom.zip", Image: "media/rom.png"}
	ref := DeriveThumbnail(context.Background(), dir, &rec)
	assert.Equal(t, "rom.zip-100.png", ref)

	data, err := os.ReadFile(filepath.Join(dir, "rom.zip-100.png"))
	if err != nil {
		t.Fatalf("read cached thumbnail: %v", err)
	}
	assert.Equal(t, cached, data, "existing thumbnail must never be re-derived")
}

func TestDeriveThumbnailBrokenSource(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "media"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "media", "rom.png"), []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write broken source: %v", err)
	}

	rec := model.GameRecord{Path: "rom.zip", Stem: "rom.zip", Image: "media/rom.png"}
	ref := DeriveThumbnail(context.Background(), dir, &rec)
	assert.Equal(t, constant.PlaceholderThumb, ref)

	_, err := os.Stat(filepath.Join(dir, "rom.zip-100.png"))
	assert.True(t, os.IsNotExist(err), "failed derivation must not leave a cache file")
}
