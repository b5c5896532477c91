package sitegen

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/retroweb/internal/constant"
	"github.com/xxxsen/retroweb/internal/model"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
)

// DeriveThumbnail resolves the thumbnail reference for a record. Missing or
// broken art never fails the build; the placeholder is substituted instead.
// A derived raster already present on disk is reused as-is, so re-runs skip
// image work even when the source art changed since.
func DeriveThumbnail(ctx context.Context, systemDir string, rec *model.GameRecord) string {
	logger := logutil.GetLogger(ctx)

	src := rec.Art
	if src == "" {
		src = rec.Image
	}
	if src == "" {
		logger.Info("game has no art, using placeholder", zap.String("path", rec.Path))
		return constant.PlaceholderThumb
	}

	srcPath := filepath.Join(systemDir, filepath.FromSlash(src))
	if _, err := os.Stat(srcPath); err != nil {
		logger.Warn("thumbnail source not readable, using placeholder",
			zap.String("src", src),
			zap.Error(err),
		)
		return constant.PlaceholderThumb
	}

	derived := fmt.Sprintf("%s-%d.png", rec.Stem, constant.ThumbnailHeight)
	destPath := filepath.Join(systemDir, derived)
	if _, err := os.Stat(destPath); err == nil {
		return derived
	}

	if err := resizeToFile(srcPath, destPath, constant.ThumbnailHeight); err != nil {
		logger.Warn("derive thumbnail failed, using placeholder",
			zap.String("src", src),
			zap.Error(err),
		)
		return constant.PlaceholderThumb
	}
	return derived
}

func resizeToFile(srcPath, destPath string, height int) error {
	f, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open source %s: %w", srcPath, err)
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("decode source %s: %w", srcPath, err)
	}

	bounds := img.Bounds()
	if bounds.Dy() <= 0 {
		return fmt.Errorf("source %s has no height", srcPath)
	}
	width := bounds.Dx() * height / bounds.Dy()
	if width < 1 {
		width = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("create thumbnail %s: %w", destPath, err)
	}
	if err := png.Encode(out, dst); err != nil {
		out.Close()
		os.Remove(destPath)
		return fmt.Errorf("encode thumbnail %s: %w", destPath, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(destPath)
		return fmt.Errorf("close thumbnail %s: %w", destPath, err)
	}
	return nil
}
