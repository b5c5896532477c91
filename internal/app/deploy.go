package app

import (
	"context"
	"errors"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/retroweb/internal/storage"
	"go.uber.org/zap"
)

// deployExtensions is the allowlist of files the deploy command uploads.
// Pages, styles and art only; ROMs and descriptor sources stay local.
var deployExtensions = map[string]struct{}{
	".html": {},
	".css":  {},
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
	".svg":  {},
	".mp4":  {},
	".webm": {},
}

// DeployCommand uploads a previously built site tree to the configured bucket.
type DeployCommand struct {
	dir     string
	cfgPath string
	prefix  string
	clean   bool
}

func NewDeployCommand() *DeployCommand {
	return &DeployCommand{}
}

func (c *DeployCommand) Name() string { return "deploy" }

func (c *DeployCommand) Desc() string {
	return "Upload the generated site to s3 compatible object storage"
}

func (c *DeployCommand) Init(f *pflag.FlagSet) {
	f.StringVar(&c.dir, "dir", "", "built site root directory")
	f.StringVar(&c.cfgPath, "config", "", "config file path, optional")
	f.StringVar(&c.prefix, "prefix", "", "key prefix inside the bucket")
	f.BoolVar(&c.clean, "clean", false, "clear the bucket before uploading")
}

func (c *DeployCommand) PreRun(ctx context.Context) error {
	if strings.TrimSpace(c.dir) == "" {
		return errors.New("deploy requires --dir")
	}
	logutil.GetLogger(ctx).Info("starting deploy",
		zap.String("dir", c.dir),
		zap.String("prefix", c.prefix),
		zap.Bool("clean", c.clean),
	)
	return nil
}

func (c *DeployCommand) Run(ctx context.Context) error {
	logger := logutil.GetLogger(ctx)

	cfg, err := loadConfig(c.cfgPath)
	if err != nil {
		return err
	}
	if err := cfg.ValidateDeploy(); err != nil {
		return err
	}

	client, err := storage.NewS3Client(ctx, cfg.S3)
	if err != nil {
		return err
	}

	if c.clean {
		if err := client.ClearBucket(ctx); err != nil {
			return err
		}
		logger.Info("bucket cleared")
	}

	uploaded := 0
	err = filepath.WalkDir(c.dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(d.Name()))
		if _, ok := deployExtensions[ext]; !ok {
			return nil
		}
		rel, err := filepath.Rel(c.dir, p)
		if err != nil {
			return err
		}
		key := path.Join(c.prefix, filepath.ToSlash(rel))
		if err := client.UploadFile(ctx, key, p, ""); err != nil {
			return err
		}
		uploaded++
		logger.Debug("uploaded", zap.String("key", key))
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("deploy completed", zap.Int("files", uploaded))
	return nil
}

func (c *DeployCommand) PostRun(ctx context.Context) error { return nil }

func init() {
	RegisterRunner("deploy", func() IRunner { return NewDeployCommand() })
}
