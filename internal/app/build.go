package app

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/pflag"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/retroweb/internal/render"
	"github.com/xxxsen/retroweb/internal/sitegen"
	"go.uber.org/zap"
)

// BuildCommand generates the static site inside a gamelist directory tree.
type BuildCommand struct {
	dir     string
	cfgPath string
}

func NewBuildCommand() *BuildCommand {
	return &BuildCommand{}
}

func (c *BuildCommand) Name() string { return "build" }

func (c *BuildCommand) Desc() string {
	return "Generate the static html site for a gamelist directory tree"
}

func (c *BuildCommand) Init(f *pflag.FlagSet) {
	f.StringVar(&c.dir, "dir", "", "target root directory, one subdirectory per system")
	f.StringVar(&c.cfgPath, "config", "", "config file path, optional")
}

func (c *BuildCommand) PreRun(ctx context.Context) error {
	if strings.TrimSpace(c.dir) == "" {
		return errors.New("build requires --dir")
	}
	logutil.GetLogger(ctx).Info("starting build", zap.String("dir", c.dir))
	return nil
}

func (c *BuildCommand) Run(ctx context.Context) error {
	cfg, err := loadConfig(c.cfgPath)
	if err != nil {
		return err
	}

	renderer, err := render.NewHTMLRenderer()
	if err != nil {
		return err
	}

	return sitegen.BuildCatalog(ctx, renderer, c.dir, cfg.Systems)
}

func (c *BuildCommand) PostRun(ctx context.Context) error { return nil }

func init() {
	RegisterRunner("build", func() IRunner { return NewBuildCommand() })
}
