package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rapidresponse/leadsite/internal/config"
	"github.com/rapidresponse/leadsite/internal/site"
)

var (
	buildOutput  string
	buildWorkers int
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the static site into the output directory",
	Long: `The build command loads the service and location catalog, reads blog posts
from the content directory, renders every page (including one page per
service and suburb pair) through the layouts, copies static assets, and
writes the site with a sitemap.xml and robots.txt into the output directory
(default './public/').`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("output") {
			appConfig.OutputDir = buildOutput
		}
		if cmd.Flags().Changed("workers") {
			appConfig.Workers = buildWorkers
		}
		return runBuild(cmd.Context(), appConfig, logger)
	},
}

// runBuild loads the site described by cfg and generates it.
func runBuild(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	logger.Info("starting build",
		zap.String("output_dir", cfg.OutputDir),
		zap.String("base_url", cfg.BaseURL),
	)

	s, err := site.Load(cfg, logger)
	if err != nil {
		return err
	}
	stats, err := s.Generate(ctx)
	if err != nil {
		return err
	}

	logger.Info("build completed",
		zap.Int("pages", stats.Pages),
		zap.Int("posts", s.Posts().Len()),
		zap.Int("static_files", stats.Static),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output directory (overrides config)")
	buildCmd.Flags().IntVarP(&buildWorkers, "workers", "w", 0, "pages rendered in parallel (overrides config)")
	rootCmd.AddCommand(buildCmd)
}
