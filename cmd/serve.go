package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rapidresponse/leadsite/internal/leads"
	"github.com/rapidresponse/leadsite/internal/server"
	"github.com/rapidresponse/leadsite/internal/site"
)

const reloadDebounce = 500 * time.Millisecond

var (
	serverPort int
	noWatch    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the site locally and reloads it on changes",
	Long: `The serve command loads the site and serves every page dynamically, including
the contact form, which forwards submissions to the configured lead endpoint.
It watches the content, layouts and static directories and the catalog file,
and reloads the site when they change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		s, err := site.Load(appConfig, logger)
		if err != nil {
			return fmt.Errorf("initial load failed: %w", err)
		}

		srv := server.New(s, server.Options{
			Leads:         newLeadClient(),
			RatePerMinute: appConfig.Leads.RatePerMinute,
			Burst:         appConfig.Leads.Burst,
			StaticDir:     appConfig.StaticDir,
			NoCache:       true,
			Logger:        logger,
		})

		if !noWatch {
			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("failed to create file watcher: %w", err)
			}
			defer watcher.Close()

			watchPaths(watcher, appConfig.ContentDir, appConfig.LayoutsDir, appConfig.StaticDir)
			if appConfig.CatalogFile != "" {
				if err := watcher.Add(appConfig.CatalogFile); err != nil {
					logger.Warn("failed to watch catalog file", zap.String("file", appConfig.CatalogFile), zap.Error(err))
				}
			}
			go watchLoop(ctx, watcher, func() {
				next, err := site.Load(appConfig, logger)
				if err != nil {
					logger.Error("reload failed, keeping previous site", zap.Error(err))
					return
				}
				srv.Reload(next)
			})
		}

		httpServer := &http.Server{
			Addr:         fmt.Sprintf(":%d", serverPort),
			Handler:      srv,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  2 * time.Minute,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("serving site", zap.String("addr", "http://localhost"+httpServer.Addr))
			if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return fmt.Errorf("server listen failed: %w", err)
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", zap.Error(err))
			return err
		}
		logger.Info("server stopped")
		return nil
	},
}

// newLeadClient builds the lead client from config. Without an endpoint the
// server still runs and reports submissions as unavailable.
func newLeadClient() leads.Submitter {
	client, err := leads.NewClient(leads.ClientConfig{
		Endpoint:   appConfig.Leads.Endpoint,
		BusinessID: appConfig.Leads.BusinessID,
		Source:     appConfig.Leads.Source,
		Timeout:    appConfig.Leads.Timeout,
		Logger:     logger.Named("leads"),
	})
	if err != nil {
		logger.Warn("lead submissions disabled", zap.Error(err))
		return nil
	}
	return client
}

// watchPaths adds every directory under each root. Missing roots are skipped.
func watchPaths(watcher *fsnotify.Watcher, roots ...string) {
	for _, root := range roots {
		if root == "" {
			continue
		}
		if _, err := os.Stat(root); err != nil {
			logger.Debug("not watching missing directory", zap.String("dir", root))
			continue
		}
		err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				logger.Warn("error walking directory", zap.String("path", path), zap.Error(err))
				return nil
			}
			if d.IsDir() {
				if err := watcher.Add(path); err != nil {
					logger.Warn("failed to watch directory", zap.String("dir", path), zap.Error(err))
				}
			}
			return nil
		})
		if err != nil {
			logger.Warn("error during initial directory walk", zap.String("dir", root), zap.Error(err))
		}
	}
}

// watchLoop calls reload once changes have settled for reloadDebounce.
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, reload func()) {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("change detected", zap.String("path", event.Name), zap.String("op", event.Op.String()))

			// New subdirectories are not watched automatically.
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := watcher.Add(event.Name); err != nil {
					logger.Warn("failed to watch new directory", zap.String("dir", event.Name), zap.Error(err))
				}
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(reloadDebounce, reload)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("watcher error", zap.Error(err))
		}
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func init() {
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 1313, "port to serve the site on")
	serveCmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not reload the site when files change")
	rootCmd.AddCommand(serveCmd)
}
