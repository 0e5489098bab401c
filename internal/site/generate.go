package site

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Stats summarises one generation run.
type Stats struct {
	Pages  int
	Static int
}

// Generate writes the whole site into cfg.OutputDir: static assets, one
// index.html per page, 404.html, sitemap.xml and robots.txt. The output
// directory is emptied first.
func (s *Site) Generate(ctx context.Context) (Stats, error) {
	outputDir := s.cfg.OutputDir
	if outputDir == "" {
		return Stats{}, errors.New("output directory is not configured")
	}
	log := s.logger.With(zap.String("output_dir", outputDir))

	if err := os.RemoveAll(outputDir); err != nil {
		return Stats{}, fmt.Errorf("failed to remove output directory '%s': %w", outputDir, err)
	}
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return Stats{}, fmt.Errorf("failed to create output directory '%s': %w", outputDir, err)
	}

	var stats Stats
	if s.cfg.StaticDir != "" {
		if _, err := os.Stat(s.cfg.StaticDir); err == nil {
			n, err := copyDirContents(s.cfg.StaticDir, outputDir)
			if err != nil {
				return Stats{}, fmt.Errorf("failed to copy static assets: %w", err)
			}
			stats.Static = n
			log.Debug("static assets copied", zap.String("static_dir", s.cfg.StaticDir), zap.Int("files", n))
		} else {
			log.Debug("static directory not found, skipping copy", zap.String("static_dir", s.cfg.StaticDir))
		}
	}

	pages := s.Pages()

	workers := s.cfg.Workers
	if workers < 1 {
		workers = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var written atomic.Int64
	for _, page := range pages {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := s.writePage(filepath.Join(outputDir, pageFile(page.Path)), page); err != nil {
				return err
			}
			written.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}
	stats.Pages = int(written.Load())

	if err := s.writePage(filepath.Join(outputDir, "404.html"), s.NotFound()); err != nil {
		return Stats{}, err
	}
	if err := writeFile(filepath.Join(outputDir, "sitemap.xml"), func(w io.Writer) error {
		return s.WriteSitemap(w, pages)
	}); err != nil {
		return Stats{}, err
	}
	if err := writeFile(filepath.Join(outputDir, "robots.txt"), s.WriteRobots); err != nil {
		return Stats{}, err
	}

	log.Info("site generated", zap.Int("pages", stats.Pages), zap.Int("static_files", stats.Static))
	return stats, nil
}

// pageFile maps a site path to the file serving it, "/a/b" to "a/b/index.html".
func pageFile(path string) string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return "index.html"
	}
	return filepath.Join(filepath.FromSlash(trimmed), "index.html")
}

func (s *Site) writePage(dst string, page Page) error {
	var buf bytes.Buffer
	if err := s.Render(&buf, page); err != nil {
		return fmt.Errorf("page '%s': %w", page.Path, err)
	}
	return writeFile(dst, func(w io.Writer) error {
		_, err := buf.WriteTo(w)
		return err
	})
}

func writeFile(dst string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(dst), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory for '%s': %w", dst, err)
	}
	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create output file '%s': %w", dst, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write '%s': %w", dst, err)
	}
	return f.Close()
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc      string `xml:"loc"`
	LastMod  string `xml:"lastmod,omitempty"`
	Priority string `xml:"priority,omitempty"`
}

func priority(layout string) string {
	switch layout {
	case tplHome:
		return "1.0"
	case tplServices, tplLocations, tplService:
		return "0.9"
	case tplCombined, tplLocation:
		return "0.8"
	default:
		return "0.6"
	}
}

// WriteSitemap writes an XML sitemap listing pages by canonical URL.
func (s *Site) WriteSitemap(w io.Writer, pages []Page) error {
	set := urlSet{XMLNS: sitemapNS, URLs: make([]sitemapURL, 0, len(pages))}
	for _, p := range pages {
		u := sitemapURL{Loc: s.cfg.CanonicalURL(p.Path), Priority: priority(p.Layout)}
		if p.Layout == tplPost && !p.View.Post.Date.IsZero() {
			u.LastMod = p.View.Post.Date.Format("2006-01-02")
		}
		set.URLs = append(set.URLs, u)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteRobots writes a robots.txt allowing everything and naming the sitemap.
func (s *Site) WriteRobots(w io.Writer) error {
	_, err := fmt.Fprintf(w, "User-agent: *\nAllow: /\n\nSitemap: %s\n", s.cfg.CanonicalURL("/sitemap.xml"))
	return err
}

// copyDirContents recursively copies the contents of src into dst and reports
// how many files were copied.
func copyDirContents(src, dst string) (int, error) {
	var files int
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}
		dstPath := filepath.Join(dst, relPath)

		if d.IsDir() {
			if err := os.MkdirAll(dstPath, os.ModePerm); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dstPath, err)
			}
			return nil
		}
		if err := copyFile(path, dstPath); err != nil {
			return err
		}
		files++
		return nil
	})
	return files, err
}

// copyFile copies srcFile to dstFile, keeping its permissions.
func copyFile(srcFile, dstFile string) error {
	srcF, err := os.Open(srcFile)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", srcFile, err)
	}
	defer srcF.Close()

	info, err := srcF.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat source file %s: %w", srcFile, err)
	}

	dstF, err := os.OpenFile(dstFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dstFile, err)
	}
	if _, err := io.Copy(dstF, srcF); err != nil {
		dstF.Close()
		return fmt.Errorf("failed to copy data from %s to %s: %w", srcFile, dstFile, err)
	}
	return dstF.Close()
}
