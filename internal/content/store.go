// Package content loads blog posts from a directory of structured records and
// exposes them read-only.
package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/rapidresponse/leadsite/internal/catalog"
	"github.com/rapidresponse/leadsite/internal/model"
)

// Store is the Content Store. It is immutable after LoadDir returns and safe
// for concurrent reads.
type Store struct {
	posts []model.BlogPost
	index map[string]int
}

// NewStore builds a Store from already-loaded posts, ordering them newest
// first. Posts whose slug is not a valid path segment, and later posts with a
// repeated slug, are dropped.
func NewStore(posts []model.BlogPost) *Store {
	s := &Store{index: make(map[string]int, len(posts))}
	for _, p := range posts {
		if catalog.ValidateURLSlug(p.Slug) != nil {
			continue
		}
		if _, dup := s.index[p.Slug]; dup {
			continue
		}
		s.index[p.Slug] = len(s.posts)
		s.posts = append(s.posts, p)
	}

	sort.SliceStable(s.posts, func(i, j int) bool {
		a, b := s.posts[i], s.posts[j]
		if a.Date.IsZero() != b.Date.IsZero() {
			return !a.Date.IsZero()
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.Slug < b.Slug
	})
	for i, p := range s.posts {
		s.index[p.Slug] = i
	}
	return s
}

// LoadDir reads every *.json and *.md record directly inside dir. A missing
// directory yields an empty store. Records that cannot be read or decoded,
// and files whose name is not a valid slug, are logged and skipped.
func LoadDir(dir string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("content directory not found, no posts loaded", zap.String("dir", dir))
			return NewStore(nil), nil
		}
		return nil, fmt.Errorf("failed to read content directory '%s': %w", dir, err)
	}

	var posts []model.BlogPost
	seen := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".json" && ext != ".md" && ext != ".markdown" {
			continue
		}

		path := filepath.Join(dir, name)
		slug := slugFromFilename(name)
		if err := catalog.ValidateURLSlug(slug); err != nil {
			logger.Warn("skipping post with unusable file name", zap.String("path", path), zap.Error(err))
			continue
		}
		if prev, dup := seen[slug]; dup {
			logger.Warn("duplicate post slug, keeping first record",
				zap.String("slug", slug), zap.String("kept", prev), zap.String("skipped", path))
			continue
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("skipping unreadable post record", zap.String("path", path), zap.Error(err))
			continue
		}

		var rec record
		if ext == ".json" {
			rec, err = decodeJSON(raw)
			if err != nil {
				logger.Warn("skipping malformed post record", zap.String("path", path), zap.Error(err))
				continue
			}
		} else if rec, err = decodeMarkdown(raw); err != nil {
			logger.Warn("could not parse front matter, treating as pure markdown", zap.String("path", path), zap.Error(err))
		}

		post, err := toPost(slug, path, rec)
		if err != nil {
			logger.Warn("post date ignored", zap.String("path", path), zap.Error(err))
		}

		seen[slug] = path
		posts = append(posts, post)
	}

	logger.Debug("content loaded", zap.String("dir", dir), zap.Int("posts", len(posts)))
	return NewStore(posts), nil
}

// All returns every post, most recent first. Posts without a date sort last.
func (s *Store) All() []model.BlogPost {
	return append([]model.BlogPost(nil), s.posts...)
}

// Get returns the post with the given slug, reporting false when absent.
func (s *Store) Get(slug string) (model.BlogPost, bool) {
	i, ok := s.index[slug]
	if !ok {
		return model.BlogPost{}, false
	}
	return s.posts[i], true
}

// Slugs returns the slug of every post, in the same order as All.
func (s *Store) Slugs() []string {
	out := make([]string, len(s.posts))
	for i, p := range s.posts {
		out[i] = p.Slug
	}
	return out
}

// Related returns up to n other posts, most recent first.
func (s *Store) Related(slug string, n int) []model.BlogPost {
	n = max(n, 0)
	out := make([]model.BlogPost, 0, n)
	for _, p := range s.posts {
		if len(out) == n {
			break
		}
		if p.Slug != slug {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) Len() int { return len(s.posts) }
