package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rapidresponse/leadsite/internal/model"
)

// record is the on-disk shape of a post. JSON records carry the body in
// Content; markdown records carry it after the front matter.
type record struct {
	Title           string   `json:"title" yaml:"title"`
	Excerpt         string   `json:"excerpt" yaml:"excerpt"`
	Content         string   `json:"content" yaml:"content"`
	Date            string   `json:"date" yaml:"date"`
	Author          string   `json:"author" yaml:"author"`
	FeaturedImage   string   `json:"featuredImage" yaml:"featuredImage"`
	Images          []string `json:"images" yaml:"images"`
	Keywords        []string `json:"keywords" yaml:"keywords"`
	MetaDescription string   `json:"metaDescription" yaml:"metaDescription"`
}

var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// slugFromFilename derives the record key from a file name.
func slugFromFilename(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// titleFromSlug turns "fix-a-leaky-tap" into "Fix A Leaky Tap".
func titleFromSlug(slug string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(strings.ReplaceAll(slug, "-", " "), "_", " "))
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	for _, format := range dateFormats {
		if t, err := time.Parse(format, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("could not parse date %q; use YYYY-MM-DD or RFC3339", value)
}

func decodeJSON(raw []byte) (record, error) {
	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return record{}, err
	}
	return rec, nil
}

// decodeMarkdown reads optional front matter followed by a markdown body.
func decodeMarkdown(raw []byte) (rec record, warn error) {
	body, err := frontmatter.Parse(bytes.NewReader(raw), &rec)
	if err != nil {
		// Treat the whole file as markdown, as a post without front matter.
		return record{Content: string(raw)}, fmt.Errorf("front matter: %w", err)
	}
	if trimmed := strings.TrimSpace(string(body)); trimmed != "" {
		rec.Content = string(body)
	}
	return rec, nil
}

// toPost converts a decoded record into a BlogPost keyed by slug. A date that
// cannot be parsed leaves Date zero and is reported as a warning.
func toPost(slug, path string, rec record) (model.BlogPost, error) {
	date, dateErr := parseDate(rec.Date)

	title := strings.TrimSpace(rec.Title)
	if title == "" {
		title = titleFromSlug(slug)
	}

	return model.BlogPost{
		Slug:            slug,
		Title:           title,
		Excerpt:         strings.TrimSpace(rec.Excerpt),
		Content:         rec.Content,
		Date:            date,
		Author:          rec.Author,
		FeaturedImage:   rec.FeaturedImage,
		Images:          rec.Images,
		Keywords:        rec.Keywords,
		MetaDescription: strings.TrimSpace(rec.MetaDescription),
		SourcePath:      path,
	}, dateErr
}
