package site

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rapidresponse/leadsite/internal/route"
)

const conventionalBaseLayout = "base.html"

//go:embed layouts
var embeddedLayouts embed.FS

// Page templates every layout set must provide.
var requiredLayouts = []string{
	tplHome, tplAbout, tplContact, tplServices, tplService,
	tplLocations, tplLocation, tplCombined, tplBlog, tplPost, tplNotFound,
}

// Templates holds one fully parsed template set per page layout, each
// combining base.html, the partials and that page's "content" definition.
type Templates struct {
	pages  map[string]*template.Template
	source string
}

var funcMap = template.FuncMap{
	"join":     strings.Join,
	"lower":    lower,
	"combined": route.Join,
	"isodate":  func(t time.Time) string { return t.Format("2006-01-02") },
	"longdate": func(t time.Time) string { return t.Format("2 January 2006") },
}

// LoadTemplates parses layouts from dir when it contains a base.html, and
// from the embedded defaults otherwise.
func LoadTemplates(dir string) (*Templates, error) {
	fsys, source, err := layoutsFS(dir)
	if err != nil {
		return nil, err
	}
	return parseTemplates(fsys, source)
}

func layoutsFS(dir string) (fs.FS, string, error) {
	if dir != "" {
		if _, err := os.Stat(filepath.Join(dir, conventionalBaseLayout)); err == nil {
			return os.DirFS(dir), dir, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("failed to inspect layouts directory '%s': %w", dir, err)
		}
	}
	sub, err := fs.Sub(embeddedLayouts, "layouts")
	if err != nil {
		return nil, "", err
	}
	return sub, "embedded", nil
}

func parseTemplates(fsys fs.FS, source string) (*Templates, error) {
	partials, err := fs.Glob(fsys, "partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to find partials: %w", err)
	}

	// base.html and every partial first; each page layout is parsed into its
	// own clone so that their "content" definitions do not collide.
	base, err := template.New(conventionalBaseLayout).Funcs(funcMap).
		ParseFS(fsys, append([]string{conventionalBaseLayout}, partials...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base.html and partials: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read layouts: %w", err)
	}

	t := &Templates{pages: make(map[string]*template.Template), source: source}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == conventionalBaseLayout || !strings.HasSuffix(strings.ToLower(name), ".html") {
			continue
		}
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone base layout for '%s': %w", name, err)
		}
		if _, err := clone.ParseFS(fsys, name); err != nil {
			return nil, fmt.Errorf("failed to parse page layout '%s': %w", name, err)
		}
		t.pages[name] = clone
	}

	var missing []string
	for _, name := range requiredLayouts {
		if _, ok := t.pages[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("layouts from %s missing: %s", source, strings.Join(missing, ", "))
	}
	return t, nil
}

// Source reports where the layouts were loaded from.
func (t *Templates) Source() string { return t.source }

// Execute renders the named page layout through base.html.
func (t *Templates) Execute(w io.Writer, layout string, data any) error {
	tpl, ok := t.pages[layout]
	if !ok {
		return fmt.Errorf("layout '%s' not found", layout)
	}
	if err := tpl.ExecuteTemplate(w, conventionalBaseLayout, data); err != nil {
		return fmt.Errorf("failed to execute template '%s': %w", layout, err)
	}
	return nil
}
