package config

import (
	"strings"
	"time"
)

type Config struct {
	SiteTitle   string `mapstructure:"siteTitle"`
	OutputDir   string `mapstructure:"outputDir"`
	BaseURL     string `mapstructure:"baseURL"`
	ContentDir  string `mapstructure:"contentDir"`
	LayoutsDir  string `mapstructure:"layoutsDir"`
	StaticDir   string `mapstructure:"staticDir"`
	CatalogFile string `mapstructure:"catalogFile"`
	Workers     int    `mapstructure:"workers"`
	LogLevel    string `mapstructure:"logLevel"`
	LogFormat   string `mapstructure:"logFormat"`

	Business Business `mapstructure:"business"`
	Leads    Leads    `mapstructure:"leads"`
}

// Business holds the contact details rendered on every page.
type Business struct {
	Name      string `mapstructure:"name"`
	Phone     string `mapstructure:"phone"`
	PhoneHref string `mapstructure:"phoneHref"`
	Email     string `mapstructure:"email"`
	Region    string `mapstructure:"region"`
}

// Leads configures the external lead ingestion endpoint.
type Leads struct {
	Endpoint      string        `mapstructure:"endpoint"`
	BusinessID    string        `mapstructure:"businessID"`
	Source        string        `mapstructure:"source"`
	Timeout       time.Duration `mapstructure:"timeout"`
	RatePerMinute int           `mapstructure:"ratePerMinute"`
	Burst         int           `mapstructure:"burst"`
}

// Defaults returns the values used when neither a config file nor the
// environment provides a key. Keys are the viper paths.
func Defaults() map[string]any {
	return map[string]any{
		"siteTitle":           "Rapid Response Plumbing",
		"outputDir":           "public",
		"baseURL":             "",
		"contentDir":          "content/blog",
		"layoutsDir":          "layouts",
		"staticDir":           "static",
		"catalogFile":         "",
		"workers":             8,
		"logLevel":            "info",
		"logFormat":           "console",
		"business.name":       "Rapid Response Plumbing",
		"business.phone":      "1300 RAPID",
		"business.phoneHref":  "tel:1300RAPID",
		"business.email":      "info@rapidresponseplumbing.com.au",
		"business.region":     "Melbourne",
		"leads.endpoint":      "https://dashboard-sigma-six-16.vercel.app/api/leads/submit",
		"leads.businessID":    "test-biz-001",
		"leads.source":        "contact_page",
		"leads.timeout":       "10s",
		"leads.ratePerMinute": 5,
		"leads.burst":         3,
	}
}

// CanonicalURL joins the configured base URL with a site path.
func (c Config) CanonicalURL(path string) string {
	base := strings.TrimSuffix(c.BaseURL, "/")
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}
