package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestDefaultsDecode(t *testing.T) {
	t.Parallel()

	v := viper.New()
	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	require.Equal(t, "public", cfg.OutputDir)
	require.Equal(t, "content/blog", cfg.ContentDir)
	require.Equal(t, 8, cfg.Workers)
	require.Equal(t, "Rapid Response Plumbing", cfg.Business.Name)
	require.Equal(t, "test-biz-001", cfg.Leads.BusinessID)
	require.Equal(t, "contact_page", cfg.Leads.Source)
	require.Equal(t, 10*time.Second, cfg.Leads.Timeout)
	require.Equal(t, 5, cfg.Leads.RatePerMinute)
}

func TestCanonicalURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		base string
		path string
		want string
	}{
		{base: "https://plumbing.example", path: "/", want: "https://plumbing.example/"},
		{base: "https://plumbing.example/", path: "/blog/x", want: "https://plumbing.example/blog/x"},
		{base: "https://plumbing.example", path: "hot-water-in-carlton", want: "https://plumbing.example/hot-water-in-carlton"},
		{base: "https://plumbing.example", path: "", want: "https://plumbing.example/"},
		{base: "", path: "/about", want: "/about"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, Config{BaseURL: tt.base}.CanonicalURL(tt.path))
	}
}
