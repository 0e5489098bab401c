package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rapidresponse/leadsite/internal/model"
)

func TestValidateSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		expectError bool
	}{
		{name: "simple", input: "carlton"},
		{name: "hyphenated", input: "blocked-drains"},
		{name: "digits", input: "suburb-3000"},
		{name: "empty", input: "", expectError: true},
		{name: "uppercase", input: "Carlton", expectError: true},
		{name: "underscore", input: "blocked_drains", expectError: true},
		{name: "leading hyphen", input: "-carlton", expectError: true},
		{name: "trailing hyphen", input: "carlton-", expectError: true},
		{name: "contains separator", input: "built-in-oven", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateSlug(tt.input)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	t.Parallel()

	_, err := New(
		[]model.Service{{Slug: "blocked-drains", Name: "Blocked Drains"}, {Slug: "blocked-drains", Name: "Again"}},
		[]model.Location{{Slug: "carlton", Name: "Carlton"}},
	)
	require.ErrorContains(t, err, "duplicate slug")

	_, err = New(
		[]model.Service{{Slug: "blocked-drains", Name: "Blocked Drains"}},
		[]model.Location{{Slug: "carlton", Name: "Carlton"}, {Slug: "carlton", Name: "Carlton"}},
	)
	require.ErrorContains(t, err, "duplicate slug")
}

func TestNewRejectsMissingName(t *testing.T) {
	t.Parallel()

	_, err := New([]model.Service{{Slug: "blocked-drains"}}, nil)
	require.ErrorContains(t, err, "name is required")
}

func TestLookups(t *testing.T) {
	t.Parallel()

	store := Default()

	svc, ok := store.Service("blocked-drains")
	require.True(t, ok)
	require.Equal(t, "Blocked Drains", svc.Name)

	loc, ok := store.Location("carlton")
	require.True(t, ok)
	require.Equal(t, "Carlton", loc.Name)

	_, ok = store.Service("Blocked-Drains")
	require.False(t, ok, "lookups are case-sensitive")

	_, ok = store.Location("unknown-suburb")
	require.False(t, ok)
}

func TestDefaultCatalogShape(t *testing.T) {
	t.Parallel()

	store := Default()
	require.Len(t, store.Services(), 12)
	require.Len(t, store.ServiceSlugs(), len(store.Services()))
	require.Len(t, store.LocationSlugs(), len(store.Locations()))
	require.NotEmpty(t, store.Locations())
}

func TestOtherServicesAndFirst(t *testing.T) {
	t.Parallel()

	store := Default()

	others := store.OtherServices("emergency-plumbing", 3)
	require.Len(t, others, 3)
	for _, svc := range others {
		require.NotEqual(t, "emergency-plumbing", svc.Slug)
	}

	require.Len(t, store.FirstLocations(8), 8)
	require.Len(t, store.FirstLocations(1000), len(store.Locations()))
	require.Len(t, store.FirstServices(6), 6)

	require.Empty(t, store.OtherServices("emergency-plumbing", -1))
	require.Empty(t, store.FirstLocations(-1))
	require.Empty(t, store.FirstServices(-3))
}

func TestValidateURLSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		slug    string
		wantErr bool
	}{
		{slug: "leaks-in-winter"},
		{slug: "fix-a-tap"},
		{slug: "", wantErr: true},
		{slug: "Fix My Tap", wantErr: true},
		{slug: "../etc", wantErr: true},
	}

	for _, tt := range tests {
		err := ValidateURLSlug(tt.slug)
		if tt.wantErr {
			require.Error(t, err, tt.slug)
			continue
		}
		require.NoError(t, err, tt.slug)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	store := Default()
	services := store.Services()
	services[0].Name = "mutated"

	svc, ok := store.Service(services[0].Slug)
	require.True(t, ok)
	require.NotEqual(t, "mutated", svc.Name)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`services:
  - slug: blocked-drains
    name: Blocked Drains
    description: Drains cleared fast.
locations:
  - slug: carlton
    name: Carlton
  - slug: fitzroy
    name: Fitzroy
`), 0o644))

	store, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, store.Services(), 1)
	require.Equal(t, []string{"carlton", "fitzroy"}, store.LocationSlugs())
}

func TestLoadFileErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("services:\n  - slug: built-in-oven\n    name: Oven\n"), 0o644))
	_, err = LoadFile(bad)
	require.ErrorContains(t, err, "must not contain")

	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("regions: []\n"), 0o644))
	_, err = LoadFile(unknown)
	require.Error(t, err)
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	t.Parallel()

	s, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default().ServiceSlugs(), s.ServiceSlugs())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
