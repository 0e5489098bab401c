package route

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rapidresponse/leadsite/internal/catalog"
	"github.com/rapidresponse/leadsite/internal/model"
)

func testCatalog(t *testing.T) *catalog.Store {
	t.Helper()

	store, err := catalog.New(
		[]model.Service{
			{Slug: "blocked-drains", Name: "Blocked Drains"},
			{Slug: "gas-fitting", Name: "Gas Fitting"},
		},
		[]model.Location{
			{Slug: "carlton", Name: "Carlton"},
			{Slug: "box-hill", Name: "Box Hill"},
			{Slug: "kew", Name: "Kew"},
		},
	)
	require.NoError(t, err)
	return store
}

func TestResolveEveryPair(t *testing.T) {
	t.Parallel()

	store := catalog.Default()
	r := NewResolver(store)

	for _, svc := range store.Services() {
		for _, loc := range store.Locations() {
			res := r.Resolve(svc.Slug + "-in-" + loc.Slug)
			require.True(t, res.Found())
			require.Equal(t, svc, res.Service)
			require.Equal(t, loc, res.Location)
		}
	}
}

func TestResolveNotFound(t *testing.T) {
	t.Parallel()

	r := NewResolver(testCatalog(t))

	tests := []struct {
		name   string
		token  string
		reason Reason
	}{
		{name: "empty", token: "", reason: ParseFailure},
		{name: "no separator", token: "blocked-drains", reason: ParseFailure},
		{name: "two separators", token: "blocked-drains-in-carlton-in-kew", reason: ParseFailure},
		{name: "three separators", token: "a-in-b-in-c-in-d", reason: ParseFailure},
		{name: "empty service half", token: "-in-carlton", reason: ParseFailure},
		{name: "empty location half", token: "blocked-drains-in-", reason: ParseFailure},
		{name: "unknown service", token: "nonexistent-in-carlton", reason: LookupFailure},
		{name: "unknown location", token: "blocked-drains-in-unknown-suburb", reason: LookupFailure},
		{name: "case sensitive", token: "Blocked-Drains-in-carlton", reason: LookupFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := r.Resolve(tt.token)
			require.False(t, res.Found())
			require.Equal(t, NotFound, res.Kind)
			require.Equal(t, tt.reason, res.Reason)
		})
	}
}

func TestResolveExample(t *testing.T) {
	t.Parallel()

	r := NewResolver(testCatalog(t))

	res := r.Resolve("blocked-drains-in-carlton")
	require.Equal(t, Found, res.Kind)
	require.Equal(t, "Blocked Drains", res.Service.Name)
	require.Equal(t, "Carlton", res.Location.Name)

	res = r.Resolve("blocked-drains-in-box-hill")
	require.True(t, res.Found())
	require.Equal(t, "box-hill", res.Location.Slug)
}

func TestTokensCrossProduct(t *testing.T) {
	t.Parallel()

	store := catalog.Default()
	r := NewResolver(store)

	tokens := r.Tokens()
	require.Len(t, tokens, len(store.Services())*len(store.Locations()))

	seen := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		_, dup := seen[token]
		require.False(t, dup, "duplicate token %q", token)
		seen[token] = struct{}{}

		serviceSlug, locationSlug, ok := Split(token)
		require.True(t, ok)
		require.Equal(t, token, Join(serviceSlug, locationSlug))
		require.True(t, r.Resolve(token).Found())
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()

	svc, loc, ok := Split("hot-water-systems-in-south-yarra")
	require.True(t, ok)
	require.Equal(t, "hot-water-systems", svc)
	require.Equal(t, "south-yarra", loc)

	_, _, ok = Split("carlton")
	require.False(t, ok)
}

func TestVerify(t *testing.T) {
	t.Parallel()

	require.NoError(t, NewResolver(catalog.Default()).Verify())

	// Each slug is valid on its own, but "plug-in" + "-in-" + "carlton"
	// splits as ("plug", "in-carlton").
	store, err := catalog.New(
		[]model.Service{{Slug: "plug-in", Name: "Plug In"}},
		[]model.Location{{Slug: "carlton", Name: "Carlton"}},
	)
	require.NoError(t, err)
	require.ErrorContains(t, NewResolver(store).Verify(), "does not round-trip")
}

func TestKindAndReasonStrings(t *testing.T) {
	t.Parallel()

	require.Equal(t, "found", Found.String())
	require.Equal(t, "not_found", NotFound.String())
	require.Equal(t, "parse_failure", ParseFailure.String())
	require.Equal(t, "lookup_failure", LookupFailure.String())
	require.Equal(t, "none", ReasonNone.String())
}
