package cebl

import (
	"errors"
	"testing"
)

func TestResolveRegisteredEndpoints(t *testing.T) {
	names := []string{
		endpointGames,
		endpointTeams,
		endpointPlayerStatistics,
		endpointPlayersAggregated,
		endpointTeamRoster,
		endpointTeamsAggregated,
	}

	for _, name := range names {
		ep, err := Resolve(name)
		if err != nil {
			t.Fatalf("expected %s to resolve, got %v", name, err)
		}
		if ep.Name != name {
			t.Fatalf("expected name %s, got %s", name, ep.Name)
		}
		if ep.Path == "" || ep.Path[0] != '/' {
			t.Fatalf("endpoint %s has bad path %q", name, ep.Path)
		}
	}
}

func TestResolveUnknownEndpoint(t *testing.T) {
	_, err := Resolve("standings")
	var unknownErr *UnknownEndpointError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownEndpointError, got %v", err)
	}
	if unknownErr.Endpoint != "standings" {
		t.Fatalf("expected endpoint name in error, got %q", unknownErr.Endpoint)
	}
}

func TestResolvedPlaceholders(t *testing.T) {
	ep, err := Resolve(endpointTeamRoster)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if len(ep.placeholders) != 2 || ep.placeholders[0] != "team_id" || ep.placeholders[1] != "year" {
		t.Fatalf("unexpected placeholders %v", ep.placeholders)
	}
}

func TestLoadRegistryRejectsBadDocuments(t *testing.T) {
	cases := map[string]string{
		"missing base url": `
endpoints:
  games:
    path: /games/{year}
`,
		"no endpoints": `
base_url: https://api.example.com
`,
		"path without leading slash": `
base_url: https://api.example.com
endpoints:
  games:
    path: games/{year}
`,
		"stray brace": `
base_url: https://api.example.com
endpoints:
  games:
    path: /games/{year
`,
		"not yaml": `{{`,
	}

	for name, doc := range cases {
		if _, err := loadRegistry([]byte(doc)); err == nil {
			t.Fatalf("expected %s to fail validation", name)
		}
	}
}

func TestLoadRegistryTrimsBaseURL(t *testing.T) {
	reg, err := loadRegistry([]byte(`
base_url: https://api.example.com/
endpoints:
  games:
    path: /games/{year}
`))
	if err != nil {
		t.Fatalf("expected valid document, got %v", err)
	}
	if reg.baseURL != "https://api.example.com" {
		t.Fatalf("expected trailing slash trimmed, got %q", reg.baseURL)
	}
}

func TestDefaultRegistryAllowedValues(t *testing.T) {
	ep, err := Resolve(endpointPlayersAggregated)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	modes := ep.Params["mode"]
	if len(modes) != 2 || !containsString(modes, ModePerGame) || !containsString(modes, ModeTotals) {
		t.Fatalf("unexpected allowed modes %v", modes)
	}
	if allowed := ep.Params["team_id"]; len(allowed) != 0 {
		t.Fatalf("expected team_id to accept any value, got %v", allowed)
	}
}
