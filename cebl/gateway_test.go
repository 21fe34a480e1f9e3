package cebl

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func testRequest(rawURL string) request {
	return request{url: rawURL, query: url.Values{}}
}

func TestFetchSetsAuthHeaders(t *testing.T) {
	var captured http.Header
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		captured = req.Header
		return jsonResponse(http.StatusOK, `[]`), nil
	})

	g := newGateway(&http.Client{Transport: rt}, "secret")
	var out []map[string]any
	if err := g.fetch(context.Background(), "games", testRequest("http://example.com/games/2024"), &out); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if got := captured.Get("X-Api-Key"); got != "secret" {
		t.Fatalf("expected api key header, got %q", got)
	}
	if got := captured.Get("Accept"); got != acceptValue {
		t.Fatalf("unexpected accept header %q", got)
	}
	if got := captured.Get("Origin"); got != originValue {
		t.Fatalf("unexpected origin header %q", got)
	}
	if captured.Get("User-Agent") == "" {
		t.Fatal("expected user agent header")
	}
}

func TestFetchMapsAuthFailures(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(status, ``), nil
		})

		g := newGateway(&http.Client{Transport: rt}, "secret")
		var out any
		err := g.fetch(context.Background(), "games", testRequest("http://example.com/x"), &out)

		authErr, ok := AsAuthenticationError(err)
		if !ok {
			t.Fatalf("status %d: expected AuthenticationError, got %v", status, err)
		}
		if authErr.Status != status || authErr.Endpoint != "games" {
			t.Fatalf("unexpected error contents %+v", authErr)
		}
	}
}

func TestFetchMapsNotFound(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusNotFound, ``), nil
	})

	g := newGateway(&http.Client{Transport: rt}, "secret")
	var out any
	err := g.fetch(context.Background(), "teams", testRequest("http://example.com/teams/1900"), &out)

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.URL != "http://example.com/teams/1900" {
		t.Fatalf("expected url in error, got %q", notFound.URL)
	}
}

func TestFetchMapsUpstreamFailure(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadGateway, "upstream exploded"), nil
	})

	g := newGateway(&http.Client{Transport: rt}, "secret")
	var out any
	err := g.fetch(context.Background(), "games", testRequest("http://example.com/x"), &out)

	upErr, ok := AsUpstreamError(err)
	if !ok {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upErr.Status != http.StatusBadGateway || upErr.Body != "upstream exploded" {
		t.Fatalf("unexpected error contents %+v", upErr)
	}
}

func TestFetchMapsTransportFailure(t *testing.T) {
	cause := errors.New("connection reset")
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, cause
	})

	g := newGateway(&http.Client{Transport: rt}, "secret")
	var out any
	err := g.fetch(context.Background(), "games", testRequest("http://example.com/x"), &out)

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to be wrapped")
	}
}

func TestFetchRejectsBadJSON(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{bad json`), nil
	})

	g := newGateway(&http.Client{Transport: rt}, "secret")
	var out any
	if err := g.fetch(context.Background(), "games", testRequest("http://example.com/x"), &out); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFetchSendsQueryParameters(t *testing.T) {
	var capturedQuery url.Values
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		capturedQuery = req.URL.Query()
		return jsonResponse(http.StatusOK, `[]`), nil
	})

	g := newGateway(&http.Client{Transport: rt}, "secret")
	req := request{url: "http://example.com/players/statistics", query: url.Values{
		"season": []string{"2024"},
		"mode":   []string{ModeTotals},
	}}
	var out []map[string]any
	if err := g.fetch(context.Background(), "players_statistics_aggregated", req, &out); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if capturedQuery.Get("season") != "2024" || capturedQuery.Get("mode") != ModeTotals {
		t.Fatalf("unexpected query %v", capturedQuery)
	}
}
