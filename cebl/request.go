package cebl

import (
	"net/url"
	"strings"
)

// Unset marks an optional query parameter as intentionally absent. The
// builder drops the key entirely, which is not the same as sending an empty
// value.
const Unset = "\x00unset"

// request is the resolved form of one call: a concrete URL plus encoded query
// parameters. Built fresh per call and never reused.
type request struct {
	url   string
	query url.Values
}

func (r request) fullURL() string {
	if len(r.query) == 0 {
		return r.url
	}
	return r.url + "?" + r.query.Encode()
}

// buildRequest substitutes path placeholders and validates query parameters
// against the endpoint's allowed sets. Pure function over its inputs.
func buildRequest(baseURL string, ep Endpoint, pathArgs map[string]string, query map[string]string) (request, error) {
	path := ep.Path
	for _, name := range ep.placeholders {
		val, ok := pathArgs[name]
		if !ok || val == "" {
			return request{}, &MissingPathArgumentError{Endpoint: ep.Name, Arg: name}
		}
		path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(val))
	}

	values := url.Values{}
	for key, val := range query {
		if val == Unset {
			continue
		}
		if allowed, declared := ep.Params[key]; declared && len(allowed) > 0 && !containsString(allowed, val) {
			return request{}, &InvalidParameterValueError{
				Endpoint: ep.Name,
				Param:    key,
				Value:    val,
				Allowed:  allowed,
			}
		}
		values.Set(key, val)
	}

	return request{url: baseURL + path, query: values}, nil
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
