package cebl

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingAPIKey is returned by New when no API key is supplied.
var ErrMissingAPIKey = errors.New("cebl: API key must be provided")

// UnknownEndpointError reports a lookup for an endpoint name that is not in
// the registry.
type UnknownEndpointError struct {
	Endpoint string
}

func (e *UnknownEndpointError) Error() string {
	return fmt.Sprintf("cebl: endpoint %q is not registered", e.Endpoint)
}

// MissingPathArgumentError reports a path template placeholder with no
// matching argument.
type MissingPathArgumentError struct {
	Endpoint string
	Arg      string
}

func (e *MissingPathArgumentError) Error() string {
	return fmt.Sprintf("cebl: endpoint %q requires path argument %q", e.Endpoint, e.Arg)
}

// InvalidParameterValueError reports a query parameter value outside the
// endpoint's allowed set.
type InvalidParameterValueError struct {
	Endpoint string
	Param    string
	Value    string
	Allowed  []string
}

func (e *InvalidParameterValueError) Error() string {
	return fmt.Sprintf("cebl: value %q is not valid for parameter %q on endpoint %q (allowed: %s)",
		e.Value, e.Param, e.Endpoint, strings.Join(e.Allowed, ", "))
}

// AuthenticationError reports a 401/403 response from the upstream API.
type AuthenticationError struct {
	Endpoint string
	Status   int
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("cebl: authentication rejected for endpoint %q (status=%d)", e.Endpoint, e.Status)
}

// NotFoundError reports a 404 response.
type NotFoundError struct {
	Endpoint string
	URL      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cebl: endpoint %q returned 404 for %s", e.Endpoint, e.URL)
}

// UpstreamError reports any other non-2xx response. Body holds the leading
// bytes of the response for diagnosis.
type UpstreamError struct {
	Endpoint string
	Status   int
	Body     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("cebl: endpoint %q returned status %d: %s", e.Endpoint, e.Status, e.Body)
}

// TransportError reports a network-level failure (timeout, DNS, reset)
// before any HTTP status was received.
type TransportError struct {
	Endpoint string
	URL      string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("cebl: request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MalformedRecordError reports a numeric field whose raw value could not be
// coerced. The record is never silently dropped.
type MalformedRecordError struct {
	Kind  string
	Field string
	Raw   string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("cebl: %s record field %q has malformed value %q", e.Kind, e.Field, e.Raw)
}

// TeamNotFoundError reports a team-name filter that matched no team for the
// requested year.
type TeamNotFoundError struct {
	Team string
	Year string
}

func (e *TeamNotFoundError) Error() string {
	return fmt.Sprintf("cebl: team %q not found for year %s", e.Team, e.Year)
}

// AsAuthenticationError attempts to unwrap an error into an AuthenticationError.
func AsAuthenticationError(err error) (*AuthenticationError, bool) {
	var authErr *AuthenticationError
	if errors.As(err, &authErr) {
		return authErr, true
	}
	return nil, false
}

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}

// AsMalformedRecordError attempts to unwrap an error into a MalformedRecordError.
func AsMalformedRecordError(err error) (*MalformedRecordError, bool) {
	var recErr *MalformedRecordError
	if errors.As(err, &recErr) {
		return recErr, true
	}
	return nil, false
}
