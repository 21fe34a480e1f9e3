package cebl

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed endpoints.yaml
var endpointsYAML []byte

// Endpoint describes one remote operation: a path template with {placeholder}
// segments and the allowed values for constrained query parameters. An empty
// allowed list means the parameter accepts any value.
type Endpoint struct {
	Name   string
	Path   string
	Params map[string][]string

	placeholders []string
}

type registry struct {
	baseURL   string
	endpoints map[string]Endpoint
}

type registryDoc struct {
	BaseURL   string                 `yaml:"base_url"`
	Endpoints map[string]endpointDoc `yaml:"endpoints"`
}

type endpointDoc struct {
	Path   string              `yaml:"path"`
	Params map[string][]string `yaml:"params"`
}

var placeholderPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// The registry is parsed once at init. A malformed document is a programmer
// error, so it fails the process before any call site can run.
var defaultRegistry = mustLoadRegistry(endpointsYAML)

func mustLoadRegistry(raw []byte) *registry {
	reg, err := loadRegistry(raw)
	if err != nil {
		panic("cebl: invalid endpoint registry: " + err.Error())
	}
	return reg
}

func loadRegistry(raw []byte) (*registry, error) {
	var doc registryDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if doc.BaseURL == "" {
		return nil, fmt.Errorf("base_url is required")
	}
	if len(doc.Endpoints) == 0 {
		return nil, fmt.Errorf("no endpoints defined")
	}

	endpoints := make(map[string]Endpoint, len(doc.Endpoints))
	for name, e := range doc.Endpoints {
		if name == "" {
			return nil, fmt.Errorf("endpoint with empty name")
		}
		if !strings.HasPrefix(e.Path, "/") {
			return nil, fmt.Errorf("endpoint %q: path %q must start with /", name, e.Path)
		}
		placeholders, err := extractPlaceholders(e.Path)
		if err != nil {
			return nil, fmt.Errorf("endpoint %q: %w", name, err)
		}
		endpoints[name] = Endpoint{
			Name:         name,
			Path:         e.Path,
			Params:       e.Params,
			placeholders: placeholders,
		}
	}

	return &registry{
		baseURL:   strings.TrimSuffix(doc.BaseURL, "/"),
		endpoints: endpoints,
	}, nil
}

// extractPlaceholders returns the {placeholder} names in template order and
// rejects templates with stray or malformed braces.
func extractPlaceholders(path string) ([]string, error) {
	var names []string
	for _, match := range placeholderPattern.FindAllStringSubmatch(path, -1) {
		names = append(names, match[1])
	}
	leftover := placeholderPattern.ReplaceAllString(path, "")
	if strings.ContainsAny(leftover, "{}") {
		return nil, fmt.Errorf("malformed placeholder in path %q", path)
	}
	return names, nil
}

func (r *registry) resolve(name string) (Endpoint, error) {
	ep, ok := r.endpoints[name]
	if !ok {
		return Endpoint{}, &UnknownEndpointError{Endpoint: name}
	}
	return ep, nil
}

// Resolve looks up a registered endpoint by name.
func Resolve(name string) (Endpoint, error) {
	return defaultRegistry.resolve(name)
}
