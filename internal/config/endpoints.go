package config

import (
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hamed0406/availmon/internal/domain"
)

// entry mirrors one item of the declarative endpoints file.
type entry struct {
	URL     string            `yaml:"url"`
	Name    string            `yaml:"name"`
	Method  string            `yaml:"method"`
	Headers map[string]string `yaml:"headers"`
	Body    string            `yaml:"body"`
}

// LoadEndpoints reads a YAML endpoints file and returns the monitored domain
// groups. Any read or validation failure is fatal to the caller.
func LoadEndpoints(path string) ([]domain.Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read endpoints file: %w", err)
	}
	return ParseEndpoints(data)
}

// ParseEndpoints validates the raw YAML list and groups entries by URL host.
// Group order follows first appearance of a host; endpoints within a group
// keep file order. A group only exists if at least one entry references it,
// so every group has one or more endpoints.
func ParseEndpoints(data []byte) ([]domain.Group, error) {
	var entries []entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse endpoints file: %w", err)
	}

	groups := make([]domain.Group, 0, len(entries))
	index := make(map[string]int)

	for i, e := range entries {
		if e.URL == "" {
			return nil, fmt.Errorf("entry %d: missing required field %q", i, "url")
		}
		if e.Name == "" {
			return nil, fmt.Errorf("entry %d (%s): missing required field %q", i, e.URL, "name")
		}
		u, err := url.Parse(e.URL)
		if err != nil || u.Host == "" {
			return nil, fmt.Errorf("entry %d (%s): invalid url", i, e.URL)
		}

		method := e.Method
		if method == "" {
			method = "GET"
		}

		ep := domain.Endpoint{
			Name: e.Name,
			Request: domain.RequestSpec{
				URL:     e.URL,
				Method:  method,
				Headers: e.Headers,
				Body:    e.Body,
			},
		}

		host := u.Host
		at, ok := index[host]
		if !ok {
			index[host] = len(groups)
			groups = append(groups, domain.Group{Host: host})
			at = index[host]
		}
		groups[at].Endpoints = append(groups[at].Endpoints, ep)
	}

	return groups, nil
}
