package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEndpoints_GroupsByHostPreservingOrder(t *testing.T) {
	raw := []byte(`
- name: index page
  url: https://example.com/
- name: status page
  url: https://status.example.io/up
- name: cart page
  url: https://example.com/cart
  method: POST
  headers:
    user-agent: availmon-test
  body: '{"items": []}'
`)
	groups, err := ParseEndpoints(raw)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "example.com", groups[0].Host)
	assert.Equal(t, "status.example.io", groups[1].Host)

	require.Len(t, groups[0].Endpoints, 2)
	assert.Equal(t, "index page", groups[0].Endpoints[0].Name)
	assert.Equal(t, "cart page", groups[0].Endpoints[1].Name)

	cart := groups[0].Endpoints[1].Request
	assert.Equal(t, "POST", cart.Method)
	assert.Equal(t, "availmon-test", cart.Headers["user-agent"])
	assert.Equal(t, `{"items": []}`, cart.Body)
}

func TestParseEndpoints_MethodDefaultsToGET(t *testing.T) {
	groups, err := ParseEndpoints([]byte("- name: a\n  url: https://a.test/\n"))
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "GET", groups[0].Endpoints[0].Request.Method)
}

func TestParseEndpoints_MissingRequiredFields(t *testing.T) {
	_, err := ParseEndpoints([]byte("- name: no url here\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"url"`)

	_, err = ParseEndpoints([]byte("- url: https://a.test/\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"name"`)
}

func TestParseEndpoints_MalformedYAML(t *testing.T) {
	_, err := ParseEndpoints([]byte("{{not yaml"))
	require.Error(t, err)
}

func TestParseEndpoints_HostIncludesPort(t *testing.T) {
	raw := []byte(`
- name: local a
  url: http://127.0.0.1:8081/a
- name: local b
  url: http://127.0.0.1:9090/b
`)
	groups, err := ParseEndpoints(raw)
	require.NoError(t, err)
	// Different ports are different hosts, matching the URL host component.
	require.Len(t, groups, 2)
	assert.Equal(t, "127.0.0.1:8081", groups[0].Host)
	assert.Equal(t, "127.0.0.1:9090", groups[1].Host)
}

func TestLoadEndpoints_MissingFile(t *testing.T) {
	_, err := LoadEndpoints(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadEndpoints_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "endpoints.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- name: a\n  url: https://a.test/\n"), 0o644))

	groups, err := LoadEndpoints(path)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "a.test", groups[0].Host)
}
