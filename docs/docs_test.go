package docs

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestRegisteredDocument(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var spec struct {
		Swagger string                     `json:"swagger"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &spec))
	assert.Equal(t, "2.0", spec.Swagger)
	for _, p := range []string{"/health", "/api/transfers/{id}/submit", "/api/ledger/export", "/api/scanner/devices/{id}/decode"} {
		assert.Contains(t, spec.Paths, p)
	}
}

func TestContent_FallsBackToEmbedded(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.json")
	assert.JSONEq(t, SwaggerInfo.ReadDoc(), string(Content(missing)))
	assert.NotEmpty(t, Content(""))
}
