package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocIsRegistered(t *testing.T) {
	SwaggerInfo.Host = "api.example.test"
	SwaggerInfo.Schemes = []string{"https"}

	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc struct {
		Host    string                     `json:"host"`
		Schemes []string                   `json:"schemes"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "api.example.test", doc.Host)
	assert.Equal(t, []string{"https"}, doc.Schemes)
	for _, path := range []string{
		"/records",
		"/records/stats",
		"/records/performance",
		"/records/search",
		"/records/search/text",
		"/records/search/date-range",
		"/records/{id}",
	} {
		assert.Contains(t, doc.Paths, path)
	}
}
