package main

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El middleware de swagger lee docs/swagger.json al arrancar y entra en
// pánico si el archivo falta o no es JSON válido. Este test garantiza que el
// spec que el binario espera en el repo existe y es utilizable.
func TestSwaggerSpecExisteYEsValido(t *testing.T) {
	raw, err := os.ReadFile("../../docs/swagger.json")
	require.NoError(t, err, "el binario monta ./docs/swagger.json desde la raíz del repo")

	var spec struct {
		Swagger string                     `json:"swagger"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(raw, &spec))

	assert.Equal(t, "2.0", spec.Swagger)
	assert.NotEmpty(t, spec.Paths)
	assert.Contains(t, spec.Paths, "/auth/login")
	assert.Contains(t, spec.Paths, "/reports/dashboard")
}
