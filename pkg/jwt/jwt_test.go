package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/fieldforce-api/pkg/jwt"
)

const (
	testSecret    = "secret-de-pruebas-unitarias"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testCompanyID = "00000000-0000-0000-0000-000000000002"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testCompanyID, "field_agent", "fieldforce-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, testCompanyID, claims.CompanyID)
	assert.Equal(t, "field_agent", claims.Role)
	assert.NotEmpty(t, claims.ID, "el token debe llevar jti para poder revocarlo")
	assert.Greater(t, claims.TTL(), 59*time.Minute)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testCompanyID, "company_admin", "fieldforce-test", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err, "un token firmado con otro secret no debe validar")
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testCompanyID, "company_admin", "fieldforce-test", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, testCompanyID, "field_agent", "fieldforce-test", 60)
	assert.Error(t, err)
}
