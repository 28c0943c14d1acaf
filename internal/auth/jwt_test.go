package auth

import (
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// redefinirSegredo troca a variável de ambiente e descarta o segredo já
// carregado pelo sync.Once.
func redefinirSegredo(t *testing.T, valor string) {
	t.Setenv("JWT_SECRET", valor)
	jwtSecret = nil
	jwtSecretOnce = sync.Once{}
}

func TestGerarEValidarToken(t *testing.T) {
	redefinirSegredo(t, "segredo-de-teste")

	token, err := GerarToken(7, true)
	require.NoError(t, err)

	claims, err := ValidarToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UsuarioID)
	assert.True(t, claims.IsAdmin)
}

func TestGerarTokenExigeSegredo(t *testing.T) {
	redefinirSegredo(t, "")

	_, err := GerarToken(1, false)
	assert.Error(t, err)
}

func TestValidarTokenRejeitaSegredoVazio(t *testing.T) {
	redefinirSegredo(t, "")

	// token assinado com a chave vazia, como um atacante conseguiria montar
	forjado := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UsuarioID: 1,
		IsAdmin:   true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	assinado, err := forjado.SignedString([]byte(""))
	require.NoError(t, err)

	_, err = ValidarToken(assinado)
	assert.Error(t, err)
}

func TestValidarTokenRejeitaAssinaturaDeOutroSegredo(t *testing.T) {
	redefinirSegredo(t, "segredo-de-teste")
	token, err := GerarToken(2, false)
	require.NoError(t, err)

	redefinirSegredo(t, "outro-segredo")
	_, err = ValidarToken(token)
	assert.Error(t, err)
}
