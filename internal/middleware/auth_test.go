package middleware

import (
	"crypto/ed25519"
	"crypto/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/customer-directory/internal/auth"
)

func TestAuthorize(t *testing.T) {
	pubKey, privKey, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err, "failed to generate key pair")

	token, err := jwt.NewWithClaims(jwt.SigningMethodEdDSA, jwt.RegisteredClaims{
		Subject:   "test-subject",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString(privKey)
	require.NoError(t, err, "failed to sign token")

	e := echo.New()
	mw := Authorize(auth.NewJwtValidator(jwt.SigningMethodEdDSA, pubKey))
	h := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	call := func(authHdr string) (*httptest.ResponseRecorder, error) {
		req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
		if authHdr != "" {
			req.Header.Set(echo.HeaderAuthorization, authHdr)
		}
		rec := httptest.NewRecorder()
		return rec, h(e.NewContext(req, rec))
	}

	t.Log("missing header")
	{
		_, err := call("")
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr, "error must be echo error")
		require.Equal(t, http.StatusUnauthorized, httpErr.Code)
	}

	t.Log("wrong scheme")
	{
		_, err := call("Basic " + token)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr, "error must be echo error")
		require.Equal(t, http.StatusUnauthorized, httpErr.Code)
	}

	t.Log("invalid token")
	{
		_, err := call("Bearer not-a-token")
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr, "error must be echo error")
		require.Equal(t, http.StatusUnauthorized, httpErr.Code)
	}

	t.Log("valid token")
	{
		rec, err := call("Bearer " + token)
		require.NoError(t, err, "request with valid token must pass")
		require.Equal(t, http.StatusOK, rec.Code)
	}
}
