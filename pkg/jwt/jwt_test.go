package jwt

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/LambdaTest/ghnotify/config"
	"github.com/LambdaTest/ghnotify/pkg/errors"
	"github.com/LambdaTest/ghnotify/pkg/lumber"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthorizer(t *testing.T) (*rsa.PrivateKey, *JWTAuthorizer) {
	t.Helper()
	privKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&privKey.PublicKey)
	require.NoError(t, err)
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	logger, err := lumber.NewLogger(&lumber.LoggingConfig{EnableConsole: true}, true, lumber.InstanceZapLogger)
	require.NoError(t, err)
	cfg := &config.Config{JWT: config.JWT{PublicKey: base64.StdEncoding.EncodeToString(pemBytes)}}
	session, err := New(cfg, logger)
	require.NoError(t, err)
	return privKey, session.(*JWTAuthorizer)
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func newContext(header string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/notify", nil)
	if header != "" {
		c.Request.Header.Set("Authorization", header)
	}
	return c, w
}

func TestAuthorize(t *testing.T) {
	key, authorizer := newAuthorizer(t)
	exp := time.Now().Add(time.Hour).Unix()

	valid := signToken(t, key, jwt.MapClaims{"exp": exp, "iat": time.Now().Unix(), "jti": "abc", "sub": "pipeline"})
	expired := signToken(t, key, jwt.MapClaims{"exp": time.Now().Add(-time.Hour).Unix(), "jti": "abc"})
	noJTI := signToken(t, key, jwt.MapClaims{"exp": exp})

	tests := []struct {
		name       string
		header     string
		wantErr    error
		wantStatus int
	}{
		{"valid token", "Bearer " + valid, nil, http.StatusOK},
		{"missing header", "", errors.ErrMissingToken, http.StatusForbidden},
		{"wrong scheme", "Token " + valid, errors.ErrInvalidAuthHeader, http.StatusForbidden},
		{"expired", "Bearer " + expired, errors.ErrInvalidJWTToken, http.StatusForbidden},
		{"missing jti", "Bearer " + noJTI, errors.ErrMissingJTI, http.StatusForbidden},
		{"garbage", "Bearer not.a.token", errors.ErrInvalidJWTToken, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext(tt.header)
			data, err := authorizer.Authorize(c)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				assert.Nil(t, data)
				assert.Equal(t, tt.wantStatus, w.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "abc", data.JwtID)
			assert.Equal(t, "pipeline", data.Subject)
			assert.Equal(t, exp, data.Expiry)
			assert.False(t, c.IsAborted())
		})
	}
}

func TestNewInvalidKey(t *testing.T) {
	logger, err := lumber.NewLogger(&lumber.LoggingConfig{EnableConsole: true}, true, lumber.InstanceZapLogger)
	require.NoError(t, err)

	_, err = New(&config.Config{JWT: config.JWT{PublicKey: "%%%"}}, logger)
	assert.Error(t, err)

	notPEM := base64.StdEncoding.EncodeToString([]byte("not a pem"))
	_, err = New(&config.Config{JWT: config.JWT{PublicKey: notPEM}}, logger)
	assert.Equal(t, errors.ErrInvalidPubKey, err)
}
