package jwt

import (
	"crypto/rsa"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/LambdaTest/ghnotify/config"
	"github.com/LambdaTest/ghnotify/pkg/constants"
	"github.com/LambdaTest/ghnotify/pkg/core"
	"github.com/LambdaTest/ghnotify/pkg/errors"
	"github.com/LambdaTest/ghnotify/pkg/lumber"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	jsoniter "github.com/json-iterator/go"
)

const (
	defaultSigningAlgo     = "RS256"
	defaultTokenHeaderName = "Bearer"
)

// JWTAuthorizer verifies the Json-Web-Tokens issued to pipelines calling the notify surface.
// On failure, a 403 HTTP response is returned.
type JWTAuthorizer struct {
	// signing algorithm, only RS256 is accepted
	signingAlgorithm string
	// TokenHeadName is a string in the header. Default value is "Bearer"
	tokenHeadName string
	// Public key
	pubKey *rsa.PublicKey
	// the logger object
	logger lumber.Logger
}

// New returns a new session authorizer
func New(cfg *config.Config, logger lumber.Logger) (core.Session, error) {
	pubKeyBytes, err := base64.StdEncoding.DecodeString(cfg.JWT.PublicKey)
	if err != nil {
		logger.Errorf("error while b64 decoding public key %v", err)
		return nil, err
	}

	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(pubKeyBytes)
	if err != nil {
		logger.Errorf("error while parsing RSA public key %v", err)
		return nil, errors.ErrInvalidPubKey
	}

	return &JWTAuthorizer{
		signingAlgorithm: defaultSigningAlgo,
		tokenHeadName:    defaultTokenHeaderName,
		pubKey:           publicKey,
		logger:           logger,
	}, nil
}

// Authorize vaildates and extracts the data from JWT Token claims from request header
func (jw *JWTAuthorizer) Authorize(c *gin.Context) (*core.CallerData, error) {
	authHeader := c.Request.Header.Get(constants.AuthorizationHeader)
	if authHeader == "" {
		c.AbortWithStatusJSON(http.StatusForbidden, errors.ErrMissingToken)
		return nil, errors.ErrMissingToken
	}
	parts := strings.Split(authHeader, " ")
	if !(len(parts) == 2 && parts[0] == jw.tokenHeadName) {
		jw.logger.Errorf("Error while parsing auth token, got Authorization token: %s", authHeader)
		c.AbortWithStatusJSON(http.StatusForbidden, errors.ErrInvalidAuthHeader)
		return nil, errors.ErrInvalidAuthHeader
	}
	token := parts[1]
	if token == "" {
		c.AbortWithStatusJSON(http.StatusForbidden, errors.ErrMissingToken)
		return nil, errors.ErrMissingToken
	}

	claims, err := jw.parseToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusForbidden, err)
		return nil, err
	}

	callerData, err := jw.extractData(claims)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, err)
		return nil, err
	}

	return callerData, nil
}

func (jw *JWTAuthorizer) parseToken(token string) (*JwtClaims, error) {
	jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if jwt.GetSigningMethod(jw.signingAlgorithm) != t.Method {
			return nil, errors.ErrInvalidSigningAlgorithm
		}
		return jw.pubKey, nil
	})
	if err != nil {
		jw.logger.Errorf("error while parsing jwt token, error: %v", err)
		return nil, errors.ErrInvalidJWTToken
	}

	// extract claims from token
	mapClaims, ok := jwtToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.ErrTypeAssertionFailed
	}

	jc := NewJWTClaims()
	jc.MapClaims = mapClaims

	// check if claims are valid
	if err := jc.Valid(); err != nil {
		jw.logger.Errorf("error while parsing jwt token, error: %v", err)
		return nil, err
	}

	return jc, nil
}

func (jw *JWTAuthorizer) extractData(jc *JwtClaims) (*core.CallerData, error) {
	rawBytes, err := jc.MarshalJSON()
	if err != nil {
		jw.logger.Errorf("failed to marshall jwt claim payload, error:%v", err)
		return nil, errors.ErrMarshalJSON
	}
	callerData := new(core.CallerData)

	json := jsoniter.ConfigCompatibleWithStandardLibrary
	if err = json.Unmarshal(rawBytes, callerData); err != nil {
		jw.logger.Errorf("failed to unmarshall jwt claim payload, error:%v", err)
		return nil, errors.ErrUnMarshalJSON
	}

	return callerData, nil
}
