package core

import (
	"context"

	"github.com/drone/go-scm/scm"
)

// Token represents the API token of the authenticated identity.
type Token struct {
	AccessToken string `json:"access_token"`
	Username    string `json:"username,omitempty"`
}

// SetRequestContext sets the token values in the request context
func (t *Token) SetRequestContext(ctx context.Context) context.Context {
	token := &scm.Token{
		Token: t.AccessToken,
	}
	return context.WithValue(ctx, scm.TokenKey{}, token)
}
