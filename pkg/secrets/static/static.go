// Package static serves credentials held in the configuration.
package static

import (
	"context"

	"github.com/LambdaTest/ghnotify/config"
	"github.com/LambdaTest/ghnotify/pkg/core"
	"github.com/LambdaTest/ghnotify/pkg/lumber"
	"github.com/LambdaTest/ghnotify/pkg/secrets"
)

type store struct {
	credentials []config.StaticCredential
	logger      lumber.Logger
}

// New returns a CredentialStore over the configured credentials.
func New(credentials []config.StaticCredential, logger lumber.Logger) core.CredentialStore {
	logger.Debugf("loaded %d static credentials", len(credentials))
	return &store{credentials: credentials, logger: logger}
}

func (s *store) Find(ctx context.Context, id, scope string) (*core.Credential, error) {
	for _, sc := range secrets.ScopeChain(scope) {
		for i := range s.credentials {
			c := &s.credentials[i]
			if c.ID == id && secrets.NormalizeScope(c.Scope) == sc {
				return toCredential(c), nil
			}
		}
	}
	return nil, nil
}

// List returns the credentials visible in scope, a scoped credential hiding a
// global one with the same id.
func (s *store) List(ctx context.Context, scope string) ([]*core.Credential, error) {
	seen := map[string]struct{}{}
	creds := []*core.Credential{}
	for _, sc := range secrets.ScopeChain(scope) {
		for i := range s.credentials {
			c := &s.credentials[i]
			if secrets.NormalizeScope(c.Scope) != sc {
				continue
			}
			if _, ok := seen[c.ID]; ok {
				continue
			}
			seen[c.ID] = struct{}{}
			creds = append(creds, toCredential(c))
		}
	}
	return creds, nil
}

func toCredential(c *config.StaticCredential) *core.Credential {
	return &core.Credential{
		ID:          c.ID,
		Kind:        core.CredentialKind(c.Kind),
		Description: c.Description,
		Username:    c.Username,
		Secret:      c.Secret,
	}
}
