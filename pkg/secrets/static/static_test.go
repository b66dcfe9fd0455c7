package static

import (
	"context"
	"testing"

	"github.com/LambdaTest/ghnotify/config"
	"github.com/LambdaTest/ghnotify/pkg/core"
	"github.com/LambdaTest/ghnotify/pkg/lumber"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) core.CredentialStore {
	logger, err := lumber.NewLogger(&lumber.LoggingConfig{EnableConsole: true}, true, lumber.InstanceZapLogger)
	require.NoError(t, err)
	return New([]config.StaticCredential{
		{ID: "gh", Kind: "usernamePassword", Username: "global", Secret: "g"},
		{ID: "gh", Kind: "secretText", Secret: "scoped", Scope: "org/repo"},
		{ID: "key", Kind: "sshPrivateKey", Secret: "pem", Scope: "org"},
		{ID: "other", Kind: "secretText", Secret: "x", Scope: "elsewhere"},
	}, logger)
}

func TestFind(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		scope      string
		wantSecret string
		wantNil    bool
	}{
		{"global from root", "gh", "", "g", false},
		{"scoped hides global", "gh", "org/repo/main", "scoped", false},
		{"global outside scope", "gh", "org", "g", false},
		{"enclosing folder", "key", "org/repo/main", "pem", false},
		{"invisible scope", "other", "org/repo", "", true},
		{"absent", "missing", "org", "", true},
	}
	s := newStore(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cred, err := s.Find(context.Background(), tt.id, tt.scope)
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, cred)
				return
			}
			require.NotNil(t, cred)
			assert.Equal(t, tt.wantSecret, cred.Secret)
		})
	}
}

func TestList(t *testing.T) {
	s := newStore(t)
	creds, err := s.List(context.Background(), "org/repo")
	require.NoError(t, err)

	got := map[string]string{}
	for _, c := range creds {
		got[c.ID] = c.Secret
	}
	assert.Equal(t, map[string]string{"gh": "scoped", "key": "pem"}, got)
}
