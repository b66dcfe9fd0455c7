package vault

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/LambdaTest/ghnotify/pkg/lumber"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVault struct {
	data    map[string]map[string]interface{}
	reads   []string
	readErr error
}

func (f *fakeVault) ReadSecret(p string) (map[string]interface{}, error) {
	f.reads = append(f.reads, p)
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.data[p], nil
}

func (f *fakeVault) ListSecrets(p string) ([]string, error) {
	dataPrefix := strings.Replace(p, "/metadata/", "/data/", 1) + "/"
	keys := []string{}
	for k := range f.data {
		if strings.HasPrefix(k, dataPrefix) {
			rest := strings.TrimPrefix(k, dataPrefix)
			if i := strings.Index(rest, "/"); i >= 0 {
				rest = rest[:i+1]
			}
			keys = append(keys, rest)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func newTestStore(t *testing.T, v *fakeVault) *credentialStore {
	logger, err := lumber.NewLogger(&lumber.LoggingConfig{EnableConsole: true}, true, lumber.InstanceZapLogger)
	require.NoError(t, err)
	return NewCredentialStore(v, "secret/", "ghnotify/credentials", logger).(*credentialStore)
}

func testData() map[string]map[string]interface{} {
	return map[string]map[string]interface{}{
		"secret/data/ghnotify/credentials/global/gh": {
			"kind": "usernamePassword", "username": "bot", "secret": "global-token",
		},
		"secret/data/ghnotify/credentials/folders/org/repo/gh": {
			"kind": "secretText", "secret": "scoped-token", "description": "repo token",
		},
		"secret/data/ghnotify/credentials/folders/org/deploy": {
			"kind": "sshPrivateKey", "secret": "pem",
		},
	}
}

func TestCredentialStoreFind(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		scope      string
		wantSecret string
		wantKind   string
	}{
		{"global", "gh", "", "global-token", "usernamePassword"},
		{"scoped first", "gh", "org/repo/main", "scoped-token", "secretText"},
		{"enclosing folder", "deploy", "org/repo", "pem", "sshPrivateKey"},
		{"absent", "missing", "org", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t, &fakeVault{data: testData()})
			cred, err := s.Find(context.Background(), tt.id, tt.scope)
			require.NoError(t, err)
			if tt.wantSecret == "" {
				assert.Nil(t, cred)
				return
			}
			require.NotNil(t, cred)
			assert.Equal(t, tt.wantSecret, cred.Secret)
			assert.Equal(t, tt.wantKind, string(cred.Kind))
			assert.Equal(t, tt.id, cred.ID)
		})
	}
}

func TestCredentialStoreFindPaths(t *testing.T) {
	v := &fakeVault{data: map[string]map[string]interface{}{}}
	s := newTestStore(t, v)

	_, err := s.Find(context.Background(), "gh", "org/repo")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"secret/data/ghnotify/credentials/folders/org/repo/gh",
		"secret/data/ghnotify/credentials/folders/org/gh",
		"secret/data/ghnotify/credentials/global/gh",
	}, v.reads)
}

func TestCredentialStoreFindError(t *testing.T) {
	s := newTestStore(t, &fakeVault{readErr: errors.New("permission denied")})
	_, err := s.Find(context.Background(), "gh", "")
	assert.EqualError(t, err, "permission denied")
}

func TestCredentialStoreList(t *testing.T) {
	s := newTestStore(t, &fakeVault{data: testData()})
	creds, err := s.List(context.Background(), "org/repo")
	require.NoError(t, err)

	got := map[string]string{}
	for _, c := range creds {
		got[c.ID] = c.Secret
	}
	assert.Equal(t, map[string]string{"gh": "scoped-token", "deploy": "pem"}, got)
}
