package vault

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/LambdaTest/ghnotify/pkg/core"
	errs "github.com/LambdaTest/ghnotify/pkg/errors"
	"github.com/LambdaTest/ghnotify/pkg/lumber"
	"github.com/LambdaTest/ghnotify/pkg/secrets"
)

const (
	globalDir = "global"
	folderDir = "folders"
)

type credentialStore struct {
	vault     core.Vault
	mountPath string
	basePath  string
	logger    lumber.Logger
}

// NewCredentialStore returns a CredentialStore over the KV v2 engine mounted at
// mountPath. Global credentials live under basePath/global/<id>, folder scoped
// ones under basePath/folders/<scope>/<id>.
func NewCredentialStore(vault core.Vault, mountPath, basePath string, logger lumber.Logger) core.CredentialStore {
	return &credentialStore{
		vault:     vault,
		mountPath: strings.Trim(mountPath, "/"),
		basePath:  strings.Trim(basePath, "/"),
		logger:    logger,
	}
}

func (s *credentialStore) Find(ctx context.Context, id, scope string) (*core.Credential, error) {
	for _, sc := range secrets.ScopeChain(scope) {
		data, err := s.vault.ReadSecret(s.dataPath(sc, id))
		if err != nil {
			return nil, err
		}
		if data == nil {
			continue
		}
		return toCredential(id, data)
	}
	return nil, nil
}

func (s *credentialStore) List(ctx context.Context, scope string) ([]*core.Credential, error) {
	seen := map[string]struct{}{}
	creds := []*core.Credential{}
	for _, sc := range secrets.ScopeChain(scope) {
		keys, err := s.vault.ListSecrets(s.metadataPath(sc))
		if err != nil {
			return nil, err
		}
		for _, id := range keys {
			if strings.HasSuffix(id, "/") {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			data, err := s.vault.ReadSecret(s.dataPath(sc, id))
			if err != nil {
				return nil, err
			}
			if data == nil {
				continue
			}
			cred, err := toCredential(id, data)
			if err != nil {
				s.logger.Warnf("skipping credentials %s in scope %q, error: %v", id, sc, err)
				continue
			}
			seen[id] = struct{}{}
			creds = append(creds, cred)
		}
	}
	return creds, nil
}

func (s *credentialStore) dataPath(scope, id string) string {
	return path.Join(s.mountPath, "data", s.scopeDir(scope), id)
}

func (s *credentialStore) metadataPath(scope string) string {
	return path.Join(s.mountPath, "metadata", s.scopeDir(scope))
}

func (s *credentialStore) scopeDir(scope string) string {
	if scope == "" {
		return path.Join(s.basePath, globalDir)
	}
	return path.Join(s.basePath, folderDir, scope)
}

func toCredential(id string, data map[string]interface{}) (*core.Credential, error) {
	kind := stringValue(data, "kind")
	if kind == "" {
		return nil, errs.WithCause(errs.ErrSecretNotFound, fmt.Errorf("secret %s has no kind", id))
	}
	return &core.Credential{
		ID:          id,
		Kind:        core.CredentialKind(kind),
		Description: stringValue(data, "description"),
		Username:    stringValue(data, "username"),
		Secret:      stringValue(data, "secret"),
	}, nil
}

func stringValue(data map[string]interface{}, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}
