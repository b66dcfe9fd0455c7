// Package vault reads credentials from a HashiCorp Vault KV v2 engine.
package vault

import (
	"github.com/LambdaTest/ghnotify/config"
	"github.com/LambdaTest/ghnotify/pkg/core"
	errs "github.com/LambdaTest/ghnotify/pkg/errors"
	"github.com/LambdaTest/ghnotify/pkg/lumber"
	"github.com/hashicorp/vault/api"
	"github.com/pkg/errors"
)

type vault struct {
	client *api.Client
	logger lumber.Logger
}

// New returns a new Vault client.
func New(cfg *config.VaultConfig, logger lumber.Logger) (core.Vault, error) {
	if cfg.Address == "" {
		return nil, errs.ErrVaultConfig
	}
	vaultCfg := api.DefaultConfig()
	vaultCfg.Address = cfg.Address
	client, err := api.NewClient(vaultCfg)
	if err != nil {
		logger.Errorf("failed to create vault client, error: %v", err)
		return nil, err
	}
	if cfg.Token != "" {
		client.SetToken(cfg.Token)
	}
	if cfg.Namespace != "" {
		client.SetNamespace(cfg.Namespace)
	}
	return &vault{client: client, logger: logger}, nil
}

// ReadSecret returns the data stored at path, unwrapping KV v2 envelopes.
func (v *vault) ReadSecret(path string) (map[string]interface{}, error) {
	secret, err := v.client.Logical().Read(path)
	if err != nil {
		v.logger.Errorf("failed to read secret at path %s, error: %v", path, err)
		return nil, errors.Wrapf(err, "read secret %s", path)
	}
	if secret == nil || secret.Data == nil {
		return nil, nil
	}
	if data, ok := secret.Data["data"].(map[string]interface{}); ok {
		return data, nil
	}
	return secret.Data, nil
}

func (v *vault) ListSecrets(path string) ([]string, error) {
	secret, err := v.client.Logical().List(path)
	if err != nil {
		v.logger.Errorf("failed to list secrets at path %s, error: %v", path, err)
		return nil, errors.Wrapf(err, "list secrets %s", path)
	}
	if secret == nil || secret.Data == nil {
		return nil, nil
	}
	raw, ok := secret.Data["keys"].([]interface{})
	if !ok {
		return nil, nil
	}
	keys := make([]string, 0, len(raw))
	for _, k := range raw {
		if s, ok := k.(string); ok {
			keys = append(keys, s)
		}
	}
	return keys, nil
}
